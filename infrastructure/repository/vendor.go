package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/vendor-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
)

const vendorsTable = "vendors"

var vendorColumns = []string{
	"id", "name", "email", "password_hash", "description", "address", "phone_number",
	"zip_code", "how_did_you_hear_about_us", "country", "role", "verified", "created_at", "updated_at",
}

type VendorRepository interface {
	Create(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	GetByEmail(ctx context.Context, email string) (*domain.Vendor, error)
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)
	ListIDs(ctx context.Context) ([]string, error)
}

type vendorRepository struct {
	conn postgres.Queryer
}

func NewVendorRepository(conn postgres.Queryer) VendorRepository {
	return &vendorRepository{
		conn: conn,
	}
}

// Create insere o vendedor. Email duplicado retorna erro de unique violation do postgres.
func (r *vendorRepository) Create(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	query, args, err := squirrel.
		Insert(vendorsTable).
		Columns("id", "name", "email", "password_hash", "description", "address", "phone_number",
			"zip_code", "how_did_you_hear_about_us", "country", "role", "verified").
		Values(vendor.ID, vendor.Name, vendor.Email, vendor.PasswordHash, vendor.Description, vendor.Address,
			vendor.PhoneNumber, vendor.ZipCode, vendor.HowDidYouHearAboutUs, vendor.Country, vendor.Role, vendor.Verified).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&vendor.CreatedAt, &vendor.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir vendedor: %w", err)
	}

	return vendor, nil
}

// GetByEmail retorna nil, nil quando não existe vendedor com o email
func (r *vendorRepository) GetByEmail(ctx context.Context, email string) (*domain.Vendor, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// GetByID retorna nil, nil quando o vendedor não existe
func (r *vendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *vendorRepository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Vendor, error) {
	query, args, err := squirrel.
		Select(vendorColumns...).
		From(vendorsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var v domain.Vendor
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&v.ID,
		&v.Name,
		&v.Email,
		&v.PasswordHash,
		&v.Description,
		&v.Address,
		&v.PhoneNumber,
		&v.ZipCode,
		&v.HowDidYouHearAboutUs,
		&v.Country,
		&v.Role,
		&v.Verified,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendedor: %w", err)
	}

	return &v, nil
}

// ListIDs devolve os IDs de todos os vendedores, usado pelos jobs agendados
func (r *vendorRepository) ListIDs(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("id").
		From(vendorsTable).
		Where(squirrel.Eq{"role": domain.RoleVendor}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendedores: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
