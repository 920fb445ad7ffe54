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

const categoriesTable = "categories"

var categoryColumns = []string{"id", "name", "slug", "images", "created_at", "updated_at"}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, id, name, slug string) (*domain.Category, error)
	Delete(ctx context.Context, id string) (*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

type categoryRepository struct {
	conn postgres.Queryer
}

func NewCategoryRepository(conn postgres.Queryer) CategoryRepository {
	return &categoryRepository{
		conn: conn,
	}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	images, err := json.Marshal(category.Images)
	if err != nil {
		return fmt.Errorf("erro ao serializar imagens: %w", err)
	}

	query, args, err := squirrel.
		Insert(categoriesTable).
		Columns("id", "name", "slug", "images").
		Values(category.ID, category.Name, category.Slug, images).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&category.CreatedAt, &category.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao inserir categoria: %w", err)
	}

	return nil
}

// Update troca nome e slug. Retorna ErrNotFound se a categoria não existir.
func (r *categoryRepository) Update(ctx context.Context, id, name, slug string) (*domain.Category, error) {
	query, args, err := squirrel.
		Update(categoriesTable).
		Set("name", name).
		Set("slug", slug).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, slug, images, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	category, err := scanCategory(r.conn.QueryRow(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar categoria: %w", err)
	}

	return category, nil
}

// Delete remove a categoria e devolve o registro apagado, para limpeza das imagens
func (r *categoryRepository) Delete(ctx context.Context, id string) (*domain.Category, error) {
	query, args, err := squirrel.
		Delete(categoriesTable).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, slug, images, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	category, err := scanCategory(r.conn.QueryRow(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao remover categoria: %w", err)
	}

	return category, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name})
}

func (r *categoryRepository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Category, error) {
	query, args, err := squirrel.
		Select(categoryColumns...).
		From(categoriesTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	category, err := scanCategory(r.conn.QueryRow(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar categoria: %w", err)
	}

	return category, nil
}

// List ordena da categoria alterada mais recentemente para a mais antiga
func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	query, args, err := squirrel.
		Select(categoryColumns...).
		From(categoriesTable).
		OrderBy("updated_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		categories = append(categories, *category)
	}

	return categories, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var (
		c      domain.Category
		images []byte
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &images, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}

	c.Images = make([]domain.Image, 0)
	if len(images) > 0 {
		if err := json.Unmarshal(images, &c.Images); err != nil {
			return nil, errors.Wrapf(err, "imagens inválidas na categoria %s", c.ID)
		}
	}

	return &c, nil
}
