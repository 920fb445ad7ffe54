package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/vendor-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
)

const stockAlertsTable = "stock_alerts"

type StockAlertRepository interface {
	Save(ctx context.Context, snapshot *domain.StockAlertSnapshot) error
	ListByVendor(ctx context.Context, vendorID string, limit int) ([]domain.StockAlertSnapshot, error)
}

type stockAlertRepository struct {
	conn postgres.Queryer
}

func NewStockAlertRepository(conn postgres.Queryer) StockAlertRepository {
	return &stockAlertRepository{
		conn: conn,
	}
}

func (r *stockAlertRepository) Save(ctx context.Context, snapshot *domain.StockAlertSnapshot) error {
	query, args, err := squirrel.
		Insert(stockAlertsTable).
		Columns("vendor_id", "captured_at", "low_stock_count", "out_of_stock_count").
		Values(snapshot.VendorID, snapshot.CapturedAt, snapshot.LowStockCount, snapshot.OutOfStockCount).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&snapshot.ID); err != nil {
		return fmt.Errorf("erro ao salvar alerta de estoque: %w", err)
	}

	return nil
}

// ListByVendor devolve os snapshots mais recentes primeiro
func (r *stockAlertRepository) ListByVendor(ctx context.Context, vendorID string, limit int) ([]domain.StockAlertSnapshot, error) {
	builder := squirrel.
		Select("id", "vendor_id", "captured_at", "low_stock_count", "out_of_stock_count").
		From(stockAlertsTable).
		Where(squirrel.Eq{"vendor_id": vendorID}).
		OrderBy("captured_at DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar)
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar alertas de estoque: %w", err)
	}
	defer rows.Close()

	snapshots := make([]domain.StockAlertSnapshot, 0)
	for rows.Next() {
		var s domain.StockAlertSnapshot
		if err := rows.Scan(&s.ID, &s.VendorID, &s.CapturedAt, &s.LowStockCount, &s.OutOfStockCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear alerta de estoque: %w", err)
		}
		snapshots = append(snapshots, s)
	}

	return snapshots, rows.Err()
}
