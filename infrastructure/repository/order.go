package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/vendor-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
)

const orderItemsTable = "order_items oi"

type OrderRepository interface {
	// ListByVendor devolve os pedidos com ao menos uma linha do vendedor. Cada pedido
	// carrega somente as linhas desse vendedor.
	ListByVendor(ctx context.Context, vendorID string) ([]domain.Order, error)
	Create(ctx context.Context, order *domain.Order) error
}

type orderRepository struct {
	conn postgres.Conn
}

func NewOrderRepository(conn postgres.Conn) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func (r *orderRepository) ListByVendor(ctx context.Context, vendorID string) ([]domain.Order, error) {
	query, args, err := squirrel.
		Select(
			"o.id", "o.user_email", "o.total", "o.is_paid", "o.is_new", "o.created_at",
			"oi.id", "oi.product_id", "oi.vendor_id", "oi.name", "oi.size", "oi.qty", "oi.price", "oi.status",
		).
		From(orderItemsTable).
		Join("orders o ON o.id = oi.order_id").
		Where(squirrel.Eq{"oi.vendor_id": vendorID}).
		OrderBy("o.created_at ASC", "o.id ASC", "oi.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar pedidos do vendedor: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	index := make(map[string]int)

	for rows.Next() {
		var (
			o    domain.Order
			item domain.OrderItem
		)
		if err := rows.Scan(
			&o.ID, &o.UserEmail, &o.Total, &o.IsPaid, &o.IsNew, &o.CreatedAt,
			&item.ID, &item.ProductID, &item.VendorID, &item.Name, &item.Size, &item.Qty, &item.Price, &item.Status,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		item.OrderID = o.ID

		pos, ok := index[o.ID]
		if !ok {
			orders = append(orders, o)
			pos = len(orders) - 1
			index[o.ID] = pos
		}
		orders[pos].Items = append(orders[pos].Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

// Create grava o pedido e suas linhas na mesma transação
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		orderSQL, orderArgs, err := squirrel.
			Insert("orders").
			Columns("id", "user_email", "total", "is_paid", "is_new", "created_at").
			Values(order.ID, order.UserEmail, order.Total, order.IsPaid, order.IsNew, order.CreatedAt).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, orderSQL, orderArgs...); err != nil {
			return fmt.Errorf("erro ao inserir pedido: %w", err)
		}

		if len(order.Items) == 0 {
			return nil
		}

		items := squirrel.
			Insert("order_items").
			Columns("id", "order_id", "product_id", "vendor_id", "name", "size", "qty", "price", "status").
			PlaceholderFormat(squirrel.Dollar)
		for _, item := range order.Items {
			items = items.Values(item.ID, order.ID, item.ProductID, item.VendorID, item.Name, item.Size, item.Qty, item.Price, item.Status)
		}

		itemsSQL, itemsArgs, err := items.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, itemsSQL, itemsArgs...); err != nil {
			return fmt.Errorf("erro ao inserir linhas do pedido: %w", err)
		}

		return nil
	})
}
