package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status das linhas de pedido
const (
	OrderItemStatusNotProcessed = "Not Processed"
	OrderItemStatusProcessing   = "Processing"
	OrderItemStatusDispatched   = "Dispatched"
	OrderItemStatusCompleted    = "Completed"
	OrderItemStatusCancelled    = "Cancelled"
)

// Order é o pedido como visto pelo vendedor. Total é o valor em unidade base da moeda do vendedor.
type Order struct {
	ID        string          `json:"id"`
	UserEmail string          `json:"user_email"`
	Total     decimal.Decimal `json:"total"`
	IsPaid    bool            `json:"is_paid"`
	IsNew     bool            `json:"is_new"`
	Items     []OrderItem     `json:"items,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	ProductID string          `json:"product_id"`
	VendorID  string          `json:"vendor_id"`
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	Status    string          `json:"status"`
}

// OrderSummary contabiliza pedidos por status
type OrderSummary struct {
	NewOrders       int `json:"new_orders"`
	PendingOrders   int `json:"pending_orders"`
	CompletedOrders int `json:"completed_orders"`
	CancelledOrders int `json:"cancelled_orders"`
}
