package domain

import "time"

// StockAlertSnapshot registra a classificação de estoque de um vendedor em um instante
type StockAlertSnapshot struct {
	ID              int64     `json:"id"`
	VendorID        string    `json:"vendor_id"`
	CapturedAt      time.Time `json:"captured_at"`
	LowStockCount   int       `json:"low_stock_count"`
	OutOfStockCount int       `json:"out_of_stock_count"`
}
