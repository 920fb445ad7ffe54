package domain

import "github.com/shopspring/decimal"

// SalesReport é recalculado a cada chamada e nunca persistido
type SalesReport struct {
	TotalSales     decimal.Decimal `json:"total_sales"`
	TodaySales     decimal.Decimal `json:"today_sales"`
	YesterdaySales decimal.Decimal `json:"yesterday_sales"`
	ThisWeekSales  decimal.Decimal `json:"this_week_sales"`
	LastWeekSales  decimal.Decimal `json:"last_week_sales"`
	ThisMonthSales decimal.Decimal `json:"this_month_sales"`
	LastMonthSales decimal.Decimal `json:"last_month_sales"`
	Growth         Growth          `json:"growth"`
}

// Growth guarda os percentuais com duas casas decimais (ex: "-12.50")
type Growth struct {
	Day   string `json:"day"`
	Week  string `json:"week"`
	Month string `json:"month"`
}

type StockRow struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	SubProductID string `json:"sub_product_id"`
	SizeID       string `json:"size_id"`
	Size         string `json:"size"`
	Qty          int    `json:"qty"`
}

type StockReport struct {
	LowStock   []StockRow `json:"low_stock"`
	OutOfStock []StockRow `json:"out_of_stock"`
}

// ProductSales representa o volume vendido de um produto ou tamanho
type ProductSales struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type ProductPerformance struct {
	TopProducts []ProductSales `json:"top_products"`
	Sizes       []ProductSales `json:"sizes"`
}

// Overview agrega os dados exibidos na página inicial do painel
type Overview struct {
	Vendor             string          `json:"vendor"`
	Country            string          `json:"country"`
	TotalOrders        int             `json:"total_orders"`
	TotalEarnings      decimal.Decimal `json:"total_earnings"`
	UnpaidAmount       decimal.Decimal `json:"unpaid_amount"`
	FormattedEarnings  string          `json:"formatted_earnings"`
	FormattedUnpaid    string          `json:"formatted_unpaid"`
	ProductCount       int             `json:"product_count"`
	RecentOrders       []Order         `json:"recent_orders"`
	LowStockProducts   []StockRow      `json:"low_stock_products"`
	OutOfStockProducts []StockRow      `json:"out_of_stock_products"`
}
