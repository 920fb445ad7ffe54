package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

type Product struct {
	ID          string       `json:"id"`
	VendorID    string       `json:"vendor_id"`
	CategoryID  *string      `json:"category_id,omitempty"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Slug        string       `json:"slug"`
	SubProducts []SubProduct `json:"sub_products"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// SubProduct é uma variação do produto (ex: cor)
type SubProduct struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	SKU        string          `json:"sku"`
	Color      string          `json:"color"`
	ColorImage string          `json:"color_image,omitempty"`
	Images     []Image         `json:"images"`
	Discount   decimal.Decimal `json:"discount"`
	Sizes      []Size          `json:"sizes"`
}

type Size struct {
	ID           string          `json:"id"`
	SubProductID string          `json:"sub_product_id"`
	Size         string          `json:"size"`
	Qty          int             `json:"qty"`
	Price        decimal.Decimal `json:"price"`
}

type CreateProductRequest struct {
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description" validate:"required"`
	CategoryID  *string             `json:"category_id"`
	SKU         string              `json:"sku" validate:"required"`
	Discount    decimal.Decimal     `json:"discount"`
	Color       string              `json:"color" validate:"required"`
	ColorImage  string              `json:"color_image"`
	Images      []UploadImage       `json:"images" validate:"required,min=1,dive"`
	Sizes       []CreateSizeRequest `json:"sizes" validate:"required,min=1,dive"`
}

type CreateSizeRequest struct {
	Size  string          `json:"size" validate:"required"`
	Qty   int             `json:"qty" validate:"gte=0"`
	Price decimal.Decimal `json:"price"`
}

// UploadImage carrega a imagem em base64 vinda do formulário
type UploadImage struct {
	Filename string `json:"filename"`
	Data     string `json:"data" validate:"required,base64"`
}

type ProductFilters struct {
	Search   string
	Page     int
	PageSize int
}
