package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
)

func productWithSizes(id, name string, qtys map[string]int, order []string) domain.Product {
	sizes := make([]domain.Size, 0, len(order))
	for _, label := range order {
		sizes = append(sizes, domain.Size{ID: id + "-" + label, Size: label, Qty: qtys[label]})
	}

	return domain.Product{
		ID:   id,
		Name: name,
		SubProducts: []domain.SubProduct{
			{ID: id + "-sub", Sizes: sizes},
		},
	}
}

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name      string
		products  []domain.Product
		threshold int
		validate  func(t *testing.T, report domain.StockReport)
	}{
		{
			name:      "Sem produtos - listas vazias e não nulas",
			products:  nil,
			threshold: DefaultLowStockThreshold,
			validate: func(t *testing.T, report domain.StockReport) {
				assert.NotNil(t, report.LowStock)
				assert.NotNil(t, report.OutOfStock)
				assert.Empty(t, report.LowStock)
				assert.Empty(t, report.OutOfStock)
			},
		},
		{
			name: "Limites do estoque baixo",
			products: []domain.Product{
				productWithSizes("p1", "Camisa", map[string]int{"P": 0, "M": 5, "G": 6, "GG": 1}, []string{"P", "M", "G", "GG"}),
			},
			threshold: DefaultLowStockThreshold,
			validate: func(t *testing.T, report domain.StockReport) {
				require.Len(t, report.OutOfStock, 1)
				assert.Equal(t, "P", report.OutOfStock[0].Size)
				assert.Equal(t, "p1", report.OutOfStock[0].ProductID)
				assert.Equal(t, "Camisa", report.OutOfStock[0].ProductName)
				assert.Equal(t, "p1-sub", report.OutOfStock[0].SubProductID)

				require.Len(t, report.LowStock, 2)
				assert.Equal(t, "M", report.LowStock[0].Size)
				assert.Equal(t, 5, report.LowStock[0].Qty)
				assert.Equal(t, "GG", report.LowStock[1].Size)
			},
		},
		{
			name: "Quantidade negativa conta como sem estoque",
			products: []domain.Product{
				productWithSizes("p1", "Calça", map[string]int{"40": -1}, []string{"40"}),
			},
			threshold: DefaultLowStockThreshold,
			validate: func(t *testing.T, report domain.StockReport) {
				require.Len(t, report.OutOfStock, 1)
				assert.Equal(t, -1, report.OutOfStock[0].Qty)
				assert.Empty(t, report.LowStock)
			},
		},
		{
			name: "Mantém a ordem produto > variação > tamanho",
			products: []domain.Product{
				productWithSizes("p2", "Vestido", map[string]int{"S": 2, "L": 0}, []string{"S", "L"}),
				productWithSizes("p1", "Blusa", map[string]int{"S": 0, "L": 3}, []string{"S", "L"}),
			},
			threshold: DefaultLowStockThreshold,
			validate: func(t *testing.T, report domain.StockReport) {
				require.Len(t, report.LowStock, 2)
				assert.Equal(t, "p2-S", report.LowStock[0].SizeID)
				assert.Equal(t, "p1-L", report.LowStock[1].SizeID)

				require.Len(t, report.OutOfStock, 2)
				assert.Equal(t, "p2-L", report.OutOfStock[0].SizeID)
				assert.Equal(t, "p1-S", report.OutOfStock[1].SizeID)
			},
		},
		{
			name: "Limite configurado",
			products: []domain.Product{
				productWithSizes("p1", "Tênis", map[string]int{"38": 10, "39": 11}, []string{"38", "39"}),
			},
			threshold: 10,
			validate: func(t *testing.T, report domain.StockReport) {
				require.Len(t, report.LowStock, 1)
				assert.Equal(t, "38", report.LowStock[0].Size)
				assert.Empty(t, report.OutOfStock)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ClassifyStock(tt.products, tt.threshold))
		})
	}
}

func TestClassifyStock_RowsAreDisjoint(t *testing.T) {
	products := []domain.Product{
		productWithSizes("p1", "Meia", map[string]int{"U": 0, "P": 4, "M": 20}, []string{"U", "P", "M"}),
	}

	report := ClassifyStock(products, DefaultLowStockThreshold)

	for _, low := range report.LowStock {
		assert.Greater(t, low.Qty, 0)
		assert.LessOrEqual(t, low.Qty, DefaultLowStockThreshold)
		for _, out := range report.OutOfStock {
			assert.NotEqual(t, low.SizeID, out.SizeID)
		}
	}
	assert.Len(t, report.LowStock, 1)
	assert.Len(t, report.OutOfStock, 1)
}
