package analytics

import "github.com/vfg2006/vendor-dashboard-api/internal/domain"

// DefaultLowStockThreshold é a quantidade máxima (inclusive) considerada estoque baixo
const DefaultLowStockThreshold = 5

// ClassifyStock percorre produto > variação > tamanho e separa os itens sem estoque
// e com estoque baixo, mantendo a ordem original. Quantidade negativa conta como sem estoque.
func ClassifyStock(products []domain.Product, threshold int) domain.StockReport {
	report := domain.StockReport{
		LowStock:   make([]domain.StockRow, 0),
		OutOfStock: make([]domain.StockRow, 0),
	}

	for _, product := range products {
		for _, sub := range product.SubProducts {
			for _, size := range sub.Sizes {
				row := domain.StockRow{
					ProductID:    product.ID,
					ProductName:  product.Name,
					SubProductID: sub.ID,
					SizeID:       size.ID,
					Size:         size.Size,
					Qty:          size.Qty,
				}

				switch {
				case size.Qty <= 0:
					report.OutOfStock = append(report.OutOfStock, row)
				case size.Qty <= threshold:
					report.LowStock = append(report.LowStock, row)
				}
			}
		}
	}

	return report
}
