package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
)

func item(productID, name, size, status string, qty int) domain.OrderItem {
	return domain.OrderItem{ProductID: productID, Name: name, Size: size, Status: status, Qty: qty}
}

func TestSummarizeOrders(t *testing.T) {
	orders := []domain.Order{
		{
			ID:    "o1",
			IsNew: true,
			Items: []domain.OrderItem{
				item("p1", "Camisa", "M", domain.OrderItemStatusNotProcessed, 1),
				item("p2", "Calça", "40", domain.OrderItemStatusNotProcessed, 1),
			},
		},
		{
			ID: "o2",
			Items: []domain.OrderItem{
				item("p1", "Camisa", "G", domain.OrderItemStatusCompleted, 2),
				item("p2", "Calça", "42", domain.OrderItemStatusCancelled, 1),
			},
		},
		{
			ID:    "o3",
			IsNew: true,
			Items: []domain.OrderItem{
				item("p3", "Boné", "", domain.OrderItemStatusDispatched, 1),
			},
		},
	}

	summary := SummarizeOrders(orders)

	assert.Equal(t, domain.OrderSummary{
		NewOrders:       2,
		PendingOrders:   1,
		CompletedOrders: 1,
		CancelledOrders: 1,
	}, summary)

	assert.Equal(t, domain.OrderSummary{}, SummarizeOrders(nil))
}

func TestRecentOrders(t *testing.T) {
	base := time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC)
	orders := []domain.Order{
		{ID: "a", CreatedAt: base.Add(-3 * time.Hour)},
		{ID: "b", CreatedAt: base},
		{ID: "c", CreatedAt: base.Add(-1 * time.Hour)},
		{ID: "d", CreatedAt: base.Add(-48 * time.Hour)},
	}

	tests := []struct {
		name     string
		limit    int
		expected []string
	}{
		{name: "Limite menor que o total", limit: 2, expected: []string{"b", "c"}},
		{name: "Limite maior que o total", limit: 10, expected: []string{"b", "c", "a", "d"}},
		{name: "Sem limite", limit: -1, expected: []string{"b", "c", "a", "d"}},
		{name: "Limite zero", limit: 0, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recent := RecentOrders(orders, tt.limit)

			ids := make([]string, 0, len(recent))
			for _, o := range recent {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}

	assert.Equal(t, "a", orders[0].ID, "a lista original não deve ser reordenada")
}

func TestTopSellingProducts(t *testing.T) {
	orders := []domain.Order{
		{Items: []domain.OrderItem{
			item("p1", "Camisa", "M", domain.OrderItemStatusCompleted, 2),
			item("p2", "Calça", "40", domain.OrderItemStatusNotProcessed, 5),
		}},
		{Items: []domain.OrderItem{
			item("p1", "Camisa", "G", domain.OrderItemStatusProcessing, 4),
			item("p3", "Boné", "", domain.OrderItemStatusCancelled, 50),
			item("p4", "Meia", "U", domain.OrderItemStatusCompleted, 1),
		}},
	}

	top := TopSellingProducts(orders, 2)

	require.Len(t, top, 2)
	assert.Equal(t, domain.ProductSales{Name: "Camisa", Value: 6}, top[0])
	assert.Equal(t, domain.ProductSales{Name: "Calça", Value: 5}, top[1])

	all := TopSellingProducts(orders, -1)
	require.Len(t, all, 3)
	assert.Equal(t, "Meia", all[2].Name)
}

func TestSizeAnalytics(t *testing.T) {
	orders := []domain.Order{
		{Items: []domain.OrderItem{
			item("p1", "Camisa", "M", domain.OrderItemStatusCompleted, 2),
			item("p2", "Calça", "G", domain.OrderItemStatusNotProcessed, 2),
			item("p3", "Boné", "", domain.OrderItemStatusCompleted, 9),
		}},
		{Items: []domain.OrderItem{
			item("p1", "Camisa", "M", domain.OrderItemStatusCompleted, 1),
			item("p1", "Camisa", "P", domain.OrderItemStatusCancelled, 7),
		}},
	}

	sizes := SizeAnalytics(orders)

	assert.Equal(t, []domain.ProductSales{
		{Name: "M", Value: 3},
		{Name: "G", Value: 2},
	}, sizes)
}
