package analytics

import (
	"sort"

	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
)

// SummarizeOrders conta os pedidos por status. Um pedido entra em cada status que
// pelo menos uma de suas linhas possui.
func SummarizeOrders(orders []domain.Order) domain.OrderSummary {
	summary := domain.OrderSummary{}

	for _, order := range orders {
		if order.IsNew {
			summary.NewOrders++
		}

		statuses := make(map[string]bool, len(order.Items))
		for _, item := range order.Items {
			statuses[item.Status] = true
		}

		if statuses[domain.OrderItemStatusNotProcessed] {
			summary.PendingOrders++
		}
		if statuses[domain.OrderItemStatusCompleted] {
			summary.CompletedOrders++
		}
		if statuses[domain.OrderItemStatusCancelled] {
			summary.CancelledOrders++
		}
	}

	return summary
}

// RecentOrders devolve os limit pedidos mais recentes, do mais novo para o mais antigo
func RecentOrders(orders []domain.Order, limit int) []domain.Order {
	recent := make([]domain.Order, len(orders))
	copy(recent, orders)

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})

	if limit >= 0 && len(recent) > limit {
		recent = recent[:limit]
	}

	return recent
}

// TopSellingProducts soma as quantidades vendidas por produto, ignorando linhas canceladas
func TopSellingProducts(orders []domain.Order, limit int) []domain.ProductSales {
	totals := make(map[string]*domain.ProductSales)
	keys := make([]string, 0)

	for _, order := range orders {
		for _, item := range order.Items {
			if item.Status == domain.OrderItemStatusCancelled {
				continue
			}

			entry, ok := totals[item.ProductID]
			if !ok {
				entry = &domain.ProductSales{Name: item.Name}
				totals[item.ProductID] = entry
				keys = append(keys, item.ProductID)
			}
			entry.Value += item.Qty
		}
	}

	return rankSales(totals, keys, limit)
}

// SizeAnalytics soma as quantidades vendidas por tamanho
func SizeAnalytics(orders []domain.Order) []domain.ProductSales {
	totals := make(map[string]*domain.ProductSales)
	keys := make([]string, 0)

	for _, order := range orders {
		for _, item := range order.Items {
			if item.Status == domain.OrderItemStatusCancelled || item.Size == "" {
				continue
			}

			entry, ok := totals[item.Size]
			if !ok {
				entry = &domain.ProductSales{Name: item.Size}
				totals[item.Size] = entry
				keys = append(keys, item.Size)
			}
			entry.Value += item.Qty
		}
	}

	return rankSales(totals, keys, -1)
}

func rankSales(totals map[string]*domain.ProductSales, keys []string, limit int) []domain.ProductSales {
	ranked := make([]domain.ProductSales, 0, len(keys))
	for _, key := range keys {
		ranked = append(ranked, *totals[key])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].Name < ranked[j].Name
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
