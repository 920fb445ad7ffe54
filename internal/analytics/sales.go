package analytics

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
)

// Aggregate soma o faturamento dos pedidos em cada janela a partir de now.
// As janelas se sobrepõem: um pedido de hoje conta em hoje, semana, mês e total.
func Aggregate(now time.Time, orders []domain.Order) domain.SalesReport {
	periods := NewPeriods(now)

	var (
		total     = decimal.Zero
		today     = decimal.Zero
		yesterday = decimal.Zero
		thisWeek  = decimal.Zero
		lastWeek  = decimal.Zero
		thisMonth = decimal.Zero
		lastMonth = decimal.Zero
	)

	for _, order := range orders {
		created := order.CreatedAt
		amount := order.Total

		total = total.Add(amount)

		if periods.Today.Contains(created) {
			today = today.Add(amount)
		}
		if periods.Yesterday.Contains(created) {
			yesterday = yesterday.Add(amount)
		}

		if !created.Before(periods.WeekStart) {
			thisWeek = thisWeek.Add(amount)
		}
		if periods.LastWeek.Contains(created) {
			lastWeek = lastWeek.Add(amount)
		}

		if !created.Before(periods.MonthStart) {
			thisMonth = thisMonth.Add(amount)
		}
		if periods.LastMonth.Contains(created) {
			lastMonth = lastMonth.Add(amount)
		}
	}

	return domain.SalesReport{
		TotalSales:     total,
		TodaySales:     today,
		YesterdaySales: yesterday,
		ThisWeekSales:  thisWeek,
		LastWeekSales:  lastWeek,
		ThisMonthSales: thisMonth,
		LastMonthSales: lastMonth,
		Growth: domain.Growth{
			Day:   FormatGrowth(SafeDivide(today, yesterday)),
			Week:  FormatGrowth(SafeDivide(thisWeek, lastWeek)),
			Month: FormatGrowth(SafeDivide(thisMonth, lastMonth)),
		},
	}
}

// EarningsTotals retorna o faturamento total e o valor ainda não pago
func EarningsTotals(orders []domain.Order) (earnings, unpaid decimal.Decimal) {
	earnings, unpaid = decimal.Zero, decimal.Zero
	for _, order := range orders {
		earnings = earnings.Add(order.Total)
		if !order.IsPaid {
			unpaid = unpaid.Add(order.Total)
		}
	}
	return earnings, unpaid
}
