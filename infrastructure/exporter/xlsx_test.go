package exporter

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

func TestWriteSalesReport(t *testing.T) {
	report := domain.SalesReport{
		TotalSales:     decimal.NewFromInt(300),
		TodaySales:     decimal.NewFromInt(100),
		YesterdaySales: decimal.Zero,
		ThisWeekSales:  decimal.NewFromInt(100),
		LastWeekSales:  decimal.Zero,
		ThisMonthSales: decimal.NewFromInt(300),
		LastMonthSales: decimal.Zero,
		Growth:         domain.Growth{Day: "100.00", Week: "100.00", Month: "100.00"},
	}
	stock := domain.StockReport{
		LowStock:   []domain.StockRow{{ProductName: "Camisa", Size: "M", Qty: 3}},
		OutOfStock: []domain.StockRow{{ProductName: "Calça", Size: "40", Qty: 0}},
	}

	var buf bytes.Buffer
	err := WriteSalesReport(&buf, report, stock, time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{SalesSheet, StockSheet}, wb.GetSheetList())

	cell := func(sheet, axis string) string {
		v, err := wb.GetCellValue(sheet, axis)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "2024-01-14T12:00:00Z", cell(SalesSheet, "B1"))
	assert.Equal(t, "Período", cell(SalesSheet, "A3"))
	assert.Equal(t, "Total", cell(SalesSheet, "A4"))
	assert.Equal(t, "300", cell(SalesSheet, "B4"))
	assert.Equal(t, "Hoje", cell(SalesSheet, "A5"))
	assert.Equal(t, "100.00", cell(SalesSheet, "C5"))

	assert.Equal(t, StockStatusOut, cell(StockSheet, "A2"))
	assert.Equal(t, "Calça", cell(StockSheet, "B2"))
	assert.Equal(t, StockStatusLow, cell(StockSheet, "A3"))
	assert.Equal(t, "3", cell(StockSheet, "D3"))
}
