// Package exporter gera a planilha de vendas e estoque baixada pelo painel do vendedor.
package exporter

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	SalesSheet = "Vendas"
	StockSheet = "Estoque"
)

const (
	StockStatusLow = "Estoque baixo"
	StockStatusOut = "Sem estoque"
)

type salesLine struct {
	label  string
	amount decimal.Decimal
	growth string
}

// WriteSalesReport grava no writer um XLSX com as abas Vendas e Estoque
func WriteSalesReport(w io.Writer, report domain.SalesReport, stock domain.StockReport, generatedAt time.Time) error {
	wb := excelize.NewFile()
	defer wb.Close()

	if err := wb.SetSheetName(wb.GetSheetName(0), SalesSheet); err != nil {
		return fmt.Errorf("erro ao renomear aba: %w", err)
	}
	if _, err := wb.NewSheet(StockSheet); err != nil {
		return fmt.Errorf("erro ao criar aba de estoque: %w", err)
	}

	if err := writeSales(wb, report, generatedAt); err != nil {
		return err
	}
	if err := writeStock(wb, stock); err != nil {
		return err
	}

	if err := wb.Write(w); err != nil {
		return fmt.Errorf("erro ao gravar planilha: %w", err)
	}

	return nil
}

func writeSales(wb *excelize.File, report domain.SalesReport, generatedAt time.Time) error {
	lines := []salesLine{
		{label: "Total", amount: report.TotalSales},
		{label: "Hoje", amount: report.TodaySales, growth: report.Growth.Day},
		{label: "Ontem", amount: report.YesterdaySales},
		{label: "Esta semana", amount: report.ThisWeekSales, growth: report.Growth.Week},
		{label: "Semana passada", amount: report.LastWeekSales},
		{label: "Este mês", amount: report.ThisMonthSales, growth: report.Growth.Month},
		{label: "Mês passado", amount: report.LastMonthSales},
	}

	rows := [][]interface{}{
		{"Gerado em", generatedAt.Format(time.RFC3339)},
		{},
		{"Período", "Vendas", "Crescimento (%)"},
	}
	for _, line := range lines {
		rows = append(rows, []interface{}{line.label, line.amount.InexactFloat64(), line.growth})
	}

	return setRows(wb, SalesSheet, rows)
}

func writeStock(wb *excelize.File, stock domain.StockReport) error {
	rows := [][]interface{}{
		{"Situação", "Produto", "Tamanho", "Quantidade"},
	}
	for _, row := range stock.OutOfStock {
		rows = append(rows, []interface{}{StockStatusOut, row.ProductName, row.Size, row.Qty})
	}
	for _, row := range stock.LowStock {
		rows = append(rows, []interface{}{StockStatusLow, row.ProductName, row.Size, row.Qty})
	}

	return setRows(wb, StockSheet, rows)
}

func setRows(wb *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}

		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("erro ao escrever linha %d da aba %s: %w", i+1, sheet, err)
		}
	}

	return nil
}
