package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/vendor-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/vendor-dashboard-api/pkg/log"
	"github.com/vfg2006/vendor-dashboard-api/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GetOverview retorna o resumo da página inicial do painel
func GetOverview(service dashboard.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := vendorClaims(w, r)
		if !ok {
			return
		}

		overview, err := service.GetOverview(r.Context(), claims.VendorID)
		if err != nil {
			writeServiceError(r.Context(), w, err, "Erro ao montar o painel")
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, overview)
	}
}

// GetSalesReport retorna as vendas por período e o crescimento
func GetSalesReport(service dashboard.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := vendorClaims(w, r)
		if !ok {
			return
		}

		report, err := service.GetSalesReport(r.Context(), claims.VendorID)
		if err != nil {
			writeServiceError(r.Context(), w, err, "Erro ao gerar relatório de vendas")
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, report)
	}
}

// ListStock aceita type=low|out, search, page e page_size
func ListStock(service dashboard.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := vendorClaims(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		pagination := utils.PaginationFromQuery(query)

		page, err := service.ListStock(r.Context(), claims.VendorID, dashboard.StockQuery{
			Type:     query.Get("type"),
			Search:   query.Get("search"),
			Page:     pagination.Page,
			PageSize: pagination.PageSize,
		})
		if err != nil {
			writeServiceError(r.Context(), w, err, "Erro ao listar estoque")
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, page)
	}
}

func GetOrderSummary(service dashboard.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := vendorClaims(w, r)
		if !ok {
			return
		}

		summary, err := service.GetOrderSummary(r.Context(), claims.VendorID)
		if err != nil {
			writeServiceError(r.Context(), w, err, "Erro ao resumir pedidos")
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, summary)
	}
}

func GetProductPerformance(service dashboard.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := vendorClaims(w, r)
		if !ok {
			return
		}

		performance, err := service.GetProductPerformance(r.Context(), claims.VendorID)
		if err != nil {
			writeServiceError(r.Context(), w, err, "Erro ao calcular desempenho dos produtos")
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, performance)
	}
}

func ListStockAlerts(service dashboard.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := vendorClaims(w, r)
		if !ok {
			return
		}

		// limit ausente ou inválido vira 0 e o serviço usa o padrão
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		snapshots, err := service.ListStockAlerts(r.Context(), claims.VendorID, limit)
		if err != nil {
			writeServiceError(r.Context(), w, err, "Erro ao listar alertas de estoque")
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, snapshots)
	}
}

// ExportSalesReport devolve a planilha XLSX. A planilha é gerada em memória para que
// uma falha ainda possa ser respondida como erro JSON.
func ExportSalesReport(service dashboard.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := vendorClaims(w, r)
		if !ok {
			return
		}

		var buf bytes.Buffer
		if err := service.ExportSalesReport(r.Context(), claims.VendorID, &buf); err != nil {
			writeServiceError(r.Context(), w, err, "Erro ao exportar relatório")
			return
		}

		filename := fmt.Sprintf("vendas-%s.xlsx", time.Now().Format("20060102"))
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)

		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar planilha")
		}
	}
}
