package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
	"github.com/vfg2006/vendor-dashboard-api/internal/usecases/cataloging"
	"github.com/vfg2006/vendor-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/vendor-dashboard-api/pkg/utils"
)

type UpdateSizeQtyRequest struct {
	Qty *int `json:"qty"`
}

// ListProducts lista os produtos do vendedor logado (search, page, page_size)
func ListProducts(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := vendorClaims(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		pagination := utils.PaginationFromQuery(query)

		page, err := service.ListProducts(r.Context(), claims.VendorID, domain.ProductFilters{
			Search:   query.Get("search"),
			Page:     pagination.Page,
			PageSize: pagination.PageSize,
		})
		if err != nil {
			writeServiceError(r.Context(), w, err, "Erro ao listar produtos")
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, page)
	}
}

func CreateProduct(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := vendorClaims(w, r)
		if !ok {
			return
		}

		var req domain.CreateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		product, err := service.CreateProduct(r.Context(), claims.VendorID, req)
		if err != nil {
			writeServiceError(r.Context(), w, err, "Erro ao criar produto")
			return
		}

		writeJSON(r.Context(), w, http.StatusCreated, product)
	}
}

func GetProduct(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := vendorClaims(w, r)
		if !ok {
			return
		}

		productID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		product, err := service.GetProduct(r.Context(), claims.VendorID, productID)
		if err != nil {
			writeServiceError(r.Context(), w, err, "Erro ao buscar produto")
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, product)
	}
}

// UpdateSizeQty ajusta o estoque de um tamanho do produto
func UpdateSizeQty(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := vendorClaims(w, r)
		if !ok {
			return
		}

		params := httprouter.ParamsFromContext(r.Context())

		var req UpdateSizeQtyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if req.Qty == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Quantidade é obrigatória", nil)
			return
		}

		err := service.UpdateSizeQty(r.Context(), claims.VendorID, params.ByName("id"), params.ByName("size_id"), *req.Qty)
		if err != nil {
			writeServiceError(r.Context(), w, err, "Erro ao atualizar estoque")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
