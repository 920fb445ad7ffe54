package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
	"github.com/vfg2006/vendor-dashboard-api/internal/usecases/cataloging"
	"github.com/vfg2006/vendor-dashboard-api/pkg/apiErrors"
)

func ListCategories(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := service.ListCategories(r.Context())
		if err != nil {
			writeServiceError(r.Context(), w, err, "Erro ao listar categorias")
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, categories)
	}
}

func CreateCategory(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		category, err := service.CreateCategory(r.Context(), req)
		if err != nil {
			writeServiceError(r.Context(), w, err, "Erro ao criar categoria")
			return
		}

		writeJSON(r.Context(), w, http.StatusCreated, category)
	}
}

func UpdateCategory(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		category, err := service.UpdateCategory(r.Context(), req)
		if err != nil {
			writeServiceError(r.Context(), w, err, "Erro ao atualizar categoria")
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, category)
	}
}

// DeleteCategory remove a categoria e as imagens hospedadas
func DeleteCategory(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		category, err := service.DeleteCategory(r.Context(), id)
		if err != nil {
			writeServiceError(r.Context(), w, err, "Erro ao remover categoria")
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, category)
	}
}
