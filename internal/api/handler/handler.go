package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
	"github.com/vfg2006/vendor-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/vendor-dashboard-api/internal/usecases/cataloging"
	"github.com/vfg2006/vendor-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/vendor-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/vendor-dashboard-api/pkg/log"
	"github.com/vfg2006/vendor-dashboard-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao codificar resposta")
	}
}

// vendorClaims devolve o vendedor autenticado ou escreve 401
func vendorClaims(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Vendedor não autenticado", nil)
		return nil, false
	}
	return claims, true
}

// writeServiceError traduz os erros tipados dos serviços para a resposta da API.
// Detalhes de erros internos (5xx) não são expostos ao cliente.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error, fallback string) {
	var (
		code    string
		message string
		details any
	)

	var authErr *authenticating.AuthError
	var dashErr *dashboard.DashboardError
	var catalogErr *cataloging.CatalogError

	switch {
	case errors.As(err, &authErr):
		code, message, details = authErr.Code, authErr.Err.Error(), authErr.Details
	case errors.As(err, &dashErr):
		code, message, details = dashErr.Code, dashErr.Err.Error(), nil
		if dashErr.Details != "" {
			details = dashErr.Details
		}
	case errors.As(err, &catalogErr):
		code, message, details = catalogErr.Code, catalogErr.Err.Error(), catalogErr.Details
	default:
		log.ForContext(ctx).WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
		return
	}

	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		log.ForContext(ctx).WithError(err).Error(fallback)
		details = nil
	}

	apiErrors.WriteError(w, code, message, details)
}
