package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
	"github.com/vfg2006/vendor-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/vendor-dashboard-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyVendor contextKey = "vendor"

	// TokenCookieName é o cookie gravado no login, aceito como alternativa ao header Authorization
	TokenCookieName = "vendor_token"
)

var publicPaths = map[string]bool{
	"/healthcheck": true,
	"/v1/signin":   true,
	"/v1/signup":   true,
}

type vendorTagger interface {
	SetVendorID(vendorID string)
}

// TokenValidator é a parte do autenticador usada pelo middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, ok := extractToken(r)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de acesso obrigatório", nil)
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				if errors.Is(err, authenticating.ErrExpiredToken) {
					apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Sessão expirada, faça login novamente", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				return
			}

			if tagger, ok := w.(vendorTagger); ok {
				tagger.SetVendorID(claims.VendorID)
			}

			ctx := context.WithValue(r.Context(), ContextKeyVendor, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken lê o Bearer token do header e, na falta dele, o cookie do login
func extractToken(r *http.Request) (string, bool) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return "", false
		}
		return tokenString, true
	}

	cookie, err := r.Cookie(TokenCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}

// ClaimsFromContext devolve o vendedor autenticado pela requisição
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyVendor).(*domain.Claims)
	return claims, ok && claims != nil
}
