package handler

import (
	"net/http"

	"github.com/vfg2006/vendor-dashboard-api/internal/config"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
	"github.com/vfg2006/vendor-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/vendor-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/vendor-dashboard-api/pkg/log"
	"github.com/vfg2006/vendor-dashboard-api/pkg/middleware"
)

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	Vendor  *domain.Vendor `json:"vendor"`
}

// Signup cadastra o vendedor e já devolve o token, também gravado no cookie vendor_token
func Signup(service authenticating.Authenticator, cfg config.Auth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RegisterVendorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		vendor, token, err := service.Register(r.Context(), req)
		if err != nil {
			writeServiceError(r.Context(), w, err, "Erro ao cadastrar vendedor")
			return
		}

		setTokenCookie(w, token, cfg)
		writeJSON(r.Context(), w, http.StatusCreated, AuthResponse{
			Message: "Cadastro realizado com sucesso",
			Token:   token,
			Vendor:  vendor,
		})
	}
}

func Signin(service authenticating.Authenticator, cfg config.Auth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SigninRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		vendor, token, err := service.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if authenticating.IsCredentialsError(err) {
				log.ForContext(r.Context()).WithField("email", req.Email).Warn("Tentativa de login inválida")
			}
			writeServiceError(r.Context(), w, err, "Erro interno ao realizar login")
			return
		}

		setTokenCookie(w, token, cfg)
		writeJSON(r.Context(), w, http.StatusOK, AuthResponse{
			Message: "Login realizado com sucesso",
			Token:   token,
			Vendor:  vendor,
		})
	}
}

// GetMe retorna o perfil do vendedor logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := vendorClaims(w, r)
		if !ok {
			return
		}

		vendor, err := service.GetProfile(r.Context(), claims.VendorID)
		if err != nil {
			writeServiceError(r.Context(), w, err, "Erro ao obter dados do vendedor")
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, vendor)
	}
}

func setTokenCookie(w http.ResponseWriter, token string, cfg config.Auth) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.CookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}
