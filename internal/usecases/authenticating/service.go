package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/vendor-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/vendor-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/vendor-dashboard-api/internal/config"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
	"github.com/vfg2006/vendor-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/vendor-dashboard-api/pkg/log"
	"github.com/vfg2006/vendor-dashboard-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost é o custo bcrypt usado no cadastro
const PasswordCost = 12

type Authenticator interface {
	Register(ctx context.Context, req domain.RegisterVendorRequest) (*domain.Vendor, string, error)
	Login(ctx context.Context, email, password string) (*domain.Vendor, string, error)
	GetProfile(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	vendorRepo repository.VendorRepository
	cfg        config.Auth
	validate   *validator.Validate
	now        func() time.Time
}

func NewService(vendorRepo repository.VendorRepository, cfg config.Auth) Authenticator {
	return &Service{
		vendorRepo: vendorRepo,
		cfg:        cfg,
		validate:   validator.New(),
		now:        time.Now,
	}
}

// Register cadastra o vendedor e já devolve o token de acesso
func (s *Service) Register(ctx context.Context, req domain.RegisterVendorRequest) (*domain.Vendor, string, error) {
	req.Email = handleEmail(req.Email)

	if err := s.validate.Struct(req); err != nil {
		return nil, "", validationError(err)
	}

	existing, err := s.vendorRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if existing != nil {
		return nil, "", NewAuthError(ErrVendorAlreadyExists, apiErrors.ErrVendorAlreadyExists, "Email já cadastrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), PasswordCost)
	if err != nil {
		return nil, "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao processar senha")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador")
	}

	vendor, err := s.vendorRepo.Create(ctx, &domain.Vendor{
		ID:                   id,
		Name:                 strings.TrimSpace(req.Name),
		Email:                req.Email,
		PasswordHash:         string(hash),
		Address:              req.Address,
		PhoneNumber:          req.PhoneNumber,
		ZipCode:              req.ZipCode,
		HowDidYouHearAboutUs: req.HowDidYouHearAboutUs,
		Country:              strings.ToUpper(strings.TrimSpace(req.Country)),
		Role:                 domain.RoleVendor,
	})
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, "", NewAuthError(ErrVendorAlreadyExists, apiErrors.ErrVendorAlreadyExists, "Email já cadastrado")
		}
		return nil, "", NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	token, err := s.generateJWT(vendor)
	if err != nil {
		return nil, "", NewVendorAuthError(ErrTokenGeneration, apiErrors.ErrInternalServer, vendor.ID, err.Error())
	}

	log.ForContext(ctx).WithField("vendor_id", vendor.ID).Info("Vendedor cadastrado")

	return vendor, token, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*domain.Vendor, string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	vendor, err := s.vendorRepo.GetByEmail(ctx, handleEmail(email))
	if err != nil {
		return nil, "", NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if vendor == nil {
		return nil, "", NewAuthError(ErrVendorNotFound, apiErrors.ErrVendorNotFound, "Vendedor não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(vendor.PasswordHash), []byte(password)); err != nil {
		return nil, "", NewVendorAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, vendor.ID, "Senha incorreta")
	}

	token, err := s.generateJWT(vendor)
	if err != nil {
		return nil, "", NewVendorAuthError(ErrTokenGeneration, apiErrors.ErrInternalServer, vendor.ID, err.Error())
	}

	return vendor, token, nil
}

func (s *Service) GetProfile(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if vendor == nil {
		return nil, NewAuthError(ErrVendorNotFound, apiErrors.ErrVendorNotFound, "Vendedor não encontrado")
	}

	vendor.PasswordHash = ""
	return vendor, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, nil)
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.VendorID == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, nil)
	}

	return claims, nil
}

func (s *Service) generateJWT(vendor *domain.Vendor) (string, error) {
	now := s.now()
	claims := domain.Claims{
		VendorID:    vendor.ID,
		VendorName:  vendor.Name,
		VendorEmail: vendor.Email,
		Role:        vendor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   vendor.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

// validationError converte os erros do validator em um mapa campo -> regra violada
func validationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return NewAuthError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}

	return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, fields)
}
