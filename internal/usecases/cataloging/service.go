package cataloging

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/vendor-dashboard-api/infrastructure/integrator/imagehost"
	"github.com/vfg2006/vendor-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
	"github.com/vfg2006/vendor-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/vendor-dashboard-api/pkg/log"
	"github.com/vfg2006/vendor-dashboard-api/pkg/utils"
)

// Cataloger reúne as operações de categorias e produtos usadas pelo painel
type Cataloger interface {
	CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, req domain.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)

	CreateProduct(ctx context.Context, vendorID string, req domain.CreateProductRequest) (*domain.Product, error)
	ListProducts(ctx context.Context, vendorID string, filters domain.ProductFilters) (*ProductPage, error)
	GetProduct(ctx context.Context, vendorID, productID string) (*domain.Product, error)
	UpdateSizeQty(ctx context.Context, vendorID, productID, sizeID string, qty int) error
}

type ProductPage struct {
	Products   []domain.Product `json:"products"`
	Pagination utils.Pagination `json:"pagination"`
}

type Service struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	images       imagehost.Client
	validate     *validator.Validate
	newID        func() (string, error)
}

func NewService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	images imagehost.Client,
) Cataloger {
	return &Service{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		images:       images,
		validate:     validator.New(),
		newID:        utils.GenerateID,
	}
}

// uploadImages decodifica e envia as imagens em ordem. Se alguma falhar, as já enviadas são removidas.
func (s *Service) uploadImages(ctx context.Context, uploads []domain.UploadImage, prefix string) ([]domain.Image, error) {
	images := make([]domain.Image, 0, len(uploads))

	for i, upload := range uploads {
		data, err := base64.StdEncoding.DecodeString(upload.Data)
		if err != nil {
			s.destroyImages(ctx, images)
			return nil, NewCatalogError(ErrInvalidImage, apiErrors.ErrInvalidFormat, fmt.Sprintf("imagem %d não está em base64", i))
		}

		filename := upload.Filename
		if filename == "" {
			filename = fmt.Sprintf("%s-%d", prefix, i+1)
		}

		image, err := s.images.Upload(ctx, data, filename)
		if err != nil {
			log.ForContext(ctx).WithError(err).WithField("filename", filename).Error("Erro ao enviar imagem")
			s.destroyImages(ctx, images)
			return nil, NewCatalogError(ErrImageUpload, apiErrors.ErrExternalService, err.Error())
		}

		images = append(images, *image)
	}

	return images, nil
}

// destroyImages remove as imagens sem interromper o fluxo em caso de falha
func (s *Service) destroyImages(ctx context.Context, images []domain.Image) {
	for _, image := range images {
		if image.PublicID == "" {
			continue
		}
		if err := s.images.Destroy(ctx, image.PublicID); err != nil {
			log.ForContext(ctx).WithError(err).WithField("public_id", image.PublicID).Warn("Erro ao remover imagem")
		}
	}
}

// normalizeUploads remove o prefixo data URL (data:image/png;base64,) enviado pelos navegadores
func normalizeUploads(uploads []domain.UploadImage) []domain.UploadImage {
	normalized := make([]domain.UploadImage, len(uploads))
	for i, upload := range uploads {
		data := strings.TrimSpace(upload.Data)
		if strings.HasPrefix(data, "data:") {
			if idx := strings.Index(data, ","); idx >= 0 {
				data = data[idx+1:]
			}
		}
		normalized[i] = domain.UploadImage{Filename: upload.Filename, Data: data}
	}
	return normalized
}

// validationError converte os erros do validator em um mapa campo -> regra violada
func validationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return NewCatalogError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Namespace()] = fieldErr.Tag()
	}

	return NewCatalogError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, fields)
}

func databaseError(ctx context.Context, err error, msg string) error {
	log.ForContext(ctx).WithError(err).Error(msg)
	return NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
}
