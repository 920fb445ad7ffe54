package cataloging

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/vendor-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/vendor-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
	"github.com/vfg2006/vendor-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/vendor-dashboard-api/pkg/log"
	"github.com/vfg2006/vendor-dashboard-api/pkg/utils"
)

var maxDiscount = decimal.NewFromInt(100)

// CreateProduct cadastra o produto com uma variação (cor, imagens e tamanhos)
func (s *Service) CreateProduct(ctx context.Context, vendorID string, req domain.CreateProductRequest) (*domain.Product, error) {
	if vendorID == "" {
		return nil, NewCatalogError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "Vendedor não informado")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Images = normalizeUploads(req.Images)

	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := validatePricing(req); err != nil {
		return nil, err
	}

	if req.CategoryID != nil && *req.CategoryID != "" {
		category, err := s.categoryRepo.GetByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, databaseError(ctx, err, "Erro ao buscar categoria")
		}
		if category == nil {
			return nil, NewCatalogError(ErrCategoryNotFound, apiErrors.ErrNotFound, *req.CategoryID)
		}
	} else {
		req.CategoryID = nil
	}

	product, err := s.buildProduct(vendorID, req)
	if err != nil {
		return nil, NewCatalogError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador")
	}

	images, err := s.uploadImages(ctx, req.Images, product.Slug)
	if err != nil {
		return nil, err
	}
	product.SubProducts[0].Images = images

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.destroyImages(ctx, images)
		// categoria removida entre a verificação e o insert
		if postgres.IsForeignKeyViolation(err) && req.CategoryID != nil {
			return nil, NewCatalogError(ErrCategoryNotFound, apiErrors.ErrNotFound, *req.CategoryID)
		}
		return nil, databaseError(ctx, err, "Erro ao criar produto")
	}

	log.ForContext(ctx).
		WithField("vendor_id", vendorID).
		WithField("product_id", product.ID).
		Info("Produto criado")

	return product, nil
}

func (s *Service) buildProduct(vendorID string, req domain.CreateProductRequest) (*domain.Product, error) {
	productID, err := s.newID()
	if err != nil {
		return nil, err
	}
	subProductID, err := s.newID()
	if err != nil {
		return nil, err
	}

	sizes := make([]domain.Size, 0, len(req.Sizes))
	for _, size := range req.Sizes {
		sizeID, err := s.newID()
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, domain.Size{
			ID:           sizeID,
			SubProductID: subProductID,
			Size:         strings.TrimSpace(size.Size),
			Qty:          size.Qty,
			Price:        size.Price,
		})
	}

	return &domain.Product{
		ID:          productID,
		VendorID:    vendorID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Slug:        utils.Slugify(req.Name),
		SubProducts: []domain.SubProduct{
			{
				ID:         subProductID,
				ProductID:  productID,
				SKU:        req.SKU,
				Color:      req.Color,
				ColorImage: req.ColorImage,
				Discount:   req.Discount,
				Sizes:      sizes,
			},
		},
	}, nil
}

func validatePricing(req domain.CreateProductRequest) error {
	if req.Discount.IsNegative() || req.Discount.GreaterThan(maxDiscount) {
		return NewCatalogError(ErrInvalidPrice, apiErrors.ErrInvalidFormat, "Desconto deve estar entre 0 e 100")
	}
	for _, size := range req.Sizes {
		if !size.Price.IsPositive() {
			return NewCatalogError(ErrInvalidPrice, apiErrors.ErrInvalidFormat, "Preço do tamanho "+size.Size+" deve ser maior que zero")
		}
	}
	return nil
}

// ListProducts lista os produtos do vendedor com busca por nome e paginação por offset
func (s *Service) ListProducts(ctx context.Context, vendorID string, filters domain.ProductFilters) (*ProductPage, error) {
	if vendorID == "" {
		return nil, NewCatalogError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "Vendedor não informado")
	}

	pagination := utils.NewPagination(filters.Page, filters.PageSize)
	filters.Page = pagination.Page
	filters.PageSize = pagination.PageSize

	products, total, err := s.productRepo.List(ctx, vendorID, filters)
	if err != nil {
		return nil, databaseError(ctx, err, "Erro ao listar produtos")
	}

	return &ProductPage{
		Products:   products,
		Pagination: pagination.WithTotal(total),
	}, nil
}

func (s *Service) GetProduct(ctx context.Context, vendorID, productID string) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, vendorID, productID)
	if err != nil {
		return nil, databaseError(ctx, err, "Erro ao buscar produto")
	}
	if product == nil {
		return nil, NewCatalogError(ErrProductNotFound, apiErrors.ErrNotFound, productID)
	}

	return product, nil
}

// UpdateSizeQty ajusta o estoque de um tamanho. O tamanho precisa pertencer a um produto do vendedor.
func (s *Service) UpdateSizeQty(ctx context.Context, vendorID, productID, sizeID string, qty int) error {
	if qty < 0 {
		return NewCatalogError(ErrInvalidQuantity, apiErrors.ErrInvalidFormat, "Quantidade não pode ser negativa")
	}
	if productID == "" || sizeID == "" {
		return NewCatalogError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "Produto e tamanho são obrigatórios")
	}

	if err := s.productRepo.UpdateSizeQty(ctx, vendorID, productID, sizeID, qty); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewCatalogError(ErrSizeNotFound, apiErrors.ErrNotFound, sizeID)
		}
		return databaseError(ctx, err, "Erro ao atualizar estoque")
	}

	return nil
}
