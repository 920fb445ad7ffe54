package cataloging

import (
	"context"
	"errors"
	"strings"

	"github.com/vfg2006/vendor-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/vendor-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
	"github.com/vfg2006/vendor-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/vendor-dashboard-api/pkg/log"
	"github.com/vfg2006/vendor-dashboard-api/pkg/utils"
)

// CreateCategory cria a categoria com nome único e envia as imagens para o host
func (s *Service) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*domain.Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Images = normalizeUploads(req.Images)

	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	existing, err := s.categoryRepo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, databaseError(ctx, err, "Erro ao buscar categoria por nome")
	}
	if existing != nil {
		return nil, NewCatalogError(ErrCategoryAlreadyExists, apiErrors.ErrAlreadyExists, "Categoria já existe, tente outro nome")
	}

	id, err := s.newID()
	if err != nil {
		return nil, NewCatalogError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador")
	}

	slug := utils.Slugify(req.Name)
	images, err := s.uploadImages(ctx, req.Images, slug)
	if err != nil {
		return nil, err
	}

	category := &domain.Category{
		ID:     id,
		Name:   req.Name,
		Slug:   slug,
		Images: images,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		s.destroyImages(ctx, images)
		if postgres.IsUniqueViolation(err) {
			return nil, NewCatalogError(ErrCategoryAlreadyExists, apiErrors.ErrAlreadyExists, "Categoria já existe, tente outro nome")
		}
		return nil, databaseError(ctx, err, "Erro ao criar categoria")
	}

	log.ForContext(ctx).WithField("category_id", category.ID).Info("Categoria criada")

	return category, nil
}

// UpdateCategory troca o nome e recalcula o slug
func (s *Service) UpdateCategory(ctx context.Context, req domain.UpdateCategoryRequest) (*domain.Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.ID == "" {
		return nil, NewCatalogError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "ID da categoria é obrigatório")
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	category, err := s.categoryRepo.Update(ctx, req.ID, req.Name, utils.Slugify(req.Name))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewCatalogError(ErrCategoryNotFound, apiErrors.ErrNotFound, req.ID)
		}
		if postgres.IsUniqueViolation(err) {
			return nil, NewCatalogError(ErrCategoryAlreadyExists, apiErrors.ErrAlreadyExists, "Categoria já existe, tente outro nome")
		}
		return nil, databaseError(ctx, err, "Erro ao atualizar categoria")
	}

	return category, nil
}

// DeleteCategory remove a categoria e depois as imagens hospedadas
func (s *Service) DeleteCategory(ctx context.Context, id string) (*domain.Category, error) {
	if id == "" {
		return nil, NewCatalogError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "ID da categoria é obrigatório")
	}

	category, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewCatalogError(ErrCategoryNotFound, apiErrors.ErrNotFound, id)
		}
		return nil, databaseError(ctx, err, "Erro ao remover categoria")
	}

	s.destroyImages(ctx, category.Images)

	return category, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, databaseError(ctx, err, "Erro ao listar categorias")
	}

	return categories, nil
}
