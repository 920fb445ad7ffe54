package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/vendor-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/vendor-dashboard-api/internal/domain"
	"github.com/vfg2006/vendor-dashboard-api/pkg/utils"
)

const (
	productsTable    = "products"
	subProductsTable = "sub_products"
	sizesTable       = "sizes"
)

var productColumns = []string{"id", "vendor_id", "category_id", "name", "description", "slug", "created_at", "updated_at"}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	List(ctx context.Context, vendorID string, filters domain.ProductFilters) ([]domain.Product, int, error)
	// ListWithStock devolve todos os produtos do vendedor com variações e tamanhos, em ordem de cadastro
	ListWithStock(ctx context.Context, vendorID string) ([]domain.Product, error)
	GetByID(ctx context.Context, vendorID, productID string) (*domain.Product, error)
	Count(ctx context.Context, vendorID string) (int, error)
	UpdateSizeQty(ctx context.Context, vendorID, productID, sizeID string, qty int) error
}

type productRepository struct {
	conn postgres.Conn
}

func NewProductRepository(conn postgres.Conn) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

// Create grava produto, variações e tamanhos na mesma transação
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Insert(productsTable).
			Columns("id", "vendor_id", "category_id", "name", "description", "slug").
			Values(product.ID, product.VendorID, product.CategoryID, product.Name, product.Description, product.Slug).
			Suffix("RETURNING created_at, updated_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&product.CreatedAt, &product.UpdatedAt); err != nil {
			return fmt.Errorf("erro ao inserir produto: %w", err)
		}

		for i, sub := range product.SubProducts {
			images, err := json.Marshal(sub.Images)
			if err != nil {
				return fmt.Errorf("erro ao serializar imagens: %w", err)
			}

			query, args, err := squirrel.
				Insert(subProductsTable).
				Columns("id", "product_id", "sku", "color", "color_image", "images", "discount", "position").
				Values(sub.ID, product.ID, sub.SKU, sub.Color, sub.ColorImage, images, sub.Discount, i).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao inserir variação: %w", err)
			}

			if len(sub.Sizes) == 0 {
				continue
			}

			sizes := squirrel.
				Insert(sizesTable).
				Columns("id", "sub_product_id", "size", "qty", "price", "position").
				PlaceholderFormat(squirrel.Dollar)
			for j, size := range sub.Sizes {
				sizes = sizes.Values(size.ID, sub.ID, size.Size, size.Qty, size.Price, j)
			}

			query, args, err = sizes.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao inserir tamanhos: %w", err)
			}
		}

		return nil
	})
}

func (r *productRepository) List(ctx context.Context, vendorID string, filters domain.ProductFilters) ([]domain.Product, int, error) {
	where := squirrel.And{squirrel.Eq{"vendor_id": vendorID}}
	if search := strings.TrimSpace(filters.Search); search != "" {
		where = append(where, squirrel.ILike{"name": "%" + search + "%"})
	}

	countSQL, countArgs, err := squirrel.
		Select("COUNT(*)").
		From(productsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	builder := squirrel.
		Select(productColumns...).
		From(productsTable).
		Where(where).
		OrderBy("created_at DESC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.PageSize > 0 {
		pagination := utils.NewPagination(filters.Page, filters.PageSize)
		builder = builder.Limit(uint64(pagination.PageSize)).Offset(uint64(pagination.Offset()))
	}

	products, err := r.selectProducts(ctx, builder)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) ListWithStock(ctx context.Context, vendorID string) ([]domain.Product, error) {
	return r.selectProducts(ctx, squirrel.
		Select(productColumns...).
		From(productsTable).
		Where(squirrel.Eq{"vendor_id": vendorID}).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar))
}

// GetByID retorna nil, nil quando o produto não existe ou pertence a outro vendedor
func (r *productRepository) GetByID(ctx context.Context, vendorID, productID string) (*domain.Product, error) {
	products, err := r.selectProducts(ctx, squirrel.
		Select(productColumns...).
		From(productsTable).
		Where(squirrel.Eq{"id": productID, "vendor_id": vendorID}).
		PlaceholderFormat(squirrel.Dollar))
	if err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return nil, nil
	}

	return &products[0], nil
}

func (r *productRepository) Count(ctx context.Context, vendorID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(productsTable).
		Where(squirrel.Eq{"vendor_id": vendorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	return count, nil
}

// UpdateSizeQty altera o estoque de um tamanho, somente se o produto for do vendedor
func (r *productRepository) UpdateSizeQty(ctx context.Context, vendorID, productID, sizeID string, qty int) error {
	query, args, err := squirrel.
		Update(sizesTable).
		Set("qty", qty).
		Where(squirrel.Eq{"id": sizeID}).
		Where("sub_product_id IN (SELECT sp.id FROM sub_products sp JOIN products p ON p.id = sp.product_id WHERE p.id = ? AND p.vendor_id = ?)", productID, vendorID).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar estoque: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	touch, touchArgs, err := squirrel.
		Update(productsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(ctx, touch, touchArgs...)
	return err
}

func (r *productRepository) selectProducts(ctx context.Context, builder squirrel.SelectBuilder) ([]domain.Product, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.VendorID, &p.CategoryID, &p.Name, &p.Description, &p.Slug, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		p.SubProducts = make([]domain.SubProduct, 0)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if err := r.loadVariants(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

// loadVariants preenche variações e tamanhos mantendo a ordem de cadastro (position)
func (r *productRepository) loadVariants(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	productIndex := make(map[string]int, len(products))
	productIDs := make([]string, 0, len(products))
	for i, p := range products {
		productIndex[p.ID] = i
		productIDs = append(productIDs, p.ID)
	}

	query, args, err := squirrel.
		Select("id", "product_id", "sku", "color", "color_image", "images", "discount").
		From(subProductsTable).
		Where(squirrel.Eq{"product_id": productIDs}).
		OrderBy("position ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao buscar variações: %w", err)
	}
	defer rows.Close()

	type subRef struct{ product, sub int }
	subIndex := make(map[string]subRef)
	subIDs := make([]string, 0)

	for rows.Next() {
		var (
			sub    domain.SubProduct
			images []byte
		)
		if err := rows.Scan(&sub.ID, &sub.ProductID, &sub.SKU, &sub.Color, &sub.ColorImage, &images, &sub.Discount); err != nil {
			return fmt.Errorf("erro ao escanear variação: %w", err)
		}

		sub.Images = make([]domain.Image, 0)
		if len(images) > 0 {
			if err := json.Unmarshal(images, &sub.Images); err != nil {
				return errors.Wrapf(err, "imagens inválidas na variação %s", sub.ID)
			}
		}
		sub.Sizes = make([]domain.Size, 0)

		pi := productIndex[sub.ProductID]
		products[pi].SubProducts = append(products[pi].SubProducts, sub)
		subIndex[sub.ID] = subRef{product: pi, sub: len(products[pi].SubProducts) - 1}
		subIDs = append(subIDs, sub.ID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if len(subIDs) == 0 {
		return nil
	}

	query, args, err = squirrel.
		Select("id", "sub_product_id", "size", "qty", "price").
		From(sizesTable).
		Where(squirrel.Eq{"sub_product_id": subIDs}).
		OrderBy("position ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	sizeRows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao buscar tamanhos: %w", err)
	}
	defer sizeRows.Close()

	for sizeRows.Next() {
		var size domain.Size
		if err := sizeRows.Scan(&size.ID, &size.SubProductID, &size.Size, &size.Qty, &size.Price); err != nil {
			return fmt.Errorf("erro ao escanear tamanho: %w", err)
		}

		ref := subIndex[size.SubProductID]
		sub := &products[ref.product].SubProducts[ref.sub]
		sub.Sizes = append(sub.Sizes, size)
	}

	return sizeRows.Err()
}
