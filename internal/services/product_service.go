// internal/services/product_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/javajoker/ecom-backend/internal/models"
	"github.com/javajoker/ecom-backend/internal/query"
	"github.com/javajoker/ecom-backend/internal/utils"
)

type ProductService struct {
	repo *repository
}

func NewProductService(db *gorm.DB, opts Options) *ProductService {
	return &ProductService{repo: newRepository(db, opts)}
}

// productBase selects the list projection. Derived aggregates are correlated
// sub-selects so the count statement shares the FROM and WHERE clauses
// without a GROUP BY.
func productBase() *query.Builder {
	return query.From("products p").
		Select(
			"p.id", "p.name", "p.description", "p.short_description", "p.sku",
			"p.price", "p.compare_price",
			"p.category_id", "c.name AS category_name",
			"p.brand_id", "b.name AS brand_name",
			"p.is_active", "p.is_featured", "p.created_at", "p.updated_at",
			"(SELECT COUNT(*) FROM product_variants pv WHERE pv.product_id = p.id AND pv.is_active = TRUE) AS variant_count",
			"(SELECT COALESCE(SUM(pv.stock_quantity), 0) FROM product_variants pv WHERE pv.product_id = p.id AND pv.is_active = TRUE) AS total_stock",
		).
		Join("LEFT JOIN categories c ON c.id = p.category_id").
		Join("LEFT JOIN brands b ON b.id = p.brand_id")
}

func (s *ProductService) ListProducts(ctx context.Context, filter query.ProductFilter, sort query.ProductSort, page, limit int) (utils.Page[models.ProductSummary], error) {
	conds, err := filter.Conditions()
	if err != nil {
		return utils.Page[models.ProductSummary]{}, err
	}
	orderBy, err := sort.OrderBy()
	if err != nil {
		return utils.Page[models.ProductSummary]{}, err
	}

	b := productBase().Where(conds...).OrderBy(orderBy...)
	rows, total, err := fetchPage[models.ProductSummary](ctx, s.repo, "products.list", b, page, limit)
	if err != nil {
		return utils.Page[models.ProductSummary]{}, err
	}

	return utils.NewPage(rows, total, page, limit), nil
}

func (s *ProductService) ListFeaturedProducts(ctx context.Context, page, limit int) (utils.Page[models.ProductSummary], error) {
	featured := true
	return s.ListProducts(ctx, query.ProductFilter{Featured: &featured}, query.ProductSort{}, page, limit)
}

// SearchProducts requires a non-blank term.
func (s *ProductService) SearchProducts(ctx context.Context, term string, page, limit int) (utils.Page[models.ProductSummary], error) {
	if strings.TrimSpace(term) == "" {
		return utils.Page[models.ProductSummary]{}, fmt.Errorf("%w: search term is required", ErrInvalidFilter)
	}
	return s.ListProducts(ctx, query.ProductFilter{Search: term}, query.ProductSort{}, page, limit)
}

func (s *ProductService) ListProductsByCategory(ctx context.Context, categoryID int64, page, limit int) (utils.Page[models.ProductSummary], error) {
	return s.ListProducts(ctx, query.ProductFilter{CategoryID: &categoryID}, query.ProductSort{}, page, limit)
}

func (s *ProductService) ListProductsByBrand(ctx context.Context, brandID int64, page, limit int) (utils.Page[models.ProductSummary], error) {
	return s.ListProducts(ctx, query.ProductFilter{BrandID: &brandID}, query.ProductSort{}, page, limit)
}

// GetProduct loads an active product with its active variants, images and
// attributes in one statement. found is false when no active product has id.
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.ProductDetail, bool, error) {
	if err := validID(id); err != nil {
		return nil, false, err
	}

	d := s.repo.dialect
	variants, err := query.SubArray(d, "product_variants pv", "pv.product_id = p.id AND pv.is_active = TRUE", "variants",
		query.JSONField{Key: "id", Expr: "pv.id"},
		query.JSONField{Key: "variant_name", Expr: "pv.variant_name"},
		query.JSONField{Key: "sku", Expr: "pv.sku"},
		query.JSONField{Key: "price", Expr: "pv.price"},
		query.JSONField{Key: "stock_quantity", Expr: "pv.stock_quantity"},
	)
	if err != nil {
		return nil, false, &StorageError{Op: "products.get", Err: err}
	}
	images, err := query.SubArray(d, "product_images pi", "pi.product_id = p.id", "images",
		query.JSONField{Key: "id", Expr: "pi.id"},
		query.JSONField{Key: "image_url", Expr: "pi.image_url"},
		query.JSONField{Key: "alt_text", Expr: "pi.alt_text"},
		query.JSONField{Key: "is_primary", Expr: "pi.is_primary"},
		query.JSONField{Key: "sort_order", Expr: "pi.sort_order"},
	)
	if err != nil {
		return nil, false, &StorageError{Op: "products.get", Err: err}
	}
	attributes, err := query.SubArray(d, "product_attributes pa", "pa.product_id = p.id", "attributes",
		query.JSONField{Key: "id", Expr: "pa.id"},
		query.JSONField{Key: "attribute_name", Expr: "pa.attribute_name"},
		query.JSONField{Key: "attribute_value", Expr: "pa.attribute_value"},
	)
	if err != nil {
		return nil, false, &StorageError{Op: "products.get", Err: err}
	}

	stmt := productBase().
		Select(variants, images, attributes).
		Where(query.Eq("p.id", id), query.Eq("p.is_active", true)).
		Limit(1).
		Build()

	var row productDetailRow
	n, err := s.repo.raw(ctx, "products.get", stmt, &row)
	if err != nil {
		return nil, false, err
	}
	if n == 0 {
		return nil, false, nil
	}

	detail, err := mapProductDetail(row)
	if err != nil {
		return nil, false, &StorageError{Op: "products.get", Err: err}
	}
	return detail, true, nil
}
