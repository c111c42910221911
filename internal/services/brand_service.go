// internal/services/brand_service.go
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/ecom-backend/internal/models"
	"github.com/javajoker/ecom-backend/internal/query"
	"github.com/javajoker/ecom-backend/internal/utils"
)

type BrandService struct {
	repo *repository
}

func NewBrandService(db *gorm.DB, opts Options) *BrandService {
	return &BrandService{repo: newRepository(db, opts)}
}

// ListBrands returns active brands ordered by name with the number of active
// products each carries.
func (s *BrandService) ListBrands(ctx context.Context, filter query.BrandFilter, page, limit int) (utils.Page[models.BrandView], error) {
	conds, err := filter.Conditions()
	if err != nil {
		return utils.Page[models.BrandView]{}, err
	}

	key := utils.CacheKey("brands", filter.Search, fmt.Sprint(page), fmt.Sprint(limit))

	return cached(ctx, s.repo, key, func() (utils.Page[models.BrandView], error) {
		b := query.From("brands b").
			Select(
				"b.id", "b.name", "b.description", "b.logo_url", "b.website",
				"(SELECT COUNT(*) FROM products p WHERE p.brand_id = b.id AND p.is_active = TRUE) AS product_count",
			).
			Where(conds...).
			OrderBy("b.name ASC", "b.id ASC")

		rows, total, err := fetchPage[models.BrandView](ctx, s.repo, "brands.list", b, page, limit)
		if err != nil {
			return utils.Page[models.BrandView]{}, err
		}
		return utils.NewPage(rows, total, page, limit), nil
	})
}
