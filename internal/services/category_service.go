// internal/services/category_service.go
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/ecom-backend/internal/models"
	"github.com/javajoker/ecom-backend/internal/query"
	"github.com/javajoker/ecom-backend/internal/utils"
)

type CategoryService struct {
	repo *repository
}

func NewCategoryService(db *gorm.DB, opts Options) *CategoryService {
	return &CategoryService{repo: newRepository(db, opts)}
}

func categoryBase() *query.Builder {
	return query.From("categories c").
		Select(
			"c.id", "c.name", "c.description", "c.parent_id", "c.created_at", "c.updated_at",
			"(SELECT COUNT(*) FROM products p WHERE p.category_id = c.id AND p.is_active = TRUE) AS product_count",
		)
}

// ListCategories returns active categories ordered by name. Results are
// cached per filter and page.
func (s *CategoryService) ListCategories(ctx context.Context, filter query.CategoryFilter, page, limit int) (utils.Page[models.CategoryView], error) {
	conds, err := filter.Conditions()
	if err != nil {
		return utils.Page[models.CategoryView]{}, err
	}

	parent := int64(0)
	if filter.ParentID != nil {
		parent = *filter.ParentID
	}
	key := utils.CacheKey("categories", filter.Search, fmt.Sprint(parent), fmt.Sprint(page), fmt.Sprint(limit))

	return cached(ctx, s.repo, key, func() (utils.Page[models.CategoryView], error) {
		b := categoryBase().Where(conds...).OrderBy("c.name ASC", "c.id ASC")
		rows, total, err := fetchPage[models.CategoryView](ctx, s.repo, "categories.list", b, page, limit)
		if err != nil {
			return utils.Page[models.CategoryView]{}, err
		}
		return utils.NewPage(rows, total, page, limit), nil
	})
}

// GetCategory returns an active category. found is false otherwise.
func (s *CategoryService) GetCategory(ctx context.Context, id int64) (*models.CategoryView, bool, error) {
	if err := validID(id); err != nil {
		return nil, false, err
	}

	stmt := categoryBase().
		Where(query.Eq("c.id", id), query.Eq("c.is_active", true)).
		Limit(1).
		Build()

	var category models.CategoryView
	n, err := s.repo.raw(ctx, "categories.get", stmt, &category)
	if err != nil {
		return nil, false, err
	}
	if n == 0 {
		return nil, false, nil
	}
	return &category, true, nil
}
