// internal/services/customer_service.go
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/javajoker/ecom-backend/internal/models"
	"github.com/javajoker/ecom-backend/internal/query"
	"github.com/javajoker/ecom-backend/internal/utils"
)

type CustomerService struct {
	repo *repository
}

func NewCustomerService(db *gorm.DB, opts Options) *CustomerService {
	return &CustomerService{repo: newRepository(db, opts)}
}

// ListCustomers returns customers newest first with their order count and
// lifetime order total.
func (s *CustomerService) ListCustomers(ctx context.Context, filter query.CustomerFilter, page, limit int) (utils.Page[models.CustomerSummary], error) {
	conds, err := filter.Conditions()
	if err != nil {
		return utils.Page[models.CustomerSummary]{}, err
	}

	b := query.From("customers c").
		Select(
			"c.id", "c.email", "c.first_name", "c.last_name", "c.phone",
			"c.is_active", "c.email_verified", "c.created_at",
			"(SELECT COUNT(*) FROM orders o WHERE o.customer_id = c.id) AS total_orders",
			"(SELECT COALESCE(SUM(o.total_amount), 0) FROM orders o WHERE o.customer_id = c.id) AS total_spent",
		).
		Where(conds...).
		OrderBy("c.created_at DESC", "c.id DESC")

	rows, total, err := fetchPage[models.CustomerSummary](ctx, s.repo, "customers.list", b, page, limit)
	if err != nil {
		return utils.Page[models.CustomerSummary]{}, err
	}
	return utils.NewPage(rows, total, page, limit), nil
}
