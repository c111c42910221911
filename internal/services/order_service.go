// internal/services/order_service.go
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/javajoker/ecom-backend/internal/models"
	"github.com/javajoker/ecom-backend/internal/query"
	"github.com/javajoker/ecom-backend/internal/utils"
)

type OrderService struct {
	repo *repository
}

func NewOrderService(db *gorm.DB, opts Options) *OrderService {
	return &OrderService{repo: newRepository(db, opts)}
}

// Customer names are composed in Go; string concatenation is not portable
// across the supported dialects.
func orderBase() *query.Builder {
	return query.From("orders o").
		Select(
			"o.id", "o.order_number", "o.customer_id", "o.status",
			"o.subtotal", "o.tax_amount", "o.shipping_amount", "o.total_amount", "o.currency",
			"o.payment_status", "o.created_at", "o.updated_at",
			"c.first_name AS customer_first_name", "c.last_name AS customer_last_name",
			"COALESCE(c.email, '') AS customer_email",
		).
		Join("LEFT JOIN customers c ON c.id = o.customer_id")
}

func (s *OrderService) ListOrders(ctx context.Context, filter query.OrderFilter, page, limit int) (utils.Page[models.OrderSummary], error) {
	conds, err := filter.Conditions()
	if err != nil {
		return utils.Page[models.OrderSummary]{}, err
	}

	b := orderBase().Where(conds...).OrderBy("o.created_at DESC", "o.id DESC")
	rows, total, err := fetchPage[orderRow](ctx, s.repo, "orders.list", b, page, limit)
	if err != nil {
		return utils.Page[models.OrderSummary]{}, err
	}

	items := make([]models.OrderSummary, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.summary())
	}
	return utils.NewPage(items, total, page, limit), nil
}

// GetOrder loads an order with its line items. An order without items is
// found with an empty Items slice; found is false only when no order has id.
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*models.OrderDetail, bool, error) {
	if err := validID(id); err != nil {
		return nil, false, err
	}

	items, err := query.SubArray(s.repo.dialect,
		"order_items oi LEFT JOIN products p ON p.id = oi.product_id LEFT JOIN product_variants pv ON pv.id = oi.variant_id",
		"oi.order_id = o.id", "items",
		query.JSONField{Key: "id", Expr: "oi.id"},
		query.JSONField{Key: "product_id", Expr: "oi.product_id"},
		query.JSONField{Key: "product_name", Expr: "p.name"},
		query.JSONField{Key: "variant_id", Expr: "oi.variant_id"},
		query.JSONField{Key: "variant_name", Expr: "pv.variant_name"},
		query.JSONField{Key: "quantity", Expr: "oi.quantity"},
		query.JSONField{Key: "unit_price", Expr: "oi.unit_price"},
		query.JSONField{Key: "total_price", Expr: "oi.total_price"},
	)
	if err != nil {
		return nil, false, &StorageError{Op: "orders.get", Err: err}
	}

	stmt := orderBase().
		Select(items).
		Where(query.Eq("o.id", id)).
		Limit(1).
		Build()

	var row orderRow
	n, err := s.repo.raw(ctx, "orders.get", stmt, &row)
	if err != nil {
		return nil, false, err
	}
	if n == 0 {
		return nil, false, nil
	}

	detail, err := mapOrderDetail(row)
	if err != nil {
		return nil, false, &StorageError{Op: "orders.get", Err: err}
	}
	return detail, true, nil
}
