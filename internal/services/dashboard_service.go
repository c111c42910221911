// internal/services/dashboard_service.go
package services

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/javajoker/ecom-backend/internal/models"
	"github.com/javajoker/ecom-backend/internal/query"
)

const dashboardCacheKey = "dashboard:stats"

type statKey string

const (
	statTotalProducts    statKey = "total_products"
	statTotalCategories  statKey = "total_categories"
	statTotalBrands      statKey = "total_brands"
	statTotalCustomers   statKey = "total_customers"
	statTotalOrders      statKey = "total_orders"
	statTotalRevenue     statKey = "total_revenue"
	statPendingOrders    statKey = "pending_orders"
	statFeaturedProducts statKey = "featured_products"
)

type statQuery struct {
	key  statKey
	stmt query.Statement
}

func dashboardQueries() []statQuery {
	count := func(table string, conds ...query.Condition) query.Statement {
		return query.From(table).Select("COUNT(*)").Where(conds...).Build()
	}

	return []statQuery{
		{statTotalProducts, count("products", query.Eq("is_active", true))},
		{statTotalCategories, count("categories", query.Eq("is_active", true))},
		{statTotalBrands, count("brands", query.Eq("is_active", true))},
		{statTotalCustomers, count("customers", query.Eq("is_active", true))},
		{statTotalOrders, count("orders")},
		{statTotalRevenue, query.From("orders").
			Select("COALESCE(SUM(total_amount), 0)").
			Where(query.Eq("payment_status", string(models.PaymentStatusPaid))).
			Build()},
		{statPendingOrders, count("orders", query.Eq("status", string(models.OrderStatusPending)))},
		{statFeaturedProducts, count("products", query.Eq("is_featured", true), query.Eq("is_active", true))},
	}
}

type DashboardService struct {
	repo *repository
}

func NewDashboardService(db *gorm.DB, opts Options) *DashboardService {
	return &DashboardService{repo: newRepository(db, opts)}
}

// GetDashboardStats runs the eight aggregates concurrently and merges each
// result under its own key.
func (s *DashboardService) GetDashboardStats(ctx context.Context) (models.DashboardStats, error) {
	return cached(ctx, s.repo, dashboardCacheKey, func() (models.DashboardStats, error) {
		values, err := s.collect(ctx, dashboardQueries())
		if err != nil {
			return models.DashboardStats{}, err
		}

		return models.DashboardStats{
			TotalProducts:    values[statTotalProducts].IntPart(),
			TotalCategories:  values[statTotalCategories].IntPart(),
			TotalBrands:      values[statTotalBrands].IntPart(),
			TotalCustomers:   values[statTotalCustomers].IntPart(),
			TotalOrders:      values[statTotalOrders].IntPart(),
			TotalRevenue:     values[statTotalRevenue],
			PendingOrders:    values[statPendingOrders].IntPart(),
			FeaturedProducts: values[statFeaturedProducts].IntPart(),
		}, nil
	})
}

func (s *DashboardService) collect(ctx context.Context, queries []statQuery) (map[statKey]decimal.Decimal, error) {
	var mu sync.Mutex
	values := make(map[statKey]decimal.Decimal, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	for _, q := range queries {
		q := q
		g.Go(func() error {
			var v decimal.Decimal
			err := s.repo.exec(gctx, "dashboard."+string(q.key), func(tx *gorm.DB) error {
				return tx.Raw(q.stmt.SQL, q.stmt.Args...).Row().Scan(&v)
			})
			if err != nil {
				return err
			}

			mu.Lock()
			values[q.key] = v
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}
