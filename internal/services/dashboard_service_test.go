// internal/services/dashboard_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/ecom-backend/internal/cache"
	"github.com/javajoker/ecom-backend/internal/models"
	"github.com/javajoker/ecom-backend/internal/testutil"
)

func TestGetDashboardStats(t *testing.T) {
	db := testutil.NewTestDB(t)
	for i := 0; i < 5; i++ {
		testutil.CreateProduct(t, db, models.Product{Name: "P", IsActive: true, IsFeatured: i < 2})
	}
	testutil.CreateProduct(t, db, models.Product{Name: "Hidden", IsActive: false, IsFeatured: true})
	testutil.CreateCategory(t, db, "Tools", true)
	testutil.CreateCategory(t, db, "Archived", false)
	testutil.CreateBrand(t, db, "Acme", true)
	seedOrders(t, db)
	svc := NewDashboardService(db, Options{})

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(5), stats.TotalProducts)
	assert.Equal(t, int64(2), stats.FeaturedProducts)
	assert.Equal(t, int64(1), stats.TotalCategories)
	assert.Equal(t, int64(1), stats.TotalBrands)
	assert.Equal(t, int64(2), stats.TotalCustomers)
	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.PendingOrders)
	// Only paid orders count as revenue.
	assert.True(t, stats.TotalRevenue.Equal(testutil.Price("105.75")), stats.TotalRevenue.String())
}

func TestGetDashboardStats_EmptyStore(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewDashboardService(db, Options{})

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{TotalRevenue: stats.TotalRevenue}, stats)
	assert.True(t, stats.TotalRevenue.IsZero())
}

func TestGetDashboardStats_Cached(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateProduct(t, db, models.Product{Name: "P", IsActive: true})
	store := cache.NewMemory()
	svc := NewDashboardService(db, Options{Cache: store})
	ctx := context.Background()

	stats, err := svc.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalProducts)

	testutil.CreateProduct(t, db, models.Product{Name: "Q", IsActive: true})

	stats, err = svc.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalProducts)

	require.NoError(t, store.Del(ctx, dashboardCacheKey))

	stats, err = svc.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalProducts)
}

func TestGetDashboardStats_StorageFailure(t *testing.T) {
	db := testutil.NewTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = NewDashboardService(db, Options{}).GetDashboardStats(context.Background())
	assert.ErrorIs(t, err, ErrStorage)
}

func TestDashboardQueries_CoverEveryStat(t *testing.T) {
	seen := map[statKey]bool{}
	for _, q := range dashboardQueries() {
		assert.False(t, seen[q.key], "duplicate %s", q.key)
		seen[q.key] = true
		assert.NotEmpty(t, q.stmt.SQL)
	}
	assert.Len(t, seen, 8)
}
