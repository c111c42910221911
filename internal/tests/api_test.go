// internal/tests/api_test.go
package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/javajoker/ecom-backend/internal/cache"
	"github.com/javajoker/ecom-backend/internal/config"
	"github.com/javajoker/ecom-backend/internal/i18n"
	"github.com/javajoker/ecom-backend/internal/middleware"
	"github.com/javajoker/ecom-backend/internal/models"
	"github.com/javajoker/ecom-backend/internal/router"
	"github.com/javajoker/ecom-backend/internal/testutil"
	"github.com/javajoker/ecom-backend/internal/utils"
)

const adminSecret = "api-test-secret"

type APITestSuite struct {
	suite.Suite
	db         *gorm.DB
	router     *gin.Engine
	limiter    *middleware.RateLimiter
	adminToken string

	widget *models.Product
	order  *models.Order
}

func (suite *APITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(i18n.Initialize())

	token, err := utils.GenerateJWT(adminSecret, "ops@example.com", middleware.RoleAdmin, time.Hour)
	suite.Require().NoError(err)
	suite.adminToken = token
}

func (suite *APITestSuite) SetupTest() {
	t := suite.T()
	suite.db = testutil.NewTestDB(t)

	cfg := &config.Config{
		Environment: "test",
		Database:    config.DatabaseConfig{Driver: "sqlite", QueryTimeout: 5},
		JWT:         config.JWTConfig{SecretKey: adminSecret},
		RateLimit:   config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
		CORS:        config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
	suite.router, suite.limiter = router.Initialize(suite.db, cache.Noop{}, cfg)

	tools := testutil.CreateCategory(t, suite.db, "Tools", true)
	testutil.CreateActiveProducts(t, suite.db, "Item", 23)
	suite.widget = testutil.CreateProduct(t, suite.db, models.Product{
		BaseModel:  models.BaseModel{CreatedAt: testutil.At(100)},
		Name:       "Widget",
		CategoryID: &tools.ID,
		IsActive:   true,
		IsFeatured: true,
	})
	testutil.CreateProduct(t, suite.db, models.Product{
		BaseModel:  models.BaseModel{CreatedAt: testutil.At(101)},
		Name:       "Gadget Widget",
		IsActive:   true,
	})

	ada := testutil.CreateCustomer(t, suite.db, "Ada", "Lovelace", "ada@example.com", testutil.At(1))
	suite.order = testutil.CreateOrder(t, suite.db, ada.ID, "ORD-1", "42.00",
		models.OrderStatusPending, models.PaymentStatusPaid, testutil.At(5))
	testutil.CreateOrderItem(t, suite.db, suite.order.ID, suite.widget.ID, nil, 2, "21.00")
}

func (suite *APITestSuite) TearDownTest() {
	suite.limiter.Stop()
}

func (suite *APITestSuite) do(path string, header map[string]string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) admin() map[string]string {
	return map[string]string{"Authorization": "Bearer " + suite.adminToken}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *utils.APIError `json:"error"`
}

func (suite *APITestSuite) decode(w *httptest.ResponseRecorder) envelope {
	var resp envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func (suite *APITestSuite) decodePage(w *httptest.ResponseRecorder, items interface{}) utils.Page[json.RawMessage] {
	resp := suite.decode(w)
	suite.Require().True(resp.Success, w.Body.String())

	var page utils.Page[json.RawMessage]
	suite.Require().NoError(json.Unmarshal(resp.Data, &page))
	if items != nil {
		raw, err := json.Marshal(page.Items)
		suite.Require().NoError(err)
		suite.Require().NoError(json.Unmarshal(raw, items))
	}
	return page
}

func (suite *APITestSuite) TestIndexAndHealth() {
	w := suite.do("/", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "GET /api/dashboard/stats")
	assert.NotEmpty(suite.T(), w.Header().Get(middleware.RequestIDHeader))

	w = suite.do("/health", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "healthy")
}

func (suite *APITestSuite) TestListProductsPagination() {
	w := suite.do("/api/products?limit=10", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var items []models.ProductSummary
	page := suite.decodePage(w, &items)
	assert.Len(suite.T(), items, 10)
	assert.Equal(suite.T(), int64(25), page.TotalItems)
	assert.Equal(suite.T(), 3, page.TotalPages)
	assert.True(suite.T(), page.HasNextPage)
	assert.False(suite.T(), page.HasPrevPage)
	assert.Equal(suite.T(), "Gadget Widget", items[0].Name)

	assert.Equal(suite.T(), "25", w.Header().Get("X-Total-Count"))
	assert.Equal(suite.T(), "3", w.Header().Get("X-Total-Pages"))
	assert.Equal(suite.T(), "10", w.Header().Get("X-Per-Page"))

	// Defaults apply when page and limit are omitted.
	page = suite.decodePage(suite.do("/api/products", nil), nil)
	assert.Equal(suite.T(), 1, page.Page)
	assert.Equal(suite.T(), 10, page.Limit)
}

func (suite *APITestSuite) TestListProductsFilters() {
	var items []models.ProductSummary
	page := suite.decodePage(suite.do("/api/products?search=wid", nil), &items)
	assert.Equal(suite.T(), int64(2), page.TotalItems)

	page = suite.decodePage(suite.do("/api/products?featured=true", nil), &items)
	assert.Equal(suite.T(), int64(1), page.TotalItems)
	assert.Equal(suite.T(), "Widget", items[0].Name)

	page = suite.decodePage(suite.do("/api/products?featured=false", nil), nil)
	assert.Equal(suite.T(), int64(24), page.TotalItems)

	page = suite.decodePage(suite.do("/api/products?sort=name&order=asc&limit=1", nil), &items)
	assert.Equal(suite.T(), "Gadget Widget", items[0].Name)
}

func (suite *APITestSuite) TestListProductsRejectsBadQuery() {
	tests := []struct {
		query string
		code  string
	}{
		{"page=0", "VALIDATION_ERROR"},
		{"limit=0", "VALIDATION_ERROR"},
		{"limit=101", "VALIDATION_ERROR"},
		{"featured=yes", "VALIDATION_ERROR"},
		{"sort=stock", "VALIDATION_ERROR"},
		{"order=up", "VALIDATION_ERROR"},
		{"category_id=-1", "VALIDATION_ERROR"},
		{"category_id=abc", "BAD_REQUEST"},
		{"page=two", "BAD_REQUEST"},
	}
	for _, tt := range tests {
		w := suite.do("/api/products?"+tt.query, nil)
		assert.Equal(suite.T(), http.StatusBadRequest, w.Code, tt.query)
		resp := suite.decode(w)
		assert.False(suite.T(), resp.Success)
		if assert.NotNil(suite.T(), resp.Error, tt.query) {
			assert.Equal(suite.T(), tt.code, resp.Error.Code, tt.query)
		}
	}
}

func (suite *APITestSuite) TestFeaturedAndSearch() {
	page := suite.decodePage(suite.do("/api/products/featured", nil), nil)
	assert.Equal(suite.T(), int64(1), page.TotalItems)

	page = suite.decodePage(suite.do("/api/products/search?q=WID", nil), nil)
	assert.Equal(suite.T(), int64(2), page.TotalItems)

	w := suite.do("/api/products/search", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.do("/api/products/search?q=%20%20", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestGetProduct() {
	w := suite.do("/api/products/"+strconv.FormatInt(suite.widget.ID, 10), nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	resp := suite.decode(w)
	var detail models.ProductDetail
	suite.Require().NoError(json.Unmarshal(resp.Data, &detail))
	assert.Equal(suite.T(), "Widget", detail.Name)
	assert.Equal(suite.T(), "Tools", *detail.CategoryName)
	// Empty collections serialize as [] rather than null.
	assert.Contains(suite.T(), string(resp.Data), `"variants":[]`)
	assert.Contains(suite.T(), string(resp.Data), `"images":[]`)

	w = suite.do("/api/products/999", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "NOT_FOUND", suite.decode(w).Error.Code)

	for _, id := range []string{"abc", "0", "-5", "1.5"} {
		w = suite.do("/api/products/"+id, nil)
		assert.Equal(suite.T(), http.StatusBadRequest, w.Code, id)
	}
}

func (suite *APITestSuite) TestLocalizedErrors() {
	w := suite.do("/api/products/999", map[string]string{"Accept-Language": "zh-TW,zh;q=0.9"})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "找不到商品", suite.decode(w).Error.Message)

	w = suite.do("/no/such/route", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "Route not found", suite.decode(w).Error.Message)
}

func (suite *APITestSuite) TestCategoriesAndBrands() {
	var categories []models.CategoryView
	page := suite.decodePage(suite.do("/api/categories", nil), &categories)
	assert.Equal(suite.T(), int64(1), page.TotalItems)
	assert.Equal(suite.T(), int64(1), categories[0].ProductCount)

	w := suite.do("/api/categories/"+strconv.FormatInt(categories[0].ID, 10), nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.do("/api/categories/999", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	page = suite.decodePage(suite.do("/api/categories/"+strconv.FormatInt(categories[0].ID, 10)+"/products", nil), nil)
	assert.Equal(suite.T(), int64(1), page.TotalItems)

	page = suite.decodePage(suite.do("/api/categories/999/products", nil), nil)
	assert.Equal(suite.T(), int64(0), page.TotalItems)
	assert.Equal(suite.T(), 0, page.TotalPages)

	page = suite.decodePage(suite.do("/api/brands", nil), nil)
	assert.Equal(suite.T(), int64(0), page.TotalItems)

	w = suite.do("/api/brands/x/products", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestAdminRoutesRequireToken() {
	for _, path := range []string{"/api/orders", "/api/orders/1", "/api/customers", "/api/dashboard/stats"} {
		w := suite.do(path, nil)
		assert.Equal(suite.T(), http.StatusUnauthorized, w.Code, path)
	}
}

func (suite *APITestSuite) TestOrders() {
	var orders []models.OrderSummary
	page := suite.decodePage(suite.do("/api/orders", suite.admin()), &orders)
	assert.Equal(suite.T(), int64(1), page.TotalItems)
	assert.Equal(suite.T(), "Ada Lovelace", orders[0].CustomerName)

	page = suite.decodePage(suite.do("/api/orders?status=shipped", suite.admin()), nil)
	assert.Equal(suite.T(), int64(0), page.TotalItems)

	w := suite.do("/api/orders?status=lost", suite.admin())
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.do("/api/orders/"+strconv.FormatInt(suite.order.ID, 10), suite.admin())
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var detail models.OrderDetail
	suite.Require().NoError(json.Unmarshal(suite.decode(w).Data, &detail))
	suite.Require().Len(detail.Items, 1)
	assert.Equal(suite.T(), "Widget", *detail.Items[0].ProductName)

	w = suite.do("/api/orders/999", suite.admin())
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestCustomersAndDashboard() {
	var customers []models.CustomerSummary
	page := suite.decodePage(suite.do("/api/customers?search=ada", suite.admin()), &customers)
	assert.Equal(suite.T(), int64(1), page.TotalItems)
	assert.Equal(suite.T(), int64(1), customers[0].TotalOrders)

	w := suite.do("/api/dashboard/stats", suite.admin())
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var stats models.DashboardStats
	suite.Require().NoError(json.Unmarshal(suite.decode(w).Data, &stats))
	assert.Equal(suite.T(), int64(25), stats.TotalProducts)
	assert.Equal(suite.T(), int64(1), stats.FeaturedProducts)
	assert.Equal(suite.T(), int64(1), stats.PendingOrders)
	assert.True(suite.T(), stats.TotalRevenue.Equal(testutil.Price("42.00")))
}

func (suite *APITestSuite) TestStorageFailureIsInternalError() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())

	w := suite.do("/api/products", nil)
	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	resp := suite.decode(w)
	assert.Equal(suite.T(), "INTERNAL_ERROR", resp.Error.Code)
	// The cause stays in the logs.
	assert.NotContains(suite.T(), strings.ToLower(resp.Error.Message), "closed")

	w = suite.do("/health", nil)
	assert.Equal(suite.T(), http.StatusServiceUnavailable, w.Code)
}

func (suite *APITestSuite) TestMetricsEndpoint() {
	suite.do("/api/products", nil)

	w := suite.do("/metrics", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "ecom_http_requests_total")
	assert.Contains(suite.T(), w.Body.String(), "ecom_db_query_duration_seconds")
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
