// internal/router/router.go
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/ecom-backend/internal/cache"
	"github.com/javajoker/ecom-backend/internal/config"
	"github.com/javajoker/ecom-backend/internal/handlers"
	"github.com/javajoker/ecom-backend/internal/metrics"
	"github.com/javajoker/ecom-backend/internal/middleware"
	"github.com/javajoker/ecom-backend/internal/services"
)

// Initialize wires services, handlers and middleware. The returned limiter
// must be stopped on shutdown.
func Initialize(db *gorm.DB, store cache.Store, cfg *config.Config) (*gin.Engine, *middleware.RateLimiter) {
	opts := services.Options{
		QueryTimeout: cfg.Database.QueryTimeoutDuration(),
		Cache:        store,
		CacheTTL:     cfg.Cache.TTLDuration(),
	}

	// Initialize services
	productService := services.NewProductService(db, opts)
	categoryService := services.NewCategoryService(db, opts)
	brandService := services.NewBrandService(db, opts)
	orderService := services.NewOrderService(db, opts)
	customerService := services.NewCustomerService(db, opts)
	dashboardService := services.NewDashboardService(db, opts)

	// Initialize handlers
	systemHandler := handlers.NewSystemHandler(db)
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, productService)
	brandHandler := handlers.NewBrandHandler(brandService, productService)
	orderHandler := handlers.NewOrderHandler(orderService, customerService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	limiter := middleware.NewRateLimiter(cfg.RateLimit)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logrus.StandardLogger()))
	r.Use(metrics.Middleware())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))

	r.GET("/", systemHandler.Index)
	r.GET("/health", systemHandler.Health)
	r.GET("/metrics", metrics.Handler())
	r.NoRoute(systemHandler.NoRoute)

	api := r.Group("/api")
	api.Use(limiter.Middleware())
	{
		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/featured", productHandler.GetFeaturedProducts)
			products.GET("/search", productHandler.SearchProducts)
			products.GET("/:id", productHandler.GetProduct)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.GET("/:id/products", categoryHandler.GetCategoryProducts)
		}

		brands := api.Group("/brands")
		{
			brands.GET("", brandHandler.GetBrands)
			brands.GET("/:id/products", brandHandler.GetBrandProducts)
		}

		// Back-office routes
		admin := api.Group("")
		admin.Use(middleware.AdminRequired(cfg.JWT.SecretKey))
		{
			admin.GET("/orders", orderHandler.GetOrders)
			admin.GET("/orders/:id", orderHandler.GetOrder)
			admin.GET("/customers", orderHandler.GetCustomers)
			admin.GET("/dashboard/stats", dashboardHandler.GetDashboardStats)
		}
	}

	return r, limiter
}
