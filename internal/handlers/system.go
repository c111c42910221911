// internal/handlers/system.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/ecom-backend/internal/database"
	"github.com/javajoker/ecom-backend/internal/i18n"
	"github.com/javajoker/ecom-backend/internal/utils"
)

const Version = "1.0.0"

var endpoints = map[string]string{
	"GET /api/products":                "List products (pagination, search, category_id, brand_id, featured, sort)",
	"GET /api/products/featured":       "List featured products",
	"GET /api/products/search":         "Search products by q",
	"GET /api/products/:id":            "Get a product with variants, images and attributes",
	"GET /api/categories":              "List categories",
	"GET /api/categories/:id":          "Get a category",
	"GET /api/categories/:id/products": "List products in a category",
	"GET /api/brands":                  "List brands",
	"GET /api/brands/:id/products":     "List products of a brand",
	"GET /api/orders":                  "List orders",
	"GET /api/orders/:id":              "Get an order with its items",
	"GET /api/customers":               "List customers",
	"GET /api/dashboard/stats":         "Get dashboard statistics",
}

type SystemHandler struct {
	db *gorm.DB
}

func NewSystemHandler(db *gorm.DB) *SystemHandler {
	return &SystemHandler{db: db}
}

// GET /
func (h *SystemHandler) Index(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"message":   i18n.T(utils.GetLangFromContext(c), i18n.KeyWelcome),
		"version":   Version,
		"database":  h.db.Dialector.Name(),
		"endpoints": endpoints,
	})
}

// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx, h.db); err != nil {
		logrus.WithError(err).Warn("Health check failed")
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "UNAVAILABLE", i18n.T(lang, i18n.KeyHealthDBUnavailable), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"status":  "healthy",
		"message": i18n.T(lang, i18n.KeyHealthOK),
		"version": Version,
	})
}

// NoRoute answers unknown paths.
func (h *SystemHandler) NoRoute(c *gin.Context) {
	utils.NotFoundResponse(c, "route")
}
