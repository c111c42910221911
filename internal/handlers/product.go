// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/ecom-backend/internal/services"
	"github.com/javajoker/ecom-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	var req ProductListQuery
	if !bindQuery(c, &req) {
		return
	}

	page, err := h.productService.ListProducts(c.Request.Context(), req.Filter(), req.ProductSort(), req.Page, req.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.PaginatedResponse(c, page)
}

// GET /api/products/featured
func (h *ProductHandler) GetFeaturedProducts(c *gin.Context) {
	var req PageQuery
	if !bindQuery(c, &req) {
		return
	}

	page, err := h.productService.ListFeaturedProducts(c.Request.Context(), req.Page, req.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.PaginatedResponse(c, page)
}

// GET /api/products/search?q=
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	var req ProductSearchQuery
	if !bindQuery(c, &req) {
		return
	}

	page, err := h.productService.SearchProducts(c.Request.Context(), req.Q, req.Page, req.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.PaginatedResponse(c, page)
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, found, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		utils.NotFoundResponse(c, "product")
		return
	}

	utils.SuccessResponse(c, product)
}
