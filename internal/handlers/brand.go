// internal/handlers/brand.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/ecom-backend/internal/query"
	"github.com/javajoker/ecom-backend/internal/services"
	"github.com/javajoker/ecom-backend/internal/utils"
)

type BrandHandler struct {
	brandService   *services.BrandService
	productService *services.ProductService
}

func NewBrandHandler(brandService *services.BrandService, productService *services.ProductService) *BrandHandler {
	return &BrandHandler{
		brandService:   brandService,
		productService: productService,
	}
}

// GET /api/brands
func (h *BrandHandler) GetBrands(c *gin.Context) {
	var req BrandListQuery
	if !bindQuery(c, &req) {
		return
	}

	page, err := h.brandService.ListBrands(c.Request.Context(), query.BrandFilter{Search: req.Search}, req.Page, req.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.PaginatedResponse(c, page)
}

// GET /api/brands/:id/products
func (h *BrandHandler) GetBrandProducts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req PageQuery
	if !bindQuery(c, &req) {
		return
	}

	page, err := h.productService.ListProductsByBrand(c.Request.Context(), id, req.Page, req.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.PaginatedResponse(c, page)
}
