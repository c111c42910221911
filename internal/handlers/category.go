// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/ecom-backend/internal/services"
	"github.com/javajoker/ecom-backend/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	productService  *services.ProductService
}

func NewCategoryHandler(categoryService *services.CategoryService, productService *services.ProductService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		productService:  productService,
	}
}

// GET /api/categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	var req CategoryListQuery
	if !bindQuery(c, &req) {
		return
	}

	page, err := h.categoryService.ListCategories(c.Request.Context(), req.Filter(), req.Page, req.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.PaginatedResponse(c, page)
}

// GET /api/categories/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	category, found, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		utils.NotFoundResponse(c, "category")
		return
	}

	utils.SuccessResponse(c, category)
}

// GET /api/categories/:id/products
// An unknown category yields an empty page.
func (h *CategoryHandler) GetCategoryProducts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req PageQuery
	if !bindQuery(c, &req) {
		return
	}

	page, err := h.productService.ListProductsByCategory(c.Request.Context(), id, req.Page, req.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.PaginatedResponse(c, page)
}
