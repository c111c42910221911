// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/ecom-backend/internal/query"
	"github.com/javajoker/ecom-backend/internal/services"
	"github.com/javajoker/ecom-backend/internal/utils"
)

type OrderHandler struct {
	orderService    *services.OrderService
	customerService *services.CustomerService
}

func NewOrderHandler(orderService *services.OrderService, customerService *services.CustomerService) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		customerService: customerService,
	}
}

// GET /api/orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	var req OrderListQuery
	if !bindQuery(c, &req) {
		return
	}

	page, err := h.orderService.ListOrders(c.Request.Context(), req.Filter(), req.Page, req.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.PaginatedResponse(c, page)
}

// GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, found, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		utils.NotFoundResponse(c, "order")
		return
	}

	utils.SuccessResponse(c, order)
}

// GET /api/customers
func (h *OrderHandler) GetCustomers(c *gin.Context) {
	var req CustomerListQuery
	if !bindQuery(c, &req) {
		return
	}

	page, err := h.customerService.ListCustomers(c.Request.Context(), query.CustomerFilter{Search: req.Search}, req.Page, req.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.PaginatedResponse(c, page)
}
