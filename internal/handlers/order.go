// internal/handlers/order.go
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshcart/grocery-backend/internal/models"
	"github.com/freshcart/grocery-backend/internal/services"
	"github.com/freshcart/grocery-backend/internal/utils"
)

type OrderHandler struct {
	orderService     *services.OrderService
	analyticsService *services.AnalyticsService
}

func NewOrderHandler(orderService *services.OrderService, analyticsService *services.AnalyticsService) *OrderHandler {
	return &OrderHandler{
		orderService:     orderService,
		analyticsService: analyticsService,
	}
}

// GET /api/order/all
func (h *OrderHandler) ListOrders(c *gin.Context) {
	params := &services.OrderSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if userStr := c.Query("user_id"); userStr != "" {
		if id, err := uuid.Parse(userStr); err == nil {
			params.UserID = &id
		}
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := models.DeliveryStatus(statusStr)
		params.DeliveryStatus = &status
	}
	if afterStr := c.Query("created_after"); afterStr != "" {
		if after, err := time.Parse(time.RFC3339, afterStr); err == nil {
			params.CreatedAfter = &after
		}
	}
	if beforeStr := c.Query("created_before"); beforeStr != "" {
		if before, err := time.Parse(time.RFC3339, beforeStr); err == nil {
			params.CreatedBefore = &before
		}
	}

	orders, total, err := h.orderService.SearchOrders(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(orders, total, params.PaginationParams))
}

// GET /api/order/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		utils.NotFoundResponse(c, "Order")
		return
	}

	utils.SuccessResponse(c, order)
}

// GET /api/order/mine
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	userIDStr, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.UnauthorizedResponse(c, "Invalid token")
		return
	}

	params := utils.GetPaginationParams(c)
	orders, total, err := h.orderService.ListUserOrders(userID, params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(orders, total, params))
}

// POST /api/order
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userIDStr, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.UnauthorizedResponse(c, "Invalid token")
		return
	}

	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	order, err := h.orderService.CreateOrder(userID, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	// New purchases shift the demand windows
	h.analyticsService.InvalidateCache(c.Request.Context())

	utils.CreatedResponse(c, order)
}

// PUT /api/order/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	var req services.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	order, err := h.orderService.UpdateDeliveryStatus(id, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, order)
}
