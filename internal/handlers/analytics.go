// internal/handlers/analytics.go
package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/freshcart/grocery-backend/internal/analytics"
	"github.com/freshcart/grocery-backend/internal/services"
	"github.com/freshcart/grocery-backend/internal/utils"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GET /api/analytics/demand-trends
//
// Query params top_n, low_stock_threshold and multiplier override the
// configured defaults for a single request; now (RFC 3339) shifts the
// reference time the weekly windows trail from.
func (h *AnalyticsHandler) GetDemandTrends(c *gin.Context) {
	var overrides *analytics.Config

	now := time.Now()
	if nowStr := c.Query("now"); nowStr != "" {
		parsed, err := time.Parse(time.RFC3339, nowStr)
		if err != nil {
			utils.BadRequestResponse(c, "now must be an RFC 3339 timestamp", nil)
			return
		}
		now = parsed
	}

	if topStr := c.Query("top_n"); topStr != "" {
		topN, err := strconv.Atoi(topStr)
		if err != nil || topN < 1 {
			utils.BadRequestResponse(c, "top_n must be a positive integer", nil)
			return
		}
		if overrides == nil {
			overrides = &analytics.Config{}
		}
		overrides.TopN = topN
	}
	if thresholdStr := c.Query("low_stock_threshold"); thresholdStr != "" {
		threshold, err := strconv.Atoi(thresholdStr)
		if err != nil || threshold < 1 {
			utils.BadRequestResponse(c, "low_stock_threshold must be a positive integer", nil)
			return
		}
		if overrides == nil {
			overrides = &analytics.Config{}
		}
		overrides.LowStockThreshold = threshold
	}
	if multStr := c.Query("multiplier"); multStr != "" {
		mult, err := strconv.ParseFloat(multStr, 64)
		if err != nil || mult <= 0 {
			utils.BadRequestResponse(c, "multiplier must be a positive number", nil)
			return
		}
		if overrides == nil {
			overrides = &analytics.Config{}
		}
		overrides.AddToCartMultiplier = mult
	}

	result, err := h.analyticsService.DemandTrends(c.Request.Context(), now, overrides)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, result)
}

// GET /api/analytics/catalog-stats
func (h *AnalyticsHandler) GetCatalogStats(c *gin.Context) {
	stats, err := h.analyticsService.CatalogStats(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, stats)
}

// GET /api/analytics/dashboard
func (h *AnalyticsHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.analyticsService.GetDashboardStats()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, stats)
}
