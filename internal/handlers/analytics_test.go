// internal/handlers/analytics_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func demandTrendsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	// Query validation runs before the service is touched, so a nil
	// service is fine for the rejection paths.
	h := NewAnalyticsHandler(nil)
	r := gin.New()
	r.GET("/api/analytics/demand-trends", h.GetDemandTrends)
	return r
}

func TestDemandTrendsRejectsBadParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"non-numeric top_n", "top_n=six"},
		{"zero top_n", "top_n=0"},
		{"negative top_n", "top_n=-3"},
		{"zero threshold", "low_stock_threshold=0"},
		{"non-numeric threshold", "low_stock_threshold=low"},
		{"zero multiplier", "multiplier=0"},
		{"negative multiplier", "multiplier=-1.35"},
		{"non-numeric multiplier", "multiplier=lots"},
		{"non-timestamp now", "now=yesterday"},
		{"date-only now", "now=2025-03-15"},
	}

	r := demandTrendsRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/analytics/demand-trends?"+tt.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
