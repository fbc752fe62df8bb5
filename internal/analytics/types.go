// internal/analytics/types.go
package analytics

import (
	"encoding/json"
	"time"
)

// Product is a read-only catalog snapshot consumed by the aggregator.
// The service layer builds these from persisted rows; the aggregator never
// looks anything up on its own.
type Product struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Images []string `json:"images"`
	Price  float64  `json:"price"`
	Stock  int      `json:"stock"`
}

// Order is an order-history snapshot. Items carry the raw line-item shapes
// exactly as the checkout wrote them over the years.
type Order struct {
	ID          string     `json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	TotalAmount float64    `json:"total_amount"`
	Items       []LineItem `json:"items"`
}

// LineItem preserves every historical representation of a product reference:
// a populated product object, a bare id string, or the productId/product_id
// legacy fields (each either a string or a nested object). Fields stay raw
// until ResolveProductID decodes them.
type LineItem struct {
	Product   json.RawMessage `json:"product,omitempty"`
	ProductID json.RawMessage `json:"productId,omitempty"`
	LegacyID  json.RawMessage `json:"product_id,omitempty"`
	Quantity  json.RawMessage `json:"quantity,omitempty"`
	Qty       json.RawMessage `json:"qty,omitempty"`
}

// Config controls the aggregation run. Zero values fall back to the defaults
// below, so Config{} is always usable.
type Config struct {
	TopN                int     `json:"top_n"`
	LowStockThreshold   int     `json:"low_stock_threshold"`
	AddToCartMultiplier float64 `json:"add_to_cart_multiplier"`
}

const (
	DefaultTopN              = 6
	DefaultLowStockThreshold = 10

	// DefaultAddToCartMultiplier is a heuristic placeholder, not a measured
	// quantity: no cart-add telemetry exists, so the estimate is derived from
	// purchases. Real instrumentation would be needed for this to mean
	// anything.
	DefaultAddToCartMultiplier = 1.35

	// WeekCount is the number of trailing weekly windows in every series.
	WeekCount = 6
)

func (c Config) withDefaults() Config {
	if c.TopN <= 0 {
		c.TopN = DefaultTopN
	}
	if c.LowStockThreshold <= 0 {
		c.LowStockThreshold = DefaultLowStockThreshold
	}
	if c.AddToCartMultiplier <= 0 {
		c.AddToCartMultiplier = DefaultAddToCartMultiplier
	}
	return c
}

// WeekWindow is a 7-day inclusive span. Start and End retain the caller's
// time-of-day; membership checks compare raw order timestamps against the
// inclusive bounds.
type WeekWindow struct {
	Label string    `json:"label"`
	Start time.Time `json:"window_start"`
	End   time.Time `json:"window_end"`
}

// Contains reports whether t falls inside the window.
func (w WeekWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// WeekPoint is one bucket of a product's demand series.
type WeekPoint struct {
	Label             string    `json:"label"`
	WindowStart       time.Time `json:"window_start"`
	WindowEnd         time.Time `json:"window_end"`
	Purchases         int       `json:"purchases"`
	AddToCartEstimate int       `json:"add_to_cart_estimate"`
	Total             int       `json:"total"`
}

// ProductDemandSeries is the per-product output: total historical demand plus
// exactly WeekCount trailing weekly points, oldest first. TotalDemand covers
// all supplied history and may exceed the sum of the weekly purchases.
type ProductDemandSeries struct {
	ProductID    string      `json:"product_id"`
	Name         string      `json:"name"`
	Image        string      `json:"image"`
	TotalDemand  int         `json:"total_demand"`
	WeeklyPoints []WeekPoint `json:"weekly_points"`
}

// StockItem is the slim product view used in catalog stats listings.
type StockItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
}

// CatalogStats are simple catalog-wide aggregates for the dashboard cards.
type CatalogStats struct {
	TotalRevenue       float64     `json:"total_revenue"`
	LowStockThreshold  int         `json:"low_stock_threshold"`
	LowStockProducts   []StockItem `json:"low_stock_products"`
	OutOfStockProducts []StockItem `json:"out_of_stock_products"`
	InventoryValue     float64     `json:"inventory_value"`
}

// ProductDemand is one ranking entry: a resolved product id and its summed
// quantity across all supplied orders.
type ProductDemand struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Result bundles the two outputs of an aggregation run.
type Result struct {
	Series []ProductDemandSeries `json:"series"`
	Stats  CatalogStats          `json:"stats"`
}
