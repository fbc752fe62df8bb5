// internal/services/analytics_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/freshcart/grocery-backend/internal/analytics"
	"github.com/freshcart/grocery-backend/internal/config"
	"github.com/freshcart/grocery-backend/internal/models"
)

// AnalyticsService feeds the admin dashboard: demand trend series, catalog
// stock/revenue stats and the headline counters. It loads full snapshots from
// the database and hands them to the analytics package, which is pure.
type AnalyticsService struct {
	db    *gorm.DB
	cfg   *config.Config
	cache *AnalyticsCacheService
}

type DashboardStats struct {
	TotalUsers      int64   `json:"total_users"`
	TotalOrders     int64   `json:"total_orders"`
	TotalProducts   int64   `json:"total_products"`
	TotalCategories int64   `json:"total_categories"`
	TodayRevenue    float64 `json:"today_revenue"`
	TodayOrders     int64   `json:"today_orders"`
	TodayCustomers  int64   `json:"today_customers"`
}

func NewAnalyticsService(db *gorm.DB, cfg *config.Config, cache *AnalyticsCacheService) *AnalyticsService {
	return &AnalyticsService{
		db:    db,
		cfg:   cfg,
		cache: cache,
	}
}

// defaultConfig maps the env-driven settings onto an aggregation config.
func (s *AnalyticsService) defaultConfig() analytics.Config {
	return analytics.Config{
		TopN:                s.cfg.Analytics.TopProducts,
		LowStockThreshold:   s.cfg.Analytics.LowStockThreshold,
		AddToCartMultiplier: s.cfg.Analytics.AddToCartMultiplier,
	}
}

// DemandTrends aggregates the full order history into the weekly demand
// series trailing now, plus catalog stats. A zero now means the current
// time. Results are cached per reference day and config.
func (s *AnalyticsService) DemandTrends(ctx context.Context, now time.Time, overrides *analytics.Config) (*analytics.Result, error) {
	cfg := s.defaultConfig()
	if overrides != nil {
		if overrides.TopN > 0 {
			cfg.TopN = overrides.TopN
		}
		if overrides.LowStockThreshold > 0 {
			cfg.LowStockThreshold = overrides.LowStockThreshold
		}
		if overrides.AddToCartMultiplier > 0 {
			cfg.AddToCartMultiplier = overrides.AddToCartMultiplier
		}
	}

	if now.IsZero() {
		now = time.Now()
	}
	day := now.Format("2006-01-02")

	if cached, _ := s.cache.Get(ctx, day, cfg); cached != nil && cached.Result != nil {
		return cached.Result, nil
	}

	products, err := s.loadProducts()
	if err != nil {
		return nil, err
	}

	orders, err := s.loadOrders()
	if err != nil {
		return nil, err
	}

	result := analytics.Aggregate(products, orders, now, cfg)

	if err := s.cache.Set(ctx, day, cfg, &result); err != nil {
		logrus.WithError(err).Warn("failed to cache demand trends")
	}

	return &result, nil
}

// CatalogStats returns just the stock and revenue side of the aggregation.
func (s *AnalyticsService) CatalogStats(ctx context.Context) (*analytics.CatalogStats, error) {
	result, err := s.DemandTrends(ctx, time.Now(), nil)
	if err != nil {
		return nil, err
	}
	return &result.Stats, nil
}

// InvalidateCache drops cached snapshots after catalog or order writes.
func (s *AnalyticsService) InvalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		logrus.WithError(err).Warn("failed to invalidate analytics cache")
	}
}

// GetDashboardStats computes the headline counters shown above the charts.
func (s *AnalyticsService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := s.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	if err := s.db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if err := s.db.Model(&models.Category{}).Count(&stats.TotalCategories).Error; err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	todayStart := time.Now().Truncate(24 * time.Hour)

	var todayRevenue struct {
		Total float64
	}
	if err := s.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0) as total").
		Where("created_at >= ?", todayStart).
		Scan(&todayRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum today's revenue: %w", err)
	}
	stats.TodayRevenue = todayRevenue.Total

	if err := s.db.Model(&models.Order{}).
		Where("created_at >= ?", todayStart).
		Count(&stats.TodayOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's orders: %w", err)
	}

	if err := s.db.Model(&models.Order{}).
		Where("created_at >= ?", todayStart).
		Distinct("user_id").
		Count(&stats.TodayCustomers).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's customers: %w", err)
	}

	return stats, nil
}

func (s *AnalyticsService) loadProducts() ([]analytics.Product, error) {
	var rows []models.Product
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	products := make([]analytics.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, analytics.Product{
			ID:     row.ID.String(),
			Name:   row.Name,
			Images: row.Images,
			Price:  row.Price,
			Stock:  row.Stock,
		})
	}
	return products, nil
}

func (s *AnalyticsService) loadOrders() ([]analytics.Order, error) {
	var rows []models.Order
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	orders := make([]analytics.Order, 0, len(rows))
	for _, row := range rows {
		var items []analytics.LineItem
		if len(row.Items) > 0 {
			if err := json.Unmarshal(row.Items, &items); err != nil {
				// A row too mangled to decode contributes nothing; the
				// dashboard must still render.
				logrus.WithError(err).WithField("order_id", row.ID).Warn("skipping undecodable order items")
				items = nil
			}
		}

		orders = append(orders, analytics.Order{
			ID:          row.ID.String(),
			CreatedAt:   row.CreatedAt,
			TotalAmount: row.TotalAmount,
			Items:       items,
		})
	}
	return orders, nil
}
