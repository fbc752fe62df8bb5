// internal/analytics/aggregator.go
package analytics

import (
	"math"
	"sort"
	"strconv"
	"time"
)

// RankProducts sums quantities per resolved product id across all orders and
// returns the entries sorted by demand, highest first. Ties keep the order in
// which the products were first encountered, so the ranking is deterministic
// for a fixed input. Unresolvable line items are skipped.
func RankProducts(orders []Order) []ProductDemand {
	totals := make(map[string]int)
	var firstSeen []string

	for _, order := range orders {
		for _, item := range order.Items {
			productID, ok := ResolveProductID(item)
			if !ok {
				continue
			}
			if _, seen := totals[productID]; !seen {
				firstSeen = append(firstSeen, productID)
			}
			totals[productID] += ResolveQuantity(item)
		}
	}

	ranked := make([]ProductDemand, 0, len(firstSeen))
	for _, id := range firstSeen {
		ranked = append(ranked, ProductDemand{ProductID: id, Quantity: totals[id]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	return ranked
}

// BuildWeeks returns the trailing weekly windows ending at now: WeekCount
// non-overlapping 7-day inclusive spans labeled "Week 1".."Week 6", oldest
// first. Window i spans [now - (WeekCount-1-i)*7d, start + 6d]; bounds keep
// now's time-of-day and membership uses raw timestamps.
func BuildWeeks(now time.Time) [WeekCount]WeekWindow {
	var weeks [WeekCount]WeekWindow
	for i := 0; i < WeekCount; i++ {
		start := now.AddDate(0, 0, -(WeekCount-1-i)*7)
		weeks[i] = WeekWindow{
			Label: "Week " + strconv.Itoa(i+1),
			Start: start,
			End:   start.AddDate(0, 0, 6),
		}
	}
	return weeks
}

// Aggregate is the full analysis pass: rank products by historical demand,
// keep the top cfg.TopN that exist in the catalog, and build their weekly
// demand series plus catalog-wide stats. It is a pure function over its
// inputs — no I/O, no retained state, safe to call concurrently on separate
// snapshots — and it never fails: empty or malformed inputs produce empty
// series and zero-valued stats.
func Aggregate(products []Product, orders []Order, now time.Time, cfg Config) Result {
	cfg = cfg.withDefaults()

	catalog := make(map[string]Product, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}

	ranked := RankProducts(orders)
	if len(ranked) > cfg.TopN {
		ranked = ranked[:cfg.TopN]
	}

	weeks := BuildWeeks(now)
	series := make([]ProductDemandSeries, 0, len(ranked))

	for _, entry := range ranked {
		product, exists := catalog[entry.ProductID]
		if !exists {
			// Dangling reference: the order history mentions a product that
			// has since left the catalog. Expected but rare; drop it.
			continue
		}

		points := make([]WeekPoint, 0, WeekCount)
		for _, week := range weeks {
			purchases := 0
			for _, order := range orders {
				if !week.Contains(order.CreatedAt) {
					continue
				}
				for _, item := range order.Items {
					productID, ok := ResolveProductID(item)
					if !ok || productID != entry.ProductID {
						continue
					}
					purchases += ResolveQuantity(item)
				}
			}

			estimate := int(math.Ceil(float64(purchases) * cfg.AddToCartMultiplier))
			points = append(points, WeekPoint{
				Label:             week.Label,
				WindowStart:       week.Start,
				WindowEnd:         week.End,
				Purchases:         purchases,
				AddToCartEstimate: estimate,
				Total:             purchases + estimate,
			})
		}

		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}

		series = append(series, ProductDemandSeries{
			ProductID:    entry.ProductID,
			Name:         product.Name,
			Image:        image,
			TotalDemand:  entry.Quantity,
			WeeklyPoints: points,
		})
	}

	return Result{
		Series: series,
		Stats:  ComputeCatalogStats(products, orders, cfg.LowStockThreshold),
	}
}

// ComputeCatalogStats derives the dashboard aggregates from the two input
// collections. Total over its inputs: NaN or infinite numeric fields coerce
// to zero before summation instead of propagating.
func ComputeCatalogStats(products []Product, orders []Order, lowStockThreshold int) CatalogStats {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}

	stats := CatalogStats{
		LowStockThreshold:  lowStockThreshold,
		LowStockProducts:   []StockItem{},
		OutOfStockProducts: []StockItem{},
	}

	for _, order := range orders {
		stats.TotalRevenue += safeAmount(order.TotalAmount)
	}

	for _, product := range products {
		stock := product.Stock
		if stock < 0 {
			stock = 0
		}
		stats.InventoryValue += float64(stock) * safeAmount(product.Price)

		item := StockItem{ProductID: product.ID, Name: product.Name, Stock: stock}
		if stock < lowStockThreshold {
			stats.LowStockProducts = append(stats.LowStockProducts, item)
		}
		if stock <= 0 {
			stats.OutOfStockProducts = append(stats.OutOfStockProducts, item)
		}
	}

	return stats
}

func safeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
