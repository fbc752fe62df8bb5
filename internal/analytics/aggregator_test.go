// internal/analytics/aggregator_test.go
package analytics

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func itemJSON(t *testing.T, raw string) []LineItem {
	t.Helper()
	var items []LineItem
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	return items
}

func sampleCatalog() []Product {
	return []Product{
		{ID: "p1", Name: "Rice", Images: []string{"https://cdn.example.com/rice.jpg"}, Price: 100, Stock: 5},
		{ID: "p2", Name: "Oil", Price: 200, Stock: 20},
	}
}

func TestAggregateExample(t *testing.T) {
	products := sampleCatalog()
	orders := []Order{
		{
			ID:          "o1",
			CreatedAt:   testNow.Add(2 * time.Hour),
			TotalAmount: 300,
			Items: append(
				itemJSON(t, `[{"product": "p1", "quantity": 2}]`),
				itemJSON(t, `[{"product": "p2", "quantity": 1}]`)...,
			),
		},
	}

	result := Aggregate(products, orders, testNow, Config{})

	require.Len(t, result.Series, 2)
	assert.Equal(t, "p1", result.Series[0].ProductID)
	assert.Equal(t, 2, result.Series[0].TotalDemand)
	assert.Equal(t, "Rice", result.Series[0].Name)
	assert.Equal(t, "https://cdn.example.com/rice.jpg", result.Series[0].Image)
	assert.Equal(t, "p2", result.Series[1].ProductID)
	assert.Equal(t, 1, result.Series[1].TotalDemand)

	// The order sits in the current (last) window.
	current := result.Series[0].WeeklyPoints[WeekCount-1]
	assert.Equal(t, 2, current.Purchases)
	assert.Equal(t, 3, current.AddToCartEstimate) // ceil(2 * 1.35)
	assert.Equal(t, 5, current.Total)

	assert.Equal(t, 300.0, result.Stats.TotalRevenue)
	require.Len(t, result.Stats.LowStockProducts, 1)
	assert.Equal(t, "p1", result.Stats.LowStockProducts[0].ProductID)
	assert.Empty(t, result.Stats.OutOfStockProducts)
	assert.Equal(t, 5*100.0+20*200.0, result.Stats.InventoryValue)
}

func TestAggregateDeterministic(t *testing.T) {
	products := sampleCatalog()
	orders := []Order{
		{ID: "o1", CreatedAt: testNow, TotalAmount: 50, Items: itemJSON(t, `[{"product": "p1", "quantity": 2}, {"product": "p2"}]`)},
		{ID: "o2", CreatedAt: testNow.AddDate(0, 0, -10), TotalAmount: 70, Items: itemJSON(t, `[{"productId": "p2", "qty": 4}]`)},
	}

	first := Aggregate(products, orders, testNow, Config{})
	second := Aggregate(products, orders, testNow, Config{})

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestAggregateWindowCoverage(t *testing.T) {
	// A single resolvable order keeps the product rankable even though most
	// windows are empty; every series still carries all six points.
	orders := []Order{
		{ID: "o1", CreatedAt: testNow.AddDate(0, 0, -14), Items: itemJSON(t, `[{"product": "p1", "quantity": 1}]`)},
	}

	result := Aggregate(sampleCatalog(), orders, testNow, Config{})
	require.Len(t, result.Series, 1)
	require.Len(t, result.Series[0].WeeklyPoints, WeekCount)

	zeroWindows := 0
	for _, point := range result.Series[0].WeeklyPoints {
		assert.Equal(t, point.Purchases+point.AddToCartEstimate, point.Total)
		if point.Purchases == 0 {
			assert.Zero(t, point.AddToCartEstimate)
			zeroWindows++
		}
	}
	assert.Equal(t, WeekCount-1, zeroWindows)
}

func TestAggregateEmptyInputs(t *testing.T) {
	result := Aggregate(nil, nil, testNow, Config{})

	assert.Empty(t, result.Series)
	assert.Zero(t, result.Stats.TotalRevenue)
	assert.Zero(t, result.Stats.InventoryValue)
	assert.Empty(t, result.Stats.LowStockProducts)
	assert.Empty(t, result.Stats.OutOfStockProducts)
}

func TestAggregateRankingBound(t *testing.T) {
	products := []Product{
		{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"},
		{ID: "d", Name: "D"}, {ID: "e", Name: "E"}, {ID: "f", Name: "F"},
		{ID: "g", Name: "G"}, {ID: "h", Name: "H"},
	}
	items := itemJSON(t, `[
		{"product": "a", "quantity": 8}, {"product": "b", "quantity": 7},
		{"product": "c", "quantity": 6}, {"product": "d", "quantity": 5},
		{"product": "e", "quantity": 4}, {"product": "f", "quantity": 3},
		{"product": "g", "quantity": 2}, {"product": "h", "quantity": 1}
	]`)
	orders := []Order{{ID: "o1", CreatedAt: testNow, Items: items}}

	result := Aggregate(products, orders, testNow, Config{})
	assert.Len(t, result.Series, DefaultTopN)
	assert.Equal(t, "a", result.Series[0].ProductID)
	assert.Equal(t, "f", result.Series[DefaultTopN-1].ProductID)

	capped := Aggregate(products, orders, testNow, Config{TopN: 2})
	assert.Len(t, capped.Series, 2)
}

func TestAggregateFewerProductsThanTopN(t *testing.T) {
	orders := []Order{
		{ID: "o1", CreatedAt: testNow, Items: itemJSON(t, `[{"product": "p1", "quantity": 3}]`)},
	}

	result := Aggregate(sampleCatalog(), orders, testNow, Config{})
	assert.Len(t, result.Series, 1) // never padded with placeholders
}

func TestAggregateTotalDemandCoversAllHistory(t *testing.T) {
	// An order older than the six-week horizon counts toward TotalDemand but
	// lands in no window, so TotalDemand may exceed the windowed sum.
	orders := []Order{
		{ID: "old", CreatedAt: testNow.AddDate(0, 0, -90), Items: itemJSON(t, `[{"product": "p1", "quantity": 5}]`)},
		{ID: "new", CreatedAt: testNow, Items: itemJSON(t, `[{"product": "p1", "quantity": 2}]`)},
	}

	result := Aggregate(sampleCatalog(), orders, testNow, Config{})
	require.Len(t, result.Series, 1)

	windowed := 0
	for _, point := range result.Series[0].WeeklyPoints {
		windowed += point.Purchases
	}
	assert.Equal(t, 7, result.Series[0].TotalDemand)
	assert.Equal(t, 2, windowed)
	assert.GreaterOrEqual(t, result.Series[0].TotalDemand, windowed)
}

func TestAggregateDanglingProductDropped(t *testing.T) {
	orders := []Order{
		{ID: "o1", CreatedAt: testNow, Items: itemJSON(t, `[{"product": "ghost", "quantity": 99}, {"product": "p1", "quantity": 1}]`)},
	}

	result := Aggregate(sampleCatalog(), orders, testNow, Config{})
	require.Len(t, result.Series, 1)
	assert.Equal(t, "p1", result.Series[0].ProductID)
}

func TestAggregateUnresolvableItemsSkipped(t *testing.T) {
	orders := []Order{
		{ID: "o1", CreatedAt: testNow, Items: itemJSON(t, `[{"weirdField": "p9"}, {"product": "p1", "quantity": 2}]`)},
	}

	result := Aggregate(sampleCatalog(), orders, testNow, Config{})
	require.Len(t, result.Series, 1)
	assert.Equal(t, 2, result.Series[0].TotalDemand)
}

func TestRankProductsIgnoresNullReferences(t *testing.T) {
	orders := []Order{
		{ID: "o1", CreatedAt: testNow, Items: itemJSON(t, `[{"product": null, "quantity": 7}, {"product_id": null}, {"product": "p1", "quantity": 1}]`)},
	}

	ranked := RankProducts(orders)
	require.Len(t, ranked, 1)
	assert.Equal(t, "p1", ranked[0].ProductID)
}

func TestRankProductsTieBreakStable(t *testing.T) {
	orders := []Order{
		{ID: "o1", CreatedAt: testNow, Items: itemJSON(t, `[{"product": "first", "quantity": 3}, {"product": "second", "quantity": 3}]`)},
	}

	ranked := RankProducts(orders)
	require.Len(t, ranked, 2)
	assert.Equal(t, "first", ranked[0].ProductID)
	assert.Equal(t, "second", ranked[1].ProductID)
}

func TestBuildWeeks(t *testing.T) {
	weeks := BuildWeeks(testNow)

	assert.Equal(t, "Week 1", weeks[0].Label)
	assert.Equal(t, "Week 6", weeks[WeekCount-1].Label)
	assert.Equal(t, testNow.AddDate(0, 0, -35), weeks[0].Start)
	assert.Equal(t, testNow, weeks[WeekCount-1].Start)

	for i, week := range weeks {
		assert.Equal(t, week.Start.AddDate(0, 0, 6), week.End)
		if i > 0 {
			assert.Equal(t, weeks[i-1].Start.AddDate(0, 0, 7), week.Start)
		}
		assert.True(t, week.Contains(week.Start))
		assert.True(t, week.Contains(week.End))
		assert.False(t, week.Contains(week.Start.Add(-time.Second)))
		assert.False(t, week.Contains(week.End.Add(time.Second)))
	}
}

func TestComputeCatalogStatsMalformedNumbers(t *testing.T) {
	products := []Product{
		{ID: "p1", Name: "Rice", Price: math.NaN(), Stock: 3},
		{ID: "p2", Name: "Oil", Price: 10, Stock: -4},
	}
	orders := []Order{
		{ID: "o1", TotalAmount: math.NaN()},
		{ID: "o2", TotalAmount: 120},
	}

	stats := ComputeCatalogStats(products, orders, 0)

	assert.Equal(t, 120.0, stats.TotalRevenue)
	assert.Equal(t, 0.0, stats.InventoryValue)
	assert.Equal(t, DefaultLowStockThreshold, stats.LowStockThreshold)
	assert.Len(t, stats.LowStockProducts, 2)
	require.Len(t, stats.OutOfStockProducts, 1)
	assert.Equal(t, "p2", stats.OutOfStockProducts[0].ProductID)
	assert.Zero(t, stats.OutOfStockProducts[0].Stock)
	assert.GreaterOrEqual(t, stats.TotalRevenue, 0.0)
	assert.GreaterOrEqual(t, stats.InventoryValue, 0.0)
}

func TestAggregateCustomMultiplier(t *testing.T) {
	orders := []Order{
		{ID: "o1", CreatedAt: testNow, Items: itemJSON(t, `[{"product": "p1", "quantity": 3}]`)},
	}

	result := Aggregate(sampleCatalog(), orders, testNow, Config{AddToCartMultiplier: 1.3})
	require.Len(t, result.Series, 1)
	current := result.Series[0].WeeklyPoints[WeekCount-1]
	assert.Equal(t, 3, current.Purchases)
	assert.Equal(t, 4, current.AddToCartEstimate) // ceil(3 * 1.3)
}
