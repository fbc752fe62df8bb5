// internal/analytics/lineitem.go
package analytics

import (
	"encoding/json"
	"math"
	"strconv"
)

// ResolveProductID extracts a canonical product id from a line item,
// tolerating every shape the checkout has historically written. Resolution
// order, first match wins:
//
//  1. item.product as an object with "_id" or "id"
//  2. item.product as a bare string
//  3. item.productId as a string, or as an object with "_id"
//  4. item.product_id, stringified whether scalar or object
//
// Returns ok=false when nothing matches; one malformed item must never abort
// aggregation of the rest of the order, so this never panics and never
// returns an error.
func ResolveProductID(item LineItem) (string, bool) {
	if len(item.Product) > 0 {
		if id, ok := objectID(item.Product, "_id", "id"); ok {
			return id, true
		}
		if id, ok := scalarID(item.Product); ok {
			return id, true
		}
	}
	if len(item.ProductID) > 0 {
		if id, ok := stringID(item.ProductID); ok {
			return id, true
		}
		if id, ok := objectID(item.ProductID, "_id"); ok {
			return id, true
		}
	}
	if len(item.LegacyID) > 0 {
		if id, ok := scalarID(item.LegacyID); ok {
			return id, true
		}
		if id, ok := objectID(item.LegacyID, "_id", "id"); ok {
			return id, true
		}
	}
	return "", false
}

// ResolveQuantity reads the item quantity with legacy fallbacks: quantity,
// then qty, then 1. Non-numeric or non-positive values coerce to 1 — a
// deliberate leniency matching the historical behavior, not a validation
// gate.
func ResolveQuantity(item LineItem) int {
	if q, ok := numericValue(item.Quantity); ok && q >= 1 {
		return int(q)
	}
	if q, ok := numericValue(item.Qty); ok && q >= 1 {
		return int(q)
	}
	return 1
}

func stringID(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		return "", false
	}
	return s, true
}

// scalarID accepts a string or, in the oldest records, a bare number. The
// decode goes through a pointer so a JSON null reads as absent instead of a
// zero value.
func scalarID(raw json.RawMessage) (string, bool) {
	if s, ok := stringID(raw); ok {
		return s, true
	}
	var n *float64
	if err := json.Unmarshal(raw, &n); err == nil && n != nil && !math.IsNaN(*n) {
		return strconv.FormatFloat(*n, 'f', -1, 64), true
	}
	return "", false
}

func objectID(raw json.RawMessage, keys ...string) (string, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return "", false
	}
	for _, key := range keys {
		if inner, exists := obj[key]; exists {
			if id, ok := scalarID(inner); ok {
				return id, true
			}
		}
	}
	return "", false
}

func numericValue(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var n *float64
	if err := json.Unmarshal(raw, &n); err == nil && n != nil {
		if math.IsNaN(*n) || math.IsInf(*n, 0) {
			return 0, false
		}
		return *n, true
	}
	// Quantities also show up as numeric strings.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
			return n, true
		}
	}
	return 0, false
}
