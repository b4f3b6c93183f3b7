// Package costing holds the cost arithmetic of the bakery console: recipe
// cost aggregation, price-history timeline reconstruction and volatility
// classification. All functions work on small in-memory slices and are
// recomputed on every read; nothing here caches.
package costing

import (
	"math"

	"github.com/Aiosol/ccf-bakery-sub001/entity"
)

// TotalCost sums quantity × unit cost over all ingredient lines. Lines with
// a NaN or infinite cost or quantity contribute 0. An empty list totals 0.
func TotalCost(lines []entity.RecipeIngredient) float64 {
	var total float64
	for i := range lines {
		q, c := lines[i].Quantity, lines[i].UnitCost
		if !isFinite(q) || !isFinite(c) {
			continue
		}
		total += q * c
	}
	return total
}

// UnitCost divides a total cost by the yield quantity. Undefined (0) when the
// yield is zero or negative.
func UnitCost(totalCost, yieldQuantity float64) float64 {
	if yieldQuantity <= 0 {
		return 0
	}
	return totalCost / yieldQuantity
}

// Derive fills a recipe's derived cost fields from its ingredient lines.
func Derive(r *entity.Recipe) {
	r.TotalCost = TotalCost(r.Ingredients)
	r.UnitCost = UnitCost(r.TotalCost, r.YieldQuantity)
}

// ChangePercentage is the relative price move of a single change, in percent.
// 0 when the old price is 0.
func ChangePercentage(oldPrice, newPrice float64) float64 {
	if oldPrice == 0 {
		return 0
	}
	return (newPrice - oldPrice) / oldPrice * 100
}

// Summarize aggregates change events into a cost-impact summary: the total
// cost delta and the distinct ingredients touched, in first-seen order.
func Summarize(groups []entity.IngredientPriceHistory) entity.CostImpactSummary {
	var s entity.CostImpactSummary
	s.AffectedIngredients = []string{}
	for i := range groups {
		if len(groups[i].Changes) == 0 {
			continue
		}
		s.AffectedIngredients = append(s.AffectedIngredients, groups[i].IngredientName)
		for _, ch := range groups[i].Changes {
			if !isFinite(ch.RecipeImpact) {
				continue
			}
			s.TotalCostImpact += ch.RecipeImpact
		}
	}
	return s
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
