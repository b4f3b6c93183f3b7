package entity

import "time"

// PriceChange records a single ingredient price change and its effect on one
// recipe's total cost. Rows are immutable: they are appended when an
// inventory item's cost is updated and never edited afterwards.
type PriceChange struct {
	ID               uint      `json:"id"`
	InventoryItemID  uint      `json:"inventory_item_id"`
	RecipeID         uint      `json:"recipe_id"`
	ChangedAt        time.Time `json:"changed_at"`
	OldPrice         float64   `json:"old_price"`
	NewPrice         float64   `json:"new_price"`
	ChangePercentage float64   `json:"change_percentage"`
	RecipeImpact     float64   `json:"recipe_impact"`
}

// IngredientPriceHistory groups a recipe ingredient's change events for the
// price-history view.
type IngredientPriceHistory struct {
	IngredientName string        `json:"ingredient_name"`
	IngredientCode string        `json:"ingredient_code"`
	CurrentCost    float64       `json:"current_cost"`
	Quantity       float64       `json:"quantity"`
	Changes        []PriceChange `json:"changes"`
}

// CostImpactSummary aggregates the cost movement of a recipe over a trailing
// window.
type CostImpactSummary struct {
	TotalCostImpact     float64  `json:"total_cost_impact"`
	AffectedIngredients []string `json:"affected_ingredients"`
}

// CostPoint is one point of a reconstructed cost timeline. Label is the
// event date formatted as 2006-01-02, or "current" for the terminal point.
type CostPoint struct {
	Label string    `json:"label"`
	Date  time.Time `json:"date"`
	Cost  float64   `json:"cost"`
}

// PriceHistory is the full payload of the price-history endpoint.
type PriceHistory struct {
	RecipeID               uint                     `json:"recipe_id"`
	RecipeName             string                   `json:"recipe_name"`
	TotalCost              float64                  `json:"total_cost"`
	IngredientPriceChanges []IngredientPriceHistory `json:"ingredient_price_changes"`
	Summary                CostImpactSummary        `json:"cost_impact_summary"`
	Volatility             string                   `json:"volatility"`
	Timeline               []CostPoint              `json:"timeline"`
}
