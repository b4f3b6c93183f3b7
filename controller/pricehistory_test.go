package controller

import (
	"context"
	"testing"
	"time"

	"github.com/Aiosol/ccf-bakery-sub001/costing"
	"github.com/Aiosol/ccf-bakery-sub001/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyFixture() (*fakeItems, *fakeRecipes, *fakeChanges) {
	items := &fakeItems{byID: map[uint]entity.InventoryItem{
		1: {ID: 1, Code: "RM-001", Name: "Flour", UnitCost: 3, Unit: "kg"},
		2: {ID: 2, Code: "RM-002", Name: "Butter", UnitCost: 8, Unit: "kg"},
	}}
	recipes := &fakeRecipes{byID: map[uint]entity.Recipe{
		1: {ID: 1, Name: "Croissant", YieldQuantity: 10, Ingredients: []entity.RecipeIngredient{
			{InventoryItemID: 1, Quantity: 2},
			{InventoryItemID: 2, Quantity: 1},
		}},
	}}
	changes := &fakeChanges{recorded: []entity.PriceChange{
		{InventoryItemID: 1, RecipeID: 1, ChangedAt: time.Now().AddDate(0, 0, -3),
			OldPrice: 2, NewPrice: 3, ChangePercentage: 50, RecipeImpact: 2},
		{InventoryItemID: 2, RecipeID: 1, ChangedAt: time.Now().AddDate(0, 0, -10),
			OldPrice: 9, NewPrice: 8, ChangePercentage: -11.1, RecipeImpact: -1},
		// Outside any reasonable window:
		{InventoryItemID: 1, RecipeID: 1, ChangedAt: time.Now().AddDate(-1, 0, 0),
			OldPrice: 1, NewPrice: 2, RecipeImpact: 2},
	}}
	return items, recipes, changes
}

func newHistoryController(items *fakeItems, recipes *fakeRecipes, changes *fakeChanges) PriceHistoryController {
	recipeCtl := NewRecipeController(recipes, items)
	return NewPriceHistoryController(recipeCtl, items, changes, costing.NewClassifier(entity.VolatilityConfig{}))
}

func TestGetPriceHistoryAssemblesView(t *testing.T) {
	items, recipes, changes := historyFixture()
	ctl := newHistoryController(items, recipes, changes)

	history, err := ctl.GetPriceHistory(context.Background(), 1, 30)
	require.NoError(t, err)

	assert.Equal(t, uint(1), history.RecipeID)
	assert.Equal(t, "Croissant", history.RecipeName)
	assert.Equal(t, 14.0, history.TotalCost) // 2×3 + 1×8 at live prices

	require.Len(t, history.IngredientPriceChanges, 2)
	flour := history.IngredientPriceChanges[0]
	assert.Equal(t, "Flour", flour.IngredientName)
	assert.Equal(t, "RM-001", flour.IngredientCode)
	assert.Equal(t, 3.0, flour.CurrentCost)
	assert.Equal(t, 2.0, flour.Quantity)
	require.Len(t, flour.Changes, 1)

	assert.Equal(t, 1.0, history.Summary.TotalCostImpact) // 2 + (-1)
	assert.Equal(t, []string{"Flour", "Butter"}, history.Summary.AffectedIngredients)
	assert.Equal(t, string(costing.VolatilityLow), history.Volatility)

	// Timeline: oldest first, current point last at the live total.
	require.Len(t, history.Timeline, 3)
	assert.Equal(t, costing.CurrentLabel, history.Timeline[2].Label)
	assert.Equal(t, 14.0, history.Timeline[2].Cost)
	assert.Equal(t, 12.0, history.Timeline[1].Cost) // 14 - 2
	assert.Equal(t, 13.0, history.Timeline[0].Cost) // 12 - (-1)
}

func TestGetPriceHistoryRespectsWindow(t *testing.T) {
	items, recipes, changes := historyFixture()
	ctl := newHistoryController(items, recipes, changes)

	history, err := ctl.GetPriceHistory(context.Background(), 1, 5)
	require.NoError(t, err)

	require.Len(t, history.IngredientPriceChanges, 1)
	assert.Equal(t, "Flour", history.IngredientPriceChanges[0].IngredientName)
	assert.Equal(t, 2.0, history.Summary.TotalCostImpact)
	assert.Equal(t, []string{"Flour"}, history.Summary.AffectedIngredients)
}

func TestGetPriceHistoryNoEvents(t *testing.T) {
	items, recipes, _ := historyFixture()
	ctl := newHistoryController(items, recipes, &fakeChanges{})

	history, err := ctl.GetPriceHistory(context.Background(), 1, 30)
	require.NoError(t, err)

	assert.Empty(t, history.IngredientPriceChanges)
	assert.Equal(t, string(costing.VolatilityNone), history.Volatility)
	require.Len(t, history.Timeline, 1)
	assert.Equal(t, costing.CurrentLabel, history.Timeline[0].Label)
	assert.Equal(t, 14.0, history.Timeline[0].Cost)
}
