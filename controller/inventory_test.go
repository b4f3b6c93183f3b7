package controller

import (
	"context"
	"testing"

	"github.com/Aiosol/ccf-bakery-sub001/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateItemRecordsOneChangePerAffectedRecipe(t *testing.T) {
	items := &fakeItems{byID: map[uint]entity.InventoryItem{
		1: {ID: 1, Code: "RM-001", Name: "Flour", UnitCost: 2, Unit: "kg"},
	}}
	recipes := &fakeRecipes{byID: map[uint]entity.Recipe{
		10: {ID: 10, Name: "Baguette", Ingredients: []entity.RecipeIngredient{
			{InventoryItemID: 1, Quantity: 3},
		}},
		11: {ID: 11, Name: "Croissant", Ingredients: []entity.RecipeIngredient{
			{InventoryItemID: 1, Quantity: 0.5},
			{InventoryItemID: 2, Quantity: 1},
		}},
	}}
	changes := &fakeChanges{}
	ctl := NewInventoryController(items, recipes, changes)

	err := ctl.UpdateItem(context.Background(), &entity.InventoryItem{
		ID: 1, Code: "RM-001", Name: "Flour", UnitCost: 3, Unit: "kg",
	})
	require.NoError(t, err)
	require.Len(t, changes.recorded, 2)

	byRecipe := map[uint]entity.PriceChange{}
	for _, ch := range changes.recorded {
		byRecipe[ch.RecipeID] = ch
	}

	baguette := byRecipe[10]
	assert.Equal(t, 2.0, baguette.OldPrice)
	assert.Equal(t, 3.0, baguette.NewPrice)
	assert.Equal(t, 50.0, baguette.ChangePercentage)
	assert.Equal(t, 3.0, baguette.RecipeImpact) // 3 kg × (3 - 2)

	croissant := byRecipe[11]
	assert.Equal(t, 0.5, croissant.RecipeImpact)
	assert.False(t, baguette.ChangedAt.IsZero())
}

func TestUpdateItemWithoutCostChangeRecordsNothing(t *testing.T) {
	items := &fakeItems{byID: map[uint]entity.InventoryItem{
		1: {ID: 1, Code: "RM-001", Name: "Flour", UnitCost: 2, Unit: "kg"},
	}}
	changes := &fakeChanges{}
	ctl := NewInventoryController(items, &fakeRecipes{}, changes)

	err := ctl.UpdateItem(context.Background(), &entity.InventoryItem{
		ID: 1, Code: "RM-001", Name: "Bread Flour", UnitCost: 2, Unit: "kg",
	})
	require.NoError(t, err)
	assert.Empty(t, changes.recorded)
}

func TestCreateItemValidation(t *testing.T) {
	ctl := NewInventoryController(&fakeItems{}, &fakeRecipes{}, &fakeChanges{})

	err := ctl.CreateItem(context.Background(), &entity.InventoryItem{UnitCost: -1})
	var verrs entity.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "code")
	assert.Contains(t, verrs, "name")
	assert.Contains(t, verrs, "unit")
	assert.Contains(t, verrs, "unit_cost")
}
