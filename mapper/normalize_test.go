package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientPayloadCanonicalSpelling(t *testing.T) {
	var p IngredientPayload
	err := json.Unmarshal([]byte(`{
		"inventory_item_id": 7,
		"name": "Flour",
		"quantity": 2.5,
		"unit": "kg",
		"unit_cost": 1.2
	}`), &p)
	require.NoError(t, err)

	assert.Equal(t, uint(7), p.InventoryItemID)
	assert.Equal(t, "Flour", p.Name)
	assert.Equal(t, 2.5, p.Quantity)
	assert.Equal(t, "kg", p.Unit)
	assert.Equal(t, 1.2, p.UnitCost)
}

func TestIngredientPayloadLegacySpellings(t *testing.T) {
	var p IngredientPayload
	err := json.Unmarshal([]byte(`{
		"itemId": 3,
		"ItemName": "Butter",
		"qty": 4,
		"cost": 9.5
	}`), &p)
	require.NoError(t, err)

	assert.Equal(t, uint(3), p.InventoryItemID)
	assert.Equal(t, "Butter", p.Name)
	assert.Equal(t, 4.0, p.Quantity)
	assert.Equal(t, 9.5, p.UnitCost)
}

func TestIngredientPayloadCanonicalWinsOverLegacy(t *testing.T) {
	var p IngredientPayload
	err := json.Unmarshal([]byte(`{
		"name": "Yeast",
		"item_name": "stale spelling",
		"quantity": 1,
		"qty": 99
	}`), &p)
	require.NoError(t, err)

	assert.Equal(t, "Yeast", p.Name)
	assert.Equal(t, 1.0, p.Quantity)
}

func TestIngredientPayloadMissingNumericsDegradeToZero(t *testing.T) {
	var p IngredientPayload
	err := json.Unmarshal([]byte(`{"name": "Salt"}`), &p)
	require.NoError(t, err)

	assert.Equal(t, uint(0), p.InventoryItemID)
	assert.Equal(t, 0.0, p.Quantity)
	assert.Equal(t, 0.0, p.UnitCost)
}

func TestIngredientPayloadEntity(t *testing.T) {
	p := IngredientPayload{InventoryItemID: 2, Name: "Sugar", Quantity: 3, Unit: "kg", UnitCost: 0.8}
	e := p.Entity()
	assert.Equal(t, uint(2), e.InventoryItemID)
	assert.Equal(t, "Sugar", e.Name)
	assert.Equal(t, 3.0, e.Quantity)
	assert.Equal(t, "kg", e.Unit)
	assert.Equal(t, 0.8, e.UnitCost)
}
