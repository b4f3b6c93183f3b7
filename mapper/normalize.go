package mapper

import (
	"encoding/json"

	"github.com/Aiosol/ccf-bakery-sub001/entity"
)

// IngredientPayload is the inbound shape of a recipe ingredient line.
// Upstream clients have shipped several spellings per field over time
// (item_name / itemName / name, inventory_item_id / item_id, ...); all of
// them are collapsed here, once, at the API boundary. Everything past this
// type works with a single typed record.
type IngredientPayload struct {
	InventoryItemID uint
	Name            string
	Quantity        float64
	Unit            string
	UnitCost        float64
}

// rawIngredient lists every spelling observed in the wild. Non-numeric or
// missing numeric fields decode to nil and degrade to zero.
type rawIngredient struct {
	InventoryItemID *uint    `json:"inventory_item_id"`
	ItemID          *uint    `json:"item_id"`
	ItemIDCamel     *uint    `json:"itemId"`
	Name            string   `json:"name"`
	ItemName        string   `json:"item_name"`
	ItemNameCamel   string   `json:"itemName"`
	ItemNamePascal  string   `json:"ItemName"`
	Quantity        *float64 `json:"quantity"`
	Qty             *float64 `json:"qty"`
	Unit            string   `json:"unit"`
	UnitCost        *float64 `json:"unit_cost"`
	Cost            *float64 `json:"cost"`
}

// UnmarshalJSON normalizes any of the known upstream spellings into the
// canonical payload.
func (p *IngredientPayload) UnmarshalJSON(data []byte) error {
	var raw rawIngredient
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.InventoryItemID = firstUint(raw.InventoryItemID, raw.ItemID, raw.ItemIDCamel)
	p.Name = firstString(raw.Name, raw.ItemName, raw.ItemNameCamel, raw.ItemNamePascal)
	p.Quantity = firstFloat(raw.Quantity, raw.Qty)
	p.Unit = raw.Unit
	p.UnitCost = firstFloat(raw.UnitCost, raw.Cost)
	return nil
}

// Entity converts the normalized payload into a recipe line.
func (p *IngredientPayload) Entity() entity.RecipeIngredient {
	return entity.RecipeIngredient{
		InventoryItemID: p.InventoryItemID,
		Name:            p.Name,
		Quantity:        p.Quantity,
		Unit:            p.Unit,
		UnitCost:        p.UnitCost,
	}
}

func firstUint(vs ...*uint) uint {
	for _, v := range vs {
		if v != nil {
			return *v
		}
	}
	return 0
}

func firstFloat(vs ...*float64) float64 {
	for _, v := range vs {
		if v != nil {
			return *v
		}
	}
	return 0
}

func firstString(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}
