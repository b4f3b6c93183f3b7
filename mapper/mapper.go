package mapper

import (
	"github.com/Aiosol/ccf-bakery-sub001/entity"
	"github.com/Aiosol/ccf-bakery-sub001/model"
)

// InventoryItemModelToEntity maps an InventoryItem model to the entity.
func InventoryItemModelToEntity(m *model.InventoryItem) *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:       m.ID,
		Code:     m.Code,
		Name:     m.Name,
		UnitCost: m.UnitCost,
		Unit:     m.Unit,
	}
}

// InventoryItemEntityToModel maps an InventoryItem entity to the model.
func InventoryItemEntityToModel(e *entity.InventoryItem) *model.InventoryItem {
	return &model.InventoryItem{
		ID:       e.ID,
		Code:     e.Code,
		Name:     e.Name,
		UnitCost: e.UnitCost,
		Unit:     e.Unit,
	}
}

// RecipeModelToEntity maps a Recipe model with its lines to the entity.
// Line unit costs are taken as stored; the controller refreshes them from
// current inventory before any cost derivation.
func RecipeModelToEntity(m *model.Recipe) *entity.Recipe {
	lines := make([]entity.RecipeIngredient, 0, len(m.Ingredients))
	for i := range m.Ingredients {
		lines = append(lines, *RecipeIngredientModelToEntity(&m.Ingredients[i]))
	}
	return &entity.Recipe{
		ID:              m.ID,
		Name:            m.Name,
		Category:        m.Category,
		YieldQuantity:   m.YieldQuantity,
		YieldUnit:       m.YieldUnit,
		PrepTimeMinutes: m.PrepTimeMinutes,
		CookTimeMinutes: m.CookTimeMinutes,
		Instructions:    m.Instructions,
		Ingredients:     lines,
	}
}

// RecipeEntityToModel maps a Recipe entity to the model. Derived cost fields
// are not persisted.
func RecipeEntityToModel(e *entity.Recipe) *model.Recipe {
	lines := make([]model.RecipeIngredient, 0, len(e.Ingredients))
	for i := range e.Ingredients {
		lines = append(lines, *RecipeIngredientEntityToModel(&e.Ingredients[i]))
	}
	return &model.Recipe{
		ID:              e.ID,
		Name:            e.Name,
		Category:        e.Category,
		YieldQuantity:   e.YieldQuantity,
		YieldUnit:       e.YieldUnit,
		PrepTimeMinutes: e.PrepTimeMinutes,
		CookTimeMinutes: e.CookTimeMinutes,
		Instructions:    e.Instructions,
		Ingredients:     lines,
	}
}

// RecipeIngredientModelToEntity maps a RecipeIngredient model to the entity.
func RecipeIngredientModelToEntity(m *model.RecipeIngredient) *entity.RecipeIngredient {
	name := m.InventoryItem.Name
	unit := m.Unit
	if unit == "" {
		unit = m.InventoryItem.Unit
	}
	return &entity.RecipeIngredient{
		ID:              m.ID,
		InventoryItemID: m.InventoryItemID,
		Name:            name,
		Quantity:        m.Quantity,
		Unit:            unit,
		UnitCost:        m.UnitCost,
	}
}

// RecipeIngredientEntityToModel maps a RecipeIngredient entity to the model.
func RecipeIngredientEntityToModel(e *entity.RecipeIngredient) *model.RecipeIngredient {
	return &model.RecipeIngredient{
		ID:              e.ID,
		InventoryItemID: e.InventoryItemID,
		Quantity:        e.Quantity,
		Unit:            e.Unit,
		UnitCost:        e.UnitCost,
	}
}

// PriceChangeModelToEntity maps a PriceChange model to the entity.
func PriceChangeModelToEntity(m *model.PriceChange) *entity.PriceChange {
	return &entity.PriceChange{
		ID:               m.ID,
		InventoryItemID:  m.InventoryItemID,
		RecipeID:         m.RecipeID,
		ChangedAt:        m.ChangedAt,
		OldPrice:         m.OldPrice,
		NewPrice:         m.NewPrice,
		ChangePercentage: m.ChangePercentage,
		RecipeImpact:     m.RecipeImpact,
	}
}

// UserModelToEntity maps a User model to the entity.
func UserModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		Password:  string(m.Password),
		Role:      entity.Role(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// UserEntityToModel maps a User entity to the model. The password is expected
// to be hashed already.
func UserEntityToModel(e *entity.User) *model.User {
	return &model.User{
		ID:       e.ID,
		Email:    e.Email,
		Name:     e.Name,
		Password: []byte(e.Password),
		Role:     string(e.Role),
	}
}
