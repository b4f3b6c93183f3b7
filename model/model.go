package model

import (
	"time"
)

// InventoryItem is a stocked item. The code prefix distinguishes finished
// goods (FG-) from raw materials (RM-).
type InventoryItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	UnitCost  float64   `gorm:"not null" json:"unit_cost"`
	Unit      string    `gorm:"size:50;not null" json:"unit"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Recipe is a production recipe. Cost fields are derived, never stored.
type Recipe struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Name            string  `gorm:"size:255;not null" json:"name"`
	Category        string  `gorm:"size:255" json:"category"`
	YieldQuantity   float64 `gorm:"not null" json:"yield_quantity"`
	YieldUnit       string  `gorm:"size:50" json:"yield_unit"`
	PrepTimeMinutes int     `json:"prep_time_minutes"`
	CookTimeMinutes int     `json:"cook_time_minutes"`
	Instructions    string  `gorm:"type:text" json:"instructions"`

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// RecipeIngredient links a recipe to an inventory item. UnitCost here is the
// cost at write time; reads replace it with the item's current cost.
type RecipeIngredient struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	RecipeID        uint    `gorm:"not null;index" json:"recipe_id"`
	InventoryItemID uint    `gorm:"not null;index" json:"inventory_item_id"`
	Quantity        float64 `gorm:"not null" json:"quantity"`
	Unit            string  `gorm:"size:50" json:"unit"`
	UnitCost        float64 `json:"unit_cost"`

	InventoryItem InventoryItem `gorm:"foreignKey:InventoryItemID" json:"inventory_item,omitempty"`
}

// PriceChange is an immutable audit row: one ingredient price change and its
// effect on one recipe. Rows are appended on inventory cost updates and
// never modified.
type PriceChange struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	InventoryItemID  uint      `gorm:"not null;index" json:"inventory_item_id"`
	RecipeID         uint      `gorm:"not null;index" json:"recipe_id"`
	ChangedAt        time.Time `gorm:"not null;index" json:"changed_at"`
	OldPrice         float64   `gorm:"not null" json:"old_price"`
	NewPrice         float64   `gorm:"not null" json:"new_price"`
	ChangePercentage float64   `json:"change_percentage"`
	RecipeImpact     float64   `json:"recipe_impact"`

	InventoryItem InventoryItem `gorm:"foreignKey:InventoryItemID" json:"inventory_item,omitempty"`
}

// User is an application user.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"size:255" json:"name"`
	Password  []byte    `gorm:"type:bytea;not null" json:"-"`
	Role      string    `gorm:"size:50;not null;default:'viewer'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
