package entity

import (
	"strings"
	"time"
)

// Role controls which routes a session may reach.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleBaker  Role = "baker"
	RoleViewer Role = "viewer"
)

// Inventory item code prefixes. Finished goods are sellable products built
// from a recipe; raw materials are consumed as recipe ingredients.
const (
	FinishedGoodPrefix = "FG-"
	RawMaterialPrefix  = "RM-"
)

// InventoryItem is a stocked item with its current unit cost.
type InventoryItem struct {
	ID       uint    `json:"id"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	UnitCost float64 `json:"unit_cost"`
	Unit     string  `json:"unit"`
}

// IsFinishedGood reports whether the item code marks a sellable product.
func (i *InventoryItem) IsFinishedGood() bool {
	return strings.HasPrefix(i.Code, FinishedGoodPrefix)
}

// IsRawMaterial reports whether the item code marks a recipe ingredient.
func (i *InventoryItem) IsRawMaterial() bool {
	return strings.HasPrefix(i.Code, RawMaterialPrefix)
}

// RecipeIngredient is one line of a recipe. UnitCost is a live copy of the
// referenced inventory item's current cost, refreshed on every read; the
// stored value is only trusted for historical reconstruction.
type RecipeIngredient struct {
	ID              uint    `json:"id"`
	InventoryItemID uint    `json:"inventory_item_id"`
	Name            string  `json:"name"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
	UnitCost        float64 `json:"unit_cost"`
}

// Recipe is a production recipe with derived cost fields. TotalCost and
// UnitCost are recomputed from the ingredient lines on every read and are
// never persisted.
type Recipe struct {
	ID              uint               `json:"id"`
	Name            string             `json:"name"`
	Category        string             `json:"category"`
	YieldQuantity   float64            `json:"yield_quantity"`
	YieldUnit       string             `json:"yield_unit"`
	PrepTimeMinutes int                `json:"prep_time_minutes"`
	CookTimeMinutes int                `json:"cook_time_minutes"`
	Instructions    string             `json:"instructions"`
	Ingredients     []RecipeIngredient `json:"ingredients"`
	TotalCost       float64            `json:"total_cost"`
	UnitCost        float64            `json:"unit_cost"`
}

// User is an application user.
type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session is the per-request view of an authenticated user, built from the
// verified token and injected into the request context by the auth gate.
type Session struct {
	UserID uint
	Email  string
	Role   Role
}

// HasRole reports whether the session satisfies a required role. Admin
// satisfies every requirement.
func (s Session) HasRole(required Role) bool {
	if s.Role == RoleAdmin {
		return true
	}
	return s.Role == required
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
