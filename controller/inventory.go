package controller

import (
	"context"
	"time"

	"github.com/Aiosol/ccf-bakery-sub001/costing"
	"github.com/Aiosol/ccf-bakery-sub001/entity"
	"github.com/Aiosol/ccf-bakery-sub001/logger"

	"go.uber.org/zap"
)

// InventoryController orchestrates inventory item operations. A unit-cost
// update fans out one immutable price-change row per affected recipe.
type InventoryController interface {
	GetItem(ctx context.Context, id uint) (*entity.InventoryItem, error)
	ListItems(ctx context.Context) ([]entity.InventoryItem, error)
	CreateItem(ctx context.Context, item *entity.InventoryItem) error
	UpdateItem(ctx context.Context, item *entity.InventoryItem) error
	DeleteItem(ctx context.Context, id uint) error
}

type inventoryRepository interface {
	CreateItem(ctx context.Context, item *entity.InventoryItem) error
	GetItemByID(ctx context.Context, id uint) (*entity.InventoryItem, error)
	ListItems(ctx context.Context) ([]entity.InventoryItem, error)
	ListItemsByIDs(ctx context.Context, ids []uint) (map[uint]entity.InventoryItem, error)
	UpdateItem(ctx context.Context, item *entity.InventoryItem) error
	DeleteItem(ctx context.Context, id uint) error
}

type recipeLister interface {
	ListRecipesUsingItem(ctx context.Context, itemID uint) ([]entity.Recipe, error)
}

type priceChangeRecorder interface {
	RecordChanges(ctx context.Context, changes []entity.PriceChange) error
}

type inventoryController struct {
	items   inventoryRepository
	recipes recipeLister
	changes priceChangeRecorder
}

func NewInventoryController(items inventoryRepository, recipes recipeLister, changes priceChangeRecorder) InventoryController {
	return &inventoryController{items: items, recipes: recipes, changes: changes}
}

func (c *inventoryController) GetItem(ctx context.Context, id uint) (*entity.InventoryItem, error) {
	return c.items.GetItemByID(ctx, id)
}

func (c *inventoryController) ListItems(ctx context.Context) ([]entity.InventoryItem, error) {
	return c.items.ListItems(ctx)
}

func (c *inventoryController) CreateItem(ctx context.Context, item *entity.InventoryItem) error {
	if errs := validateItem(item); errs.Any() {
		return errs
	}
	return c.items.CreateItem(ctx, item)
}

// UpdateItem saves the item and, when the unit cost moved, appends one
// price-change row per recipe that uses it. The impact of the change on a
// recipe is line quantity × (new − old).
func (c *inventoryController) UpdateItem(ctx context.Context, item *entity.InventoryItem) error {
	if errs := validateItem(item); errs.Any() {
		return errs
	}

	existing, err := c.items.GetItemByID(ctx, item.ID)
	if err != nil {
		return err
	}

	if err := c.items.UpdateItem(ctx, item); err != nil {
		return err
	}

	if existing.UnitCost == item.UnitCost {
		return nil
	}
	return c.recordPriceChange(ctx, existing.UnitCost, item)
}

func (c *inventoryController) recordPriceChange(ctx context.Context, oldCost float64, item *entity.InventoryItem) error {
	recipes, err := c.recipes.ListRecipesUsingItem(ctx, item.ID)
	if err != nil {
		return err
	}

	now := time.Now()
	pct := costing.ChangePercentage(oldCost, item.UnitCost)
	var rows []entity.PriceChange
	for i := range recipes {
		for _, line := range recipes[i].Ingredients {
			if line.InventoryItemID != item.ID {
				continue
			}
			rows = append(rows, entity.PriceChange{
				InventoryItemID:  item.ID,
				RecipeID:         recipes[i].ID,
				ChangedAt:        now,
				OldPrice:         oldCost,
				NewPrice:         item.UnitCost,
				ChangePercentage: pct,
				RecipeImpact:     line.Quantity * (item.UnitCost - oldCost),
			})
		}
	}

	if len(rows) > 0 {
		logger.Info("recording price change",
			zap.Uint("item_id", item.ID),
			zap.Float64("old_cost", oldCost),
			zap.Float64("new_cost", item.UnitCost),
			zap.Int("affected_recipes", len(rows)))
	}
	return c.changes.RecordChanges(ctx, rows)
}

func (c *inventoryController) DeleteItem(ctx context.Context, id uint) error {
	return c.items.DeleteItem(ctx, id)
}

func validateItem(item *entity.InventoryItem) entity.ValidationErrors {
	errs := entity.ValidationErrors{}
	if item.Code == "" {
		errs["code"] = "code is required"
	}
	if item.Name == "" {
		errs["name"] = "name is required"
	}
	if item.UnitCost < 0 {
		errs["unit_cost"] = "unit cost cannot be negative"
	}
	if item.Unit == "" {
		errs["unit"] = "unit is required"
	}
	return errs
}
