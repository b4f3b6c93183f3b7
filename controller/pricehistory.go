package controller

import (
	"context"
	"sort"
	"time"

	"github.com/Aiosol/ccf-bakery-sub001/costing"
	"github.com/Aiosol/ccf-bakery-sub001/entity"
)

// DefaultHistoryWindowDays is the trailing window when the caller does not
// give one.
const DefaultHistoryWindowDays = 30

// PriceHistoryController assembles the price-history view of a recipe:
// per-ingredient change lists, the cost-impact summary with its volatility
// class, and the reconstructed cost timeline.
type PriceHistoryController interface {
	GetPriceHistory(ctx context.Context, recipeID uint, windowDays int) (*entity.PriceHistory, error)
}

type priceChangeLister interface {
	ListChangesForRecipe(ctx context.Context, recipeID uint, since time.Time) ([]entity.PriceChange, error)
}

type priceHistoryController struct {
	recipes    RecipeController
	items      inventoryRepository
	changes    priceChangeLister
	classifier costing.Classifier
}

func NewPriceHistoryController(recipes RecipeController, items inventoryRepository, changes priceChangeLister, classifier costing.Classifier) PriceHistoryController {
	return &priceHistoryController{
		recipes:    recipes,
		items:      items,
		changes:    changes,
		classifier: classifier,
	}
}

func (c *priceHistoryController) GetPriceHistory(ctx context.Context, recipeID uint, windowDays int) (*entity.PriceHistory, error) {
	if windowDays <= 0 {
		windowDays = DefaultHistoryWindowDays
	}

	// Live-priced recipe with derived current total.
	recipe, err := c.recipes.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -windowDays)
	events, err := c.changes.ListChangesForRecipe(ctx, recipeID, since)
	if err != nil {
		return nil, err
	}

	groups, err := c.groupByIngredient(ctx, recipe, events)
	if err != nil {
		return nil, err
	}

	summary := costing.Summarize(groups)
	return &entity.PriceHistory{
		RecipeID:               recipe.ID,
		RecipeName:             recipe.Name,
		TotalCost:              recipe.TotalCost,
		IngredientPriceChanges: groups,
		Summary:                summary,
		Volatility:             string(c.classifier.Classify(summary)),
		Timeline:               costing.ReconstructTimeline(recipe.TotalCost, events),
	}, nil
}

// groupByIngredient buckets change events under the recipe line that owns
// them, in the recipe's line order. Events for items no longer on the recipe
// are grouped after the lines so the summary still counts them.
func (c *priceHistoryController) groupByIngredient(ctx context.Context, recipe *entity.Recipe, events []entity.PriceChange) ([]entity.IngredientPriceHistory, error) {
	byItem := make(map[uint][]entity.PriceChange)
	for _, ev := range events {
		byItem[ev.InventoryItemID] = append(byItem[ev.InventoryItemID], ev)
	}

	var groups []entity.IngredientPriceHistory
	seen := make(map[uint]bool)
	for _, line := range recipe.Ingredients {
		changes := byItem[line.InventoryItemID]
		if len(changes) == 0 {
			continue
		}
		seen[line.InventoryItemID] = true
		group := entity.IngredientPriceHistory{
			IngredientName: line.Name,
			CurrentCost:    line.UnitCost,
			Quantity:       line.Quantity,
			Changes:        changes,
		}
		if item, err := c.items.GetItemByID(ctx, line.InventoryItemID); err == nil {
			group.IngredientCode = item.Code
		}
		groups = append(groups, group)
	}

	var leftover []uint
	for itemID := range byItem {
		if !seen[itemID] {
			leftover = append(leftover, itemID)
		}
	}
	sort.Slice(leftover, func(i, j int) bool { return leftover[i] < leftover[j] })
	for _, itemID := range leftover {
		group := entity.IngredientPriceHistory{Changes: byItem[itemID]}
		if item, err := c.items.GetItemByID(ctx, itemID); err == nil {
			group.IngredientName = item.Name
			group.IngredientCode = item.Code
			group.CurrentCost = item.UnitCost
		}
		groups = append(groups, group)
	}
	return groups, nil
}
