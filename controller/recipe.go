package controller

import (
	"context"

	"github.com/Aiosol/ccf-bakery-sub001/costing"
	"github.com/Aiosol/ccf-bakery-sub001/entity"
)

// RecipeController orchestrates recipe operations. Every read re-prices the
// ingredient lines from current inventory and re-derives the cost fields;
// stored line costs are never trusted for display.
type RecipeController interface {
	GetRecipe(ctx context.Context, id uint) (*entity.Recipe, error)
	ListRecipes(ctx context.Context) ([]entity.Recipe, error)
	CreateRecipe(ctx context.Context, recipe *entity.Recipe) error
	UpdateRecipe(ctx context.Context, recipe *entity.Recipe) error
	DeleteRecipe(ctx context.Context, id uint) error
}

type recipeRepository interface {
	CreateRecipe(ctx context.Context, recipe *entity.Recipe) error
	GetRecipeByID(ctx context.Context, id uint) (*entity.Recipe, error)
	ListRecipes(ctx context.Context) ([]entity.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe *entity.Recipe) error
	DeleteRecipe(ctx context.Context, id uint) error
}

type recipeController struct {
	recipes recipeRepository
	items   inventoryRepository
}

func NewRecipeController(recipes recipeRepository, items inventoryRepository) RecipeController {
	return &recipeController{recipes: recipes, items: items}
}

func (c *recipeController) GetRecipe(ctx context.Context, id uint) (*entity.Recipe, error) {
	recipe, err := c.recipes.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.refreshLinePrices(ctx, recipe); err != nil {
		return nil, err
	}
	costing.Derive(recipe)
	return recipe, nil
}

func (c *recipeController) ListRecipes(ctx context.Context) ([]entity.Recipe, error) {
	recipes, err := c.recipes.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		if err := c.refreshLinePrices(ctx, &recipes[i]); err != nil {
			return nil, err
		}
		costing.Derive(&recipes[i])
	}
	return recipes, nil
}

func (c *recipeController) CreateRecipe(ctx context.Context, recipe *entity.Recipe) error {
	if err := c.prepare(ctx, recipe); err != nil {
		return err
	}
	if err := c.recipes.CreateRecipe(ctx, recipe); err != nil {
		return err
	}
	costing.Derive(recipe)
	return nil
}

func (c *recipeController) UpdateRecipe(ctx context.Context, recipe *entity.Recipe) error {
	if err := c.prepare(ctx, recipe); err != nil {
		return err
	}
	if err := c.recipes.UpdateRecipe(ctx, recipe); err != nil {
		return err
	}
	costing.Derive(recipe)
	return nil
}

func (c *recipeController) DeleteRecipe(ctx context.Context, id uint) error {
	return c.recipes.DeleteRecipe(ctx, id)
}

// prepare validates the recipe and snapshots current item costs onto the
// lines before persisting. The snapshot is only used for historical
// reconstruction; reads always re-price.
func (c *recipeController) prepare(ctx context.Context, recipe *entity.Recipe) error {
	if errs := validateRecipe(recipe); errs.Any() {
		return errs
	}
	return c.refreshLinePrices(ctx, recipe)
}

// refreshLinePrices overwrites each line's unit cost, name and unit label
// with the referenced inventory item's current state.
func (c *recipeController) refreshLinePrices(ctx context.Context, recipe *entity.Recipe) error {
	if len(recipe.Ingredients) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(recipe.Ingredients))
	for i := range recipe.Ingredients {
		ids = append(ids, recipe.Ingredients[i].InventoryItemID)
	}
	items, err := c.items.ListItemsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for i := range recipe.Ingredients {
		line := &recipe.Ingredients[i]
		item, ok := items[line.InventoryItemID]
		if !ok {
			// Referenced item is gone; the line contributes nothing.
			line.UnitCost = 0
			continue
		}
		line.UnitCost = item.UnitCost
		line.Name = item.Name
		if line.Unit == "" {
			line.Unit = item.Unit
		}
	}
	return nil
}

func validateRecipe(recipe *entity.Recipe) entity.ValidationErrors {
	errs := entity.ValidationErrors{}
	if recipe.Name == "" {
		errs["name"] = "name is required"
	}
	if recipe.YieldQuantity < 0 {
		errs["yield_quantity"] = "yield quantity cannot be negative"
	}
	for _, line := range recipe.Ingredients {
		if line.InventoryItemID == 0 {
			errs["ingredients"] = "every ingredient must reference an inventory item"
			break
		}
		if line.Quantity <= 0 {
			errs["ingredients"] = "ingredient quantities must be positive"
			break
		}
	}
	return errs
}
