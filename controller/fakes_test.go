package controller

import (
	"context"
	"time"

	"github.com/Aiosol/ccf-bakery-sub001/entity"

	"gorm.io/gorm"
)

type fakeItems struct {
	byID map[uint]entity.InventoryItem
}

func (f *fakeItems) CreateItem(_ context.Context, item *entity.InventoryItem) error {
	if f.byID == nil {
		f.byID = map[uint]entity.InventoryItem{}
	}
	item.ID = uint(len(f.byID) + 1)
	f.byID[item.ID] = *item
	return nil
}

func (f *fakeItems) GetItemByID(_ context.Context, id uint) (*entity.InventoryItem, error) {
	item, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (f *fakeItems) ListItems(_ context.Context) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	for _, item := range f.byID {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeItems) ListItemsByIDs(_ context.Context, ids []uint) (map[uint]entity.InventoryItem, error) {
	out := map[uint]entity.InventoryItem{}
	for _, id := range ids {
		if item, ok := f.byID[id]; ok {
			out[id] = item
		}
	}
	return out, nil
}

func (f *fakeItems) UpdateItem(_ context.Context, item *entity.InventoryItem) error {
	f.byID[item.ID] = *item
	return nil
}

func (f *fakeItems) DeleteItem(_ context.Context, id uint) error {
	delete(f.byID, id)
	return nil
}

type fakeRecipes struct {
	byID map[uint]entity.Recipe
}

func (f *fakeRecipes) CreateRecipe(_ context.Context, recipe *entity.Recipe) error {
	if f.byID == nil {
		f.byID = map[uint]entity.Recipe{}
	}
	recipe.ID = uint(len(f.byID) + 1)
	f.byID[recipe.ID] = *recipe
	return nil
}

func (f *fakeRecipes) GetRecipeByID(_ context.Context, id uint) (*entity.Recipe, error) {
	recipe, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &recipe, nil
}

func (f *fakeRecipes) ListRecipes(_ context.Context) ([]entity.Recipe, error) {
	var recipes []entity.Recipe
	for _, r := range f.byID {
		recipes = append(recipes, r)
	}
	return recipes, nil
}

func (f *fakeRecipes) ListRecipesUsingItem(_ context.Context, itemID uint) ([]entity.Recipe, error) {
	var recipes []entity.Recipe
	for _, r := range f.byID {
		for _, line := range r.Ingredients {
			if line.InventoryItemID == itemID {
				recipes = append(recipes, r)
				break
			}
		}
	}
	return recipes, nil
}

func (f *fakeRecipes) UpdateRecipe(_ context.Context, recipe *entity.Recipe) error {
	f.byID[recipe.ID] = *recipe
	return nil
}

func (f *fakeRecipes) DeleteRecipe(_ context.Context, id uint) error {
	delete(f.byID, id)
	return nil
}

type fakeChanges struct {
	recorded []entity.PriceChange
}

func (f *fakeChanges) RecordChanges(_ context.Context, changes []entity.PriceChange) error {
	f.recorded = append(f.recorded, changes...)
	return nil
}

func (f *fakeChanges) ListChangesForRecipe(_ context.Context, recipeID uint, since time.Time) ([]entity.PriceChange, error) {
	var out []entity.PriceChange
	for _, ch := range f.recorded {
		if ch.RecipeID == recipeID && !ch.ChangedAt.Before(since) {
			out = append(out, ch)
		}
	}
	return out, nil
}
