package repository

import (
	"context"

	"github.com/Aiosol/ccf-bakery-sub001/entity"
	"github.com/Aiosol/ccf-bakery-sub001/mapper"
	"github.com/Aiosol/ccf-bakery-sub001/model"

	"gorm.io/gorm"
)

// RecipeRepository persists recipes and their ingredient lines.
type RecipeRepository struct {
	DB *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{DB: db}
}

// CreateRecipe stores a recipe with its lines in one transaction.
func (r *RecipeRepository) CreateRecipe(ctx context.Context, recipe *entity.Recipe) error {
	m := mapper.RecipeEntityToModel(recipe)
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	recipe.ID = m.ID
	return nil
}

// GetRecipeByID fetches a recipe with its ingredient lines and their items.
func (r *RecipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	var m model.Recipe
	err := r.DB.WithContext(ctx).
		Preload("Ingredients").
		Preload("Ingredients.InventoryItem").
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return mapper.RecipeModelToEntity(&m), nil
}

// ListRecipes returns all recipes with their lines.
func (r *RecipeRepository) ListRecipes(ctx context.Context) ([]entity.Recipe, error) {
	var ms []model.Recipe
	err := r.DB.WithContext(ctx).
		Preload("Ingredients").
		Preload("Ingredients.InventoryItem").
		Order("name").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	recipes := make([]entity.Recipe, 0, len(ms))
	for i := range ms {
		recipes = append(recipes, *mapper.RecipeModelToEntity(&ms[i]))
	}
	return recipes, nil
}

// ListRecipesUsingItem returns the recipes containing the given inventory
// item, lines included.
func (r *RecipeRepository) ListRecipesUsingItem(ctx context.Context, itemID uint) ([]entity.Recipe, error) {
	var ids []uint
	err := r.DB.WithContext(ctx).
		Model(&model.RecipeIngredient{}).
		Where("inventory_item_id = ?", itemID).
		Distinct("recipe_id").
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var ms []model.Recipe
	err = r.DB.WithContext(ctx).
		Preload("Ingredients").
		Preload("Ingredients.InventoryItem").
		Where("id IN ?", ids).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	recipes := make([]entity.Recipe, 0, len(ms))
	for i := range ms {
		recipes = append(recipes, *mapper.RecipeModelToEntity(&ms[i]))
	}
	return recipes, nil
}

// UpdateRecipe replaces a recipe's fields and its full line set in one
// transaction.
func (r *RecipeRepository) UpdateRecipe(ctx context.Context, recipe *entity.Recipe) error {
	m := mapper.RecipeEntityToModel(recipe)
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", m.ID).Delete(&model.RecipeIngredient{}).Error; err != nil {
			return err
		}
		for i := range m.Ingredients {
			m.Ingredients[i].ID = 0
			m.Ingredients[i].RecipeID = m.ID
		}
		return tx.Save(m).Error
	})
}

// DeleteRecipe removes a recipe and its lines.
func (r *RecipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&model.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Recipe{}, id).Error
	})
}
