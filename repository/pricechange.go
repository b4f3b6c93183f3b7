package repository

import (
	"context"
	"time"

	"github.com/Aiosol/ccf-bakery-sub001/entity"
	"github.com/Aiosol/ccf-bakery-sub001/mapper"
	"github.com/Aiosol/ccf-bakery-sub001/model"

	"gorm.io/gorm"
)

// PriceChangeRepository appends and queries the immutable price-change audit
// rows.
type PriceChangeRepository struct {
	DB *gorm.DB
}

func NewPriceChangeRepository(db *gorm.DB) *PriceChangeRepository {
	return &PriceChangeRepository{DB: db}
}

// RecordChanges appends a batch of change rows. Rows are never updated or
// deleted afterwards.
func (r *PriceChangeRepository) RecordChanges(ctx context.Context, changes []entity.PriceChange) error {
	if len(changes) == 0 {
		return nil
	}
	ms := make([]model.PriceChange, 0, len(changes))
	for _, ch := range changes {
		ms = append(ms, model.PriceChange{
			InventoryItemID:  ch.InventoryItemID,
			RecipeID:         ch.RecipeID,
			ChangedAt:        ch.ChangedAt,
			OldPrice:         ch.OldPrice,
			NewPrice:         ch.NewPrice,
			ChangePercentage: ch.ChangePercentage,
			RecipeImpact:     ch.RecipeImpact,
		})
	}
	return r.DB.WithContext(ctx).Create(&ms).Error
}

// ListChangesForRecipe returns the change rows of one recipe since the given
// time, most recent first.
func (r *PriceChangeRepository) ListChangesForRecipe(ctx context.Context, recipeID uint, since time.Time) ([]entity.PriceChange, error) {
	var ms []model.PriceChange
	err := r.DB.WithContext(ctx).
		Where("recipe_id = ? AND changed_at >= ?", recipeID, since).
		Order("changed_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	changes := make([]entity.PriceChange, 0, len(ms))
	for i := range ms {
		changes = append(changes, *mapper.PriceChangeModelToEntity(&ms[i]))
	}
	return changes, nil
}
