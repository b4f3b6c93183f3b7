package repository

import (
	"context"

	"github.com/Aiosol/ccf-bakery-sub001/entity"
	"github.com/Aiosol/ccf-bakery-sub001/mapper"
	"github.com/Aiosol/ccf-bakery-sub001/model"

	"gorm.io/gorm"
)

// InventoryRepository persists inventory items.
type InventoryRepository struct {
	DB *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

// CreateItem stores a new inventory item.
func (r *InventoryRepository) CreateItem(ctx context.Context, item *entity.InventoryItem) error {
	m := mapper.InventoryItemEntityToModel(item)
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	item.ID = m.ID
	return nil
}

// GetItemByID fetches one inventory item.
func (r *InventoryRepository) GetItemByID(ctx context.Context, id uint) (*entity.InventoryItem, error) {
	var m model.InventoryItem
	if err := r.DB.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return mapper.InventoryItemModelToEntity(&m), nil
}

// ListItems returns all inventory items ordered by code.
func (r *InventoryRepository) ListItems(ctx context.Context) ([]entity.InventoryItem, error) {
	var ms []model.InventoryItem
	if err := r.DB.WithContext(ctx).Order("code").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]entity.InventoryItem, 0, len(ms))
	for i := range ms {
		items = append(items, *mapper.InventoryItemModelToEntity(&ms[i]))
	}
	return items, nil
}

// ListItemsByIDs returns the items with the given ids, keyed by id.
func (r *InventoryRepository) ListItemsByIDs(ctx context.Context, ids []uint) (map[uint]entity.InventoryItem, error) {
	var ms []model.InventoryItem
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make(map[uint]entity.InventoryItem, len(ms))
	for i := range ms {
		items[ms[i].ID] = *mapper.InventoryItemModelToEntity(&ms[i])
	}
	return items, nil
}

// UpdateItem saves an existing inventory item.
func (r *InventoryRepository) UpdateItem(ctx context.Context, item *entity.InventoryItem) error {
	m := mapper.InventoryItemEntityToModel(item)
	return r.DB.WithContext(ctx).Save(m).Error
}

// DeleteItem removes an inventory item by id.
func (r *InventoryRepository) DeleteItem(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&model.InventoryItem{}, id).Error
}
