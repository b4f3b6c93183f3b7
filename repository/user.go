package repository

import (
	"context"

	"github.com/Aiosol/ccf-bakery-sub001/entity"
	"github.com/Aiosol/ccf-bakery-sub001/mapper"
	"github.com/Aiosol/ccf-bakery-sub001/model"

	"gorm.io/gorm"
)

// UserRepository persists application users.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateUser stores a new user. The entity's password must be hashed already.
func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	m := mapper.UserEntityToModel(user)
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	user.ID = m.ID
	return nil
}

// GetUserByID fetches a user by id.
func (r *UserRepository) GetUserByID(ctx context.Context, id uint) (*entity.User, error) {
	var m model.User
	if err := r.DB.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return mapper.UserModelToEntity(&m), nil
}

// GetUserByEmail fetches a user by email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m model.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, err
	}
	return mapper.UserModelToEntity(&m), nil
}

// UpdateUser saves an existing user.
func (r *UserRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	m := mapper.UserEntityToModel(user)
	return r.DB.WithContext(ctx).Save(m).Error
}

// DeleteUser removes a user by id.
func (r *UserRepository) DeleteUser(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&model.User{}, id).Error
}
