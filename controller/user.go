package controller

import (
	"context"

	"github.com/Aiosol/ccf-bakery-sub001/entity"
	"github.com/Aiosol/ccf-bakery-sub001/util"
)

// UserController orchestrates user administration.
type UserController interface {
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) error
	UpdateUser(ctx context.Context, user *entity.User) error
	DeleteUser(ctx context.Context, id uint) error
}

type userRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id uint) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateUser(ctx context.Context, user *entity.User) error
	DeleteUser(ctx context.Context, id uint) error
}

type userController struct {
	users userRepository
}

func NewUserController(users userRepository) UserController {
	return &userController{users: users}
}

func (c *userController) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	return c.users.GetUserByID(ctx, id)
}

func (c *userController) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return c.users.GetUserByEmail(ctx, email)
}

func (c *userController) CreateUser(ctx context.Context, user *entity.User) error {
	if errs := validateUser(user); errs.Any() {
		return errs
	}
	hashed, err := util.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return c.users.CreateUser(ctx, user)
}

func (c *userController) UpdateUser(ctx context.Context, user *entity.User) error {
	existing, err := c.users.GetUserByID(ctx, user.ID)
	if err != nil {
		return err
	}
	if user.Password == "" {
		user.Password = existing.Password
	} else {
		if err := util.ValidatePassword(user.Password); err != nil {
			return entity.ValidationErrors{"password": err.Error()}
		}
		hashed, err := util.HashPassword(user.Password)
		if err != nil {
			return err
		}
		user.Password = string(hashed)
	}
	return c.users.UpdateUser(ctx, user)
}

func (c *userController) DeleteUser(ctx context.Context, id uint) error {
	return c.users.DeleteUser(ctx, id)
}

func validateUser(user *entity.User) entity.ValidationErrors {
	errs := entity.ValidationErrors{}
	if user.Email == "" {
		errs["email"] = "email is required"
	}
	if err := util.ValidatePassword(user.Password); err != nil {
		errs["password"] = err.Error()
	}
	switch user.Role {
	case entity.RoleAdmin, entity.RoleBaker, entity.RoleViewer:
	case "":
		user.Role = entity.RoleViewer
	default:
		errs["role"] = "unknown role"
	}
	return errs
}
