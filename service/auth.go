package service

import (
	"context"
	"errors"

	"github.com/Aiosol/ccf-bakery-sub001/controller"
	"github.com/Aiosol/ccf-bakery-sub001/entity"
	"github.com/Aiosol/ccf-bakery-sub001/util"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials hides whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates users and issues tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
}

type authService struct {
	users        controller.UserController
	jwtSecretKey []byte
}

func NewAuthService(users controller.UserController, config *entity.Config) AuthService {
	return &authService{
		users:        users,
		jwtSecretKey: []byte(config.JWTSecretKey),
	}
}

// Login verifies the password and returns the user with a signed token.
func (a *authService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := a.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, a.jwtSecretKey)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
