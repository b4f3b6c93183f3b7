package util

import (
	"testing"

	"github.com/Aiosol/ccf-bakery-sub001/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("secret")
	user := &entity.User{ID: 42, Email: "baker@example.com", Role: entity.RoleBaker}

	token, err := GenerateJWT(user, secret)
	require.NoError(t, err)

	claims, err := ValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "baker@example.com", claims.Email)
	assert.Equal(t, entity.RoleBaker, claims.Role)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(&entity.User{ID: 1}, []byte("right"))
	require.NoError(t, err)

	_, err = ValidateJWT(token, []byte("wrong"))
	assert.Error(t, err)
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", []byte("secret"))
	assert.Error(t, err)
}
