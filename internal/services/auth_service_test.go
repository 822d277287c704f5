package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundtrip(t *testing.T) {
	svc := NewAuthService("test-secret", 60)

	hash, err := svc.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, svc.CheckPassword(hash, "hunter22"))
	assert.False(t, svc.CheckPassword(hash, "hunter23"))
}

func TestGenerateTokenClaims(t *testing.T) {
	svc := NewAuthService("test-secret", 60)

	tokenStr, err := svc.GenerateToken(42, 50)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.EqualValues(t, 42, claims["user_id"])
	assert.EqualValues(t, 50, claims["role_id"])
	assert.NotNil(t, claims["exp"])
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	svc := NewAuthService("test-secret", 60)

	tokenStr, err := svc.GenerateToken(42, 50)
	require.NoError(t, err)

	_, err = jwt.Parse(tokenStr, func(*jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
