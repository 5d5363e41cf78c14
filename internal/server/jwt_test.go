package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/interview-coach/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(expirationHours int) *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key",
		ExpirationHours: expirationHours,
	})
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	service := newTestJWTService(1)
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTService_ValidateToken_Empty(t *testing.T) {
	service := newTestJWTService(1)

	_, err := service.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	service := newTestJWTService(1)

	_, err := service.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	service := newTestJWTService(1)
	other := NewJWTService(&config.JWTConfig{Secret: "different-secret", ExpirationHours: 1})

	token, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	// Negative expiration produces an already-expired token
	service := newTestJWTService(-1)

	token, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	service := newTestJWTService(1)
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)

	getter, err := service.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, getter.GetUserID())
}
