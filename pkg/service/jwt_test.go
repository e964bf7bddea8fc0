package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "inventory-system/pkg/errors"
)

func newTestJWTService() JWTService {
	return NewJWTService("test-secret", time.Minute*15, time.Hour*24)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService()

	access, refresh, err := svc.GenerateTokens(42, "A")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "A", claims.Role)
	assert.False(t, claims.IsRefreshToken)

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService()
	access, _, err := svc.GenerateTokens(1, "RO")
	require.NoError(t, err)

	other := NewJWTService("another-secret", time.Minute, time.Minute)
	_, err = other.ValidateToken(access)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	svc := newTestJWTService()
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute, -time.Minute)
	access, _, err := svc.GenerateTokens(7, "RW")
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.Error(t, err)
	// jwt/v5 rejects expired tokens during parsing, before our own check runs.
	assert.NotErrorIs(t, err, apperrors.ErrInvalidSigningMethod)
}

func TestJWTService_TTLAccessors(t *testing.T) {
	svc := NewJWTService("s", time.Minute*15, time.Hour)
	assert.Equal(t, time.Minute*15, svc.GetAccessTokenTTL())
	assert.Equal(t, time.Hour, svc.GetRefreshTokenTTL())
}
