package auth

import (
	"testing"

	"kix/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestJWTService(t *testing.T) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	service, err := NewJWTService(cfg)
	require.NoError(t, err)

	return service.(*jwtService)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := createTestJWTService(t)
	userID := uuid.New()
	roles := []string{"customer", "merchant"}

	accessToken, refreshToken, err := service.GenerateTokens(userID, roles)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	claims, err := service.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_ValidateToken_RejectsRefreshToken(t *testing.T) {
	service := createTestJWTService(t)

	_, refreshToken, err := service.GenerateTokens(uuid.New(), []string{"customer"})
	require.NoError(t, err)

	// Refresh tokens are signed with a different secret and must not pass
	// access validation.
	_, err = service.ValidateToken(refreshToken)

	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsTamperedToken(t *testing.T) {
	service := createTestJWTService(t)

	accessToken, _, err := service.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	_, err = service.ValidateToken(accessToken + "x")

	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsGarbage(t *testing.T) {
	service := createTestJWTService(t)

	_, err := service.ValidateToken("not.a.token")

	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsWrongSecret(t *testing.T) {
	service := createTestJWTService(t)

	other := &config.Config{}
	other.SecretKey.Access = "different-secret"
	other.SecretKey.Refresh = "refresh-secret"
	otherService, err := NewJWTService(other)
	require.NoError(t, err)

	accessToken, _, err := otherService.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	_, err = service.ValidateToken(accessToken)

	assert.Error(t, err)
}
