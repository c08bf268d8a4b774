package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cropool/backend/internal/pkg/models"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:            "test-secret",
			AccessExpiration:  10,
			RefreshExpiration: 10080,
			Issuer:            "cropool-test",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(userID, "rider@example.com", KindAccess, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(tokenString, cfg.JWT.Secret, KindAccess)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, "rider@example.com", (*claims)["e_mail"])
	assert.Equal(t, "cropool-test", (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()

	tokenString, _, err := GenerateToken(uuid.New(), "rider@example.com", KindAccess, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "other-secret", KindAccess)
	assert.Error(t, err)
}

func TestValidateToken_KindMismatch(t *testing.T) {
	cfg := testConfig()

	refresh, _, err := GenerateToken(uuid.New(), "rider@example.com", KindRefresh, cfg)
	require.NoError(t, err)

	// A refresh token must not pass as an access token
	_, err = ValidateToken(refresh, cfg.JWT.Secret, KindAccess)
	assert.Error(t, err)

	_, err = ValidateToken(refresh, cfg.JWT.Secret, KindRefresh)
	assert.NoError(t, err)
}

func TestIssuedAt(t *testing.T) {
	cfg := testConfig()

	tokenString, _, err := GenerateToken(uuid.New(), "rider@example.com", KindRefresh, cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, cfg.JWT.Secret, KindRefresh)
	require.NoError(t, err)

	iat, err := IssuedAt(claims)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), iat, 5*time.Second)
}
