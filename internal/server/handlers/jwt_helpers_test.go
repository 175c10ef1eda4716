package handlers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	cfg := testJWTConfig()

	token, expiresIn, err := GenerateAccessToken(cfg, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(900), expiresIn)

	claims, err := ValidateAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "gocrm", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(cfg.AccessTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := GenerateAccessToken(cfg, 42)
	require.NoError(t, err)

	other := JWTConfig{Secret: []byte("different-secret"), AccessTokenTTL: cfg.AccessTokenTTL}
	_, err = ValidateAccessToken(other, token)
	assert.Error(t, err)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	cfg := JWTConfig{Secret: []byte("test-secret"), AccessTokenTTL: -time.Minute}

	token, _, err := GenerateAccessToken(cfg, 42)
	require.NoError(t, err)

	_, err = ValidateAccessToken(cfg, token)
	assert.Error(t, err)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	_, err := ValidateAccessToken(testJWTConfig(), "not.a.token")
	assert.Error(t, err)
}

func TestValidateAccessToken_MissingUserID(t *testing.T) {
	cfg := testJWTConfig()

	// a token signed with the right secret but without the id claim
	// validates, the caller must reject the zero user id
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		Issuer:    "gocrm",
	})
	signed, err := token.SignedString(cfg.Secret)
	require.NoError(t, err)

	claims, err := ValidateAccessToken(cfg, signed)
	require.NoError(t, err)
	assert.Zero(t, claims.UserID)
}
