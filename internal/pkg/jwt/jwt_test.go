package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := DefaultConfig("secret")

	token, err := GenerateToken("u1", "u1@example.com", "volunteer", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, "secret")
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)
	require.Equal(t, "u1@example.com", claims.Email)
	require.Equal(t, "volunteer", claims.Role)
	require.Equal(t, "voluntra-api", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("u1", "u1@example.com", "volunteer", DefaultConfig("secret"))
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	require.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := DefaultConfig("secret")
	cfg.AccessExpiry = -time.Minute

	token, err := GenerateToken("u1", "u1@example.com", "volunteer", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "secret")
	require.Error(t, err)
}

func TestGenerateToken_NilConfig(t *testing.T) {
	_, err := GenerateToken("u1", "u1@example.com", "volunteer", nil)
	require.Error(t, err)
}
