package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "round-trip-secret")

	userID := uuid.New()
	token, err := CreateToken(userID, "coach")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "coach", claims.Role)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := CreateToken(uuid.New(), "user")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-two")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "whatever")
	_, err := ValidateToken("not.a.jwt")
	assert.Error(t, err)
}
