package middleware

import (
	"testing"

	"restaurant-pos-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenManager([]byte("test-secret"))
	user := &models.User{ID: "u-1", Email: "ana@pos.test", Role: models.RoleWaiter}

	signed, err := tokens.Issue(user)
	require.NoError(t, err)

	claims, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "ana@pos.test", claims.Email)
	assert.Equal(t, models.RoleWaiter, claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, err := NewTokenManager([]byte("secret-a")).Issue(&models.User{ID: "u-1"})
	require.NoError(t, err)

	_, err = NewTokenManager([]byte("secret-b")).Parse(signed)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewTokenManager([]byte("secret")).Parse("not-a-token")
	assert.Error(t, err)
}
