package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m, err := NewTokenManager("test-secret")
	require.NoError(t, err)

	token, exp, err := m.GenerateToken("user-1", "alice", "org-1", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "org-1", claims.OrganisationID)
}

func TestParseToken_Rejects(t *testing.T) {
	m, err := NewTokenManager("test-secret")
	require.NoError(t, err)
	other, err := NewTokenManager("other-secret")
	require.NoError(t, err)

	foreign, _, err := other.GenerateToken("user-1", "alice", "", time.Hour)
	require.NoError(t, err)
	_, err = m.ParseToken(foreign)
	assert.Error(t, err)

	expired, _, err := m.GenerateToken("user-1", "alice", "", -time.Minute)
	require.NoError(t, err)
	_, err = m.ParseToken(expired)
	assert.Error(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.ParseToken(unsigned)
	assert.Error(t, err)

	_, err = m.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	_, err := NewTokenManager("")
	assert.Error(t, err)
}
