package utils

import (
	"clinic-portal-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signBackendToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-owned-key"))
	require.NoError(t, err)
	return token
}

func TestIsTokenExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Future exp is not expired", func(t *testing.T) {
		token := signBackendToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})
		assert.False(t, IsTokenExpired(token, now))
	})

	t.Run("Past exp is expired", func(t *testing.T) {
		token := signBackendToken(t, jwt.MapClaims{"exp": now.Add(-time.Second).Unix()})
		assert.True(t, IsTokenExpired(token, now))
	})

	t.Run("Exp equal to now is expired", func(t *testing.T) {
		token := signBackendToken(t, jwt.MapClaims{"exp": now.Unix()})
		assert.True(t, IsTokenExpired(token, now))
	})

	t.Run("Missing exp is expired", func(t *testing.T) {
		token := signBackendToken(t, jwt.MapClaims{"role": "Doctor"})
		assert.True(t, IsTokenExpired(token, now))
	})

	t.Run("Garbage token is expired", func(t *testing.T) {
		assert.True(t, IsTokenExpired("not-a-jwt", now))
		assert.True(t, IsTokenExpired("", now))
	})
}

func TestExtractRoleClaim(t *testing.T) {
	testCases := []struct {
		name     string
		claims   jwt.MapClaims
		expected string
	}{
		{"lowercase key", jwt.MapClaims{"role": "doctor"}, constvars.RoleDoctor},
		{"capitalized key", jwt.MapClaims{"Role": "Manager"}, constvars.RoleManager},
		{"ws-federation key", jwt.MapClaims{constvars.ClaimRoleWSFederation: "Staff"}, constvars.RoleStaff},
		{"array claim", jwt.MapClaims{"role": []interface{}{"Admin"}}, constvars.RoleAdmin},
		{"unknown role", jwt.MapClaims{"role": "Janitor"}, ""},
		{"missing role", jwt.MapClaims{"sub": "1"}, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractRoleClaim(tc.claims))
		})
	}
}

func TestSessionJWTRoundTrip(t *testing.T) {
	token, err := GenerateSessionJWT("session-123", "portal-secret", time.Hour)
	require.NoError(t, err)

	sessionID, err := ParseSessionJWT(token, "portal-secret")
	require.NoError(t, err)
	assert.Equal(t, "session-123", sessionID)

	_, err = ParseSessionJWT(token, "another-secret")
	assert.Error(t, err)
}

func TestSealAndOpenToken(t *testing.T) {
	key := DeriveSealKey("portal-secret")

	sealed, err := SealToken("clinic-token", key)
	require.NoError(t, err)
	assert.NotContains(t, sealed, "clinic-token")

	plain, err := OpenToken(sealed, key)
	require.NoError(t, err)
	assert.Equal(t, "clinic-token", plain)

	_, err = OpenToken(sealed, DeriveSealKey("wrong-secret"))
	assert.Error(t, err)

	_, err = OpenToken("short", key)
	assert.Error(t, err)
}
