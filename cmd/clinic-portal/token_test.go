package main

import (
	"bytes"
	"clinic-portal-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-key"))
	require.NoError(t, err)
	return token
}

func TestInspectToken(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("live doctor token", func(t *testing.T) {
		claims := jwt.MapClaims{constvars.ClaimExpiration: now.Add(time.Hour).Unix()}
		claims[constvars.ClaimRoleWSFederation] = "doctor"
		token := signedToken(t, claims)

		var out bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&out)
		require.NoError(t, inspectToken(cmd, token, now))

		assert.Contains(t, out.String(), "role: Doctor")
		assert.Contains(t, out.String(), "expired: false")
	})

	t.Run("token without exp is expired", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{constvars.ClaimRole: "Patient"})

		var out bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&out)
		require.NoError(t, inspectToken(cmd, token, now))

		assert.Contains(t, out.String(), "expires_at: none")
		assert.Contains(t, out.String(), "expired: true")
	})

	t.Run("garbage", func(t *testing.T) {
		cmd := &cobra.Command{}
		cmd.SetOut(&bytes.Buffer{})
		assert.Error(t, inspectToken(cmd, "not-a-jwt", now))
	})
}
