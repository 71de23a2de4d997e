package main

import (
	"clinic-portal-service/internal/pkg/utils"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Clinic backend token helpers",
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect <jwt>",
		Short: "Print the role, expiry and expiry verdict of a clinic backend token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspectToken(cmd, args[0], time.Now())
		},
	}
	cmd.AddCommand(inspectCmd)

	return cmd
}

func inspectToken(cmd *cobra.Command, token string, now time.Time) error {
	claims, err := utils.DecodeClinicToken(token)
	if err != nil {
		return fmt.Errorf("decode token: %w", err)
	}

	role := utils.ExtractRoleClaim(claims)
	if role == "" {
		role = "unknown"
	}

	expiresAt := "none"
	if exp := utils.TokenExpiresAt(token); !exp.IsZero() {
		expiresAt = exp.Format(time.RFC3339)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "role: %s\n", role)
	fmt.Fprintf(out, "expires_at: %s\n", expiresAt)
	fmt.Fprintf(out, "expired: %t\n", utils.IsTokenExpired(token, now))
	return nil
}
