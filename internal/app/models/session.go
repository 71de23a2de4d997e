package models

import (
	"clinic-portal-service/internal/pkg/constvars"
	"context"
	"time"
)

type UserProfile struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Session is what a logged in browser holds on the server side. ClinicToken
// is only ever kept in memory; redis stores the sealed form.
type Session struct {
	SessionID         string      `json:"session_id"`
	User              UserProfile `json:"user"`
	Role              string      `json:"role"`
	ClinicToken       string      `json:"-"`
	SealedClinicToken string      `json:"sealed_clinic_token"`
	CreatedAt         time.Time   `json:"created_at"`
	ExpiresAt         time.Time   `json:"expires_at"`
}

func (s *Session) IsPatient() bool {
	return s.Role == constvars.RolePatient
}

func (s *Session) IsDoctor() bool {
	return s.Role == constvars.RoleDoctor
}

// CanSeeAllAppointments is true for the back office roles.
func (s *Session) CanSeeAllAppointments() bool {
	switch s.Role {
	case constvars.RoleStaff, constvars.RoleManager, constvars.RoleAdmin:
		return true
	}
	return false
}

func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_KEY, session)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*Session)
	return session, ok && session != nil
}
