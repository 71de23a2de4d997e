package middlewares

import (
	"clinic-portal-service/internal/app/models"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/exceptions"
	"clinic-portal-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var (
	errBearerMissing      = errors.New("authorization bearer token missing")
	errPermissionMissing  = errors.New("role lacks permission")
	errReferenceForbidden = errors.New("reference resource has no manage permission")
)

// Authenticate resolves the bearer session token into a session. When any
// downstream call ends in 401 the session is cleared, so the next request
// of this browser starts from the login screen.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())

		token, ok := bearerToken(r)
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errBearerMissing))
			return
		}

		session, err := m.AuthUsecase.ResolveSession(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(models.ContextWithSession(r.Context(), session)))

		if rec.statusCode == http.StatusUnauthorized {
			m.Log.Info("Middlewares.Authenticate clearing session after unauthorized response",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			)
			err = m.AuthUsecase.HandleUnauthorized(context.WithoutCancel(r.Context()), session.SessionID)
			if err != nil {
				m.Log.Error("Middlewares.Authenticate error calling AuthUsecase.HandleUnauthorized",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
			}
		}
	})
}

// RequirePermission must run after Authenticate.
func (m *Middlewares) RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !m.allow(w, r, permission) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireReferencePermission picks the read or manage permission of the
// {resource} url param from the request method.
func (m *Middlewares) RequireReferencePermission(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resourceName := chi.URLParam(r, "resource")
		read, manage, ok := m.ReferenceUsecase.Permissions(resourceName)
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrUnknownResource(nil, resourceName))
			return
		}

		permission := read
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			if manage == "" {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrResourceReadOnly(errReferenceForbidden, resourceName))
				return
			}
			permission = manage
		}

		if !m.allow(w, r, permission) {
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) allow(w http.ResponseWriter, r *http.Request, permission string) bool {
	session, ok := models.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingSession(nil))
		return false
	}

	if !m.PermissionService.Has(session.Role, permission) {
		m.Log.Warn("Middlewares.allow permission denied",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingRoleKey, session.Role),
			zap.String(constvars.LoggingPermissionKey, permission),
		)
		utils.BuildErrorResponse(m.Log, w, exceptions.ErrPermissionDenied(errPermissionMissing, permission, session.Role))
		return false
	}
	return true
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix))
	return token, token != ""
}
