package auth

import (
	"clinic-portal-service/internal/app/config"
	"clinic-portal-service/internal/app/contracts/mocks"
	"clinic-portal-service/internal/app/services/core/roles"
	"clinic-portal-service/internal/app/services/core/session"
	"clinic-portal-service/internal/pkg/clinic_dto"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/dto/requests"
	"clinic-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func clinicToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-key"))
	require.NoError(t, err)
	return token
}

type authFixture struct {
	usecase *authUsecase
	client  *mocks.AuthClinicClient
	redis   *mocks.RedisRepository
	audit   *mocks.AuditService
}

func newAuthFixture() *authFixture {
	internalConfig := &config.InternalConfig{
		JWT:     config.AppJWT{Secret: "session-secret", ExpTimeInHour: 8},
		Session: config.AppSession{ExpiredTimeInHours: 8, SealSecret: "seal-secret"},
	}
	redis := mocks.NewRedisRepository()
	client := new(mocks.AuthClinicClient)
	audit := new(mocks.AuditService)
	sessionService := session.NewSessionService(redis, internalConfig.Session.SealSecret, zap.NewNop())

	permissionService, err := roles.NewPermissionService()
	if err != nil {
		panic(err)
	}

	usecase := NewAuthUsecase(client, sessionService, permissionService, audit, internalConfig, zap.NewNop()).(*authUsecase)
	return &authFixture{usecase: usecase, client: client, redis: redis, audit: audit}
}

func statusOf(t *testing.T, err error) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr
}

func TestAuthUsecaseLogin(t *testing.T) {
	ctx := context.Background()
	request := &requests.Login{Username: "dr.ana", Password: "secret"}

	t.Run("persists the session with the role from the token", func(t *testing.T) {
		f := newAuthFixture()
		token := clinicToken(t, jwt.MapClaims{
			constvars.ClaimRoleWSFederation: "doctor",
			constvars.ClaimExpiration:       time.Now().Add(time.Hour).Unix(),
		})
		f.client.On("Login", mock.Anything, &clinic_dto.LoginRequest{Username: "dr.ana", Password: "secret"}).
			Return(&clinic_dto.LoginResult{Token: token, User: &clinic_dto.UserDetails{ID: 7, Username: "dr.ana", FullName: "Ana"}}, nil)

		response, err := f.usecase.Login(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, constvars.RoleDoctor, response.Role)
		assert.Equal(t, 7, response.User.ID)
		assert.Contains(t, response.Permissions, constvars.PermissionWorkflowRun)
		assert.Equal(t, 1, f.redis.Len())
		assert.Equal(t, []string{constvars.AuditActionLogin}, f.audit.Recorded())

		resolved, err := f.usecase.ResolveSession(ctx, response.Token)
		require.NoError(t, err)
		assert.Equal(t, constvars.RoleDoctor, resolved.Role)
		assert.Equal(t, token, resolved.ClinicToken)
	})

	t.Run("falls back to token claims for the user profile", func(t *testing.T) {
		f := newAuthFixture()
		token := clinicToken(t, jwt.MapClaims{
			constvars.ClaimRole:       "Patient",
			constvars.ClaimUserID:     "12",
			constvars.ClaimEmail:      "p@clinic.test",
			constvars.ClaimExpiration: time.Now().Add(time.Hour).Unix(),
		})
		f.client.On("Login", mock.Anything, mock.Anything).Return(&clinic_dto.LoginResult{Token: token}, nil)

		response, err := f.usecase.Login(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, 12, response.User.ID)
		assert.Equal(t, "dr.ana", response.User.Username)
		assert.Equal(t, "p@clinic.test", response.User.Email)
	})

	t.Run("backend 401 is invalid credentials and persists nothing", func(t *testing.T) {
		f := newAuthFixture()
		f.client.On("Login", mock.Anything, mock.Anything).Return(nil, exceptions.ErrClinicApiUnauthorized(nil))

		_, err := f.usecase.Login(ctx, request)

		customErr := statusOf(t, err)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInvalidUsernameOrPassword, customErr.ClientMessage)
		assert.Equal(t, 0, f.redis.Len())
		assert.Empty(t, f.audit.Recorded())
	})

	t.Run("backend 400 is invalid credentials", func(t *testing.T) {
		f := newAuthFixture()
		f.client.On("Login", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrClinicApiRequestFailed(nil, constvars.ResourceAuth, constvars.StatusBadRequest, "bad"))

		_, err := f.usecase.Login(ctx, request)

		assert.Equal(t, constvars.ErrClientInvalidUsernameOrPassword, statusOf(t, err).ClientMessage)
		assert.Equal(t, 0, f.redis.Len())
	})

	t.Run("business rejection keeps the backend message", func(t *testing.T) {
		f := newAuthFixture()
		f.client.On("Login", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrClinicApiBusinessStatus(nil, constvars.ResourceAuth, "account locked"))

		_, err := f.usecase.Login(ctx, request)

		customErr := statusOf(t, err)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Equal(t, "account locked", customErr.ClientMessage)
		assert.Equal(t, 0, f.redis.Len())
	})

	t.Run("token without a known role fails", func(t *testing.T) {
		f := newAuthFixture()
		token := clinicToken(t, jwt.MapClaims{
			constvars.ClaimRole:       "Janitor",
			constvars.ClaimExpiration: time.Now().Add(time.Hour).Unix(),
		})
		f.client.On("Login", mock.Anything, mock.Anything).Return(&clinic_dto.LoginResult{Token: token}, nil)

		_, err := f.usecase.Login(ctx, request)

		assert.Error(t, err)
		assert.Equal(t, 0, f.redis.Len())
	})
}

func TestAuthUsecaseResolveSession(t *testing.T) {
	ctx := context.Background()

	t.Run("expired clinic token clears the session", func(t *testing.T) {
		f := newAuthFixture()
		token := clinicToken(t, jwt.MapClaims{
			constvars.ClaimRole:       "Staff",
			constvars.ClaimExpiration: time.Now().Add(time.Minute).Unix(),
		})
		f.client.On("Login", mock.Anything, mock.Anything).Return(&clinic_dto.LoginResult{Token: token}, nil)
		response, err := f.usecase.Login(ctx, &requests.Login{Username: "s", Password: "p"})
		require.NoError(t, err)

		f.usecase.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
		_, err = f.usecase.ResolveSession(ctx, response.Token)

		customErr := statusOf(t, err)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Equal(t, constvars.RouteLogin, customErr.RedirectTo)
		assert.Equal(t, 0, f.redis.Len())
	})

	t.Run("garbage session token is unauthorized", func(t *testing.T) {
		f := newAuthFixture()

		_, err := f.usecase.ResolveSession(ctx, "not-a-jwt")

		assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err).StatusCode)
	})
}

func TestAuthUsecaseLogout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	token := clinicToken(t, jwt.MapClaims{
		constvars.ClaimRole:       "Manager",
		constvars.ClaimExpiration: time.Now().Add(time.Hour).Unix(),
	})
	f.client.On("Login", mock.Anything, mock.Anything).Return(&clinic_dto.LoginResult{Token: token}, nil)
	response, err := f.usecase.Login(ctx, &requests.Login{Username: "m", Password: "p"})
	require.NoError(t, err)

	current, err := f.usecase.ResolveSession(ctx, response.Token)
	require.NoError(t, err)

	logout, err := f.usecase.Logout(ctx, current)

	require.NoError(t, err)
	assert.Equal(t, constvars.RouteLogin, logout.RedirectTo)
	assert.Equal(t, 0, f.redis.Len())
	_, err = f.usecase.ResolveSession(ctx, response.Token)
	assert.Error(t, err)
}
