package auth

import (
	"clinic-portal-service/internal/app/config"
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/app/models"
	"clinic-portal-service/internal/pkg/clinic_dto"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/dto/requests"
	"clinic-portal-service/internal/pkg/dto/responses"
	"clinic-portal-service/internal/pkg/exceptions"
	"clinic-portal-service/internal/pkg/utils"
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	errRoleClaimMissing = errors.New("role claim missing or unknown")
	errClinicTokenStale = errors.New("clinic token expired")
)

type authUsecase struct {
	AuthClinicClient  contracts.AuthClinicClient
	SessionService    contracts.SessionService
	PermissionService contracts.PermissionService
	AuditService      contracts.AuditService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger

	// now is replaceable in tests
	now func() time.Time
}

func NewAuthUsecase(
	authClinicClient contracts.AuthClinicClient,
	sessionService contracts.SessionService,
	permissionService contracts.PermissionService,
	auditService contracts.AuditService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		AuthClinicClient:  authClinicClient,
		SessionService:    sessionService,
		PermissionService: permissionService,
		AuditService:      auditService,
		InternalConfig:    internalConfig,
		Log:               logger,
		now:               time.Now,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	result, err := uc.AuthClinicClient.Login(ctx, &clinic_dto.LoginRequest{
		Username: request.Username,
		Password: request.Password,
	})
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling AuthClinicClient.Login",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, mapLoginError(err)
	}

	claims, err := utils.DecodeClinicToken(result.Token)
	if err != nil {
		uc.Log.Error("authUsecase.Login error decoding clinic token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	role := utils.ExtractRoleClaim(claims)
	if role == "" {
		uc.Log.Error("authUsecase.Login clinic token carries no known role",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrRoleClaimMissing(errRoleClaimMissing)
	}

	now := uc.now()
	session := &models.Session{
		SessionID:   uuid.NewString(),
		User:        buildUserProfile(result.User, claims, request.Username),
		Role:        role,
		ClinicToken: result.Token,
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Duration(uc.InternalConfig.Session.ExpiredTimeInHours) * time.Hour),
	}

	sessionToken, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, time.Duration(uc.InternalConfig.JWT.ExpTimeInHour)*time.Hour)
	if err != nil {
		uc.Log.Error("authUsecase.Login error generating session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	err = uc.SessionService.Create(ctx, session)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling SessionService.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.AuditService.Record(ctx, constvars.AuditActionLogin, constvars.ResourceAuth, strconv.Itoa(session.User.ID), map[string]interface{}{
		"userId": session.User.ID,
		"role":   role,
	})

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingRoleKey, role),
	)

	return &responses.Login{
		Token:       sessionToken,
		ExpiresAt:   session.ExpiresAt,
		Role:        role,
		User:        toUserResponse(session.User),
		Permissions: uc.PermissionService.Allowed(role),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) (*responses.Logout, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	err := uc.SessionService.Destroy(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error calling SessionService.Destroy",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.AuditService.Record(ctx, constvars.AuditActionLogout, constvars.ResourceAuth, strconv.Itoa(session.User.ID), nil)

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.Logout{RedirectTo: constvars.RouteLogin}, nil
}

func (uc *authUsecase) CurrentUser(ctx context.Context, session *models.Session) (*responses.CurrentUser, error) {
	response := &responses.CurrentUser{
		Role:        session.Role,
		User:        toUserResponse(session.User),
		Permissions: uc.PermissionService.Allowed(session.Role),
	}
	if expiresAt := utils.TokenExpiresAt(session.ClinicToken); !expiresAt.IsZero() {
		response.TokenExpiresAt = &expiresAt
	}
	return response, nil
}

func (uc *authUsecase) Permissions(ctx context.Context, session *models.Session) (*responses.Permissions, error) {
	return &responses.Permissions{
		Role:        session.Role,
		Permissions: uc.PermissionService.Allowed(session.Role),
	}, nil
}

// ResolveSession is the lazy half of token expiry: nothing checks the clinic
// token proactively, each authenticated request does.
func (uc *authUsecase) ResolveSession(ctx context.Context, sessionToken string) (*models.Session, error) {
	requestID := utils.GetRequestID(ctx)

	sessionID, err := utils.ParseSessionJWT(sessionToken, uc.InternalConfig.JWT.Secret)
	if err != nil {
		uc.Log.Warn("authUsecase.ResolveSession invalid session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	session, err := uc.SessionService.Get(ctx, sessionID)
	if err != nil {
		uc.Log.Warn("authUsecase.ResolveSession error calling SessionService.Get",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if utils.IsTokenExpired(session.ClinicToken, uc.now()) {
		uc.Log.Info("authUsecase.ResolveSession clinic token expired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
		)
		_ = uc.HandleUnauthorized(ctx, sessionID)
		return nil, exceptions.ErrClinicTokenExpired(errClinicTokenStale)
	}

	return session, nil
}

// HandleUnauthorized clears the session after the backend refused its token.
func (uc *authUsecase) HandleUnauthorized(ctx context.Context, sessionID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.HandleUnauthorized called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	err := uc.SessionService.Destroy(ctx, sessionID)
	if err != nil {
		uc.Log.Error("authUsecase.HandleUnauthorized error calling SessionService.Destroy",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// mapLoginError reports bad credentials for HTTP 400/401 and the backend
// message for business rejections.
func mapLoginError(err error) error {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		return err
	}

	switch customErr.StatusCode {
	case constvars.StatusBadRequest, constvars.StatusUnauthorized:
		return exceptions.ErrInvalidUsernameOrPassword(err)
	case constvars.StatusUnprocessableEntity:
		return exceptions.ErrLoginRejected(err, customErr.ClientMessage)
	default:
		return err
	}
}

func buildUserProfile(details *clinic_dto.UserDetails, claims jwt.MapClaims, username string) models.UserProfile {
	if details != nil && details.ID > 0 {
		profile := models.UserProfile{
			ID:       details.ID,
			Username: details.Username,
			FullName: details.FullName,
			Email:    details.Email,
		}
		if profile.Username == "" {
			profile.Username = username
		}
		return profile
	}

	profile := models.UserProfile{
		Username: utils.ClaimString(claims, constvars.ClaimUsername, constvars.ClaimName),
		FullName: utils.ClaimString(claims, constvars.ClaimName),
		Email:    utils.ClaimString(claims, constvars.ClaimEmail),
	}
	if id, err := strconv.Atoi(utils.ClaimString(claims, constvars.ClaimUserID, constvars.ClaimNameIdentifier, constvars.ClaimSubject)); err == nil {
		profile.ID = id
	}
	if profile.Username == "" {
		profile.Username = username
	}
	return profile
}

func toUserResponse(user models.UserProfile) responses.UserProfile {
	return responses.UserProfile{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Email:    user.Email,
	}
}
