package middlewares

import (
	"clinic-portal-service/internal/app/config"
	"clinic-portal-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log               *zap.Logger
	AuthUsecase       contracts.AuthUsecase
	PermissionService contracts.PermissionService
	ReferenceUsecase  contracts.ReferenceUsecase
	RedisRepository   contracts.RedisRepository
	LockService       contracts.LockerService
	InternalConfig    *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	authUsecase contracts.AuthUsecase,
	permissionService contracts.PermissionService,
	referenceUsecase contracts.ReferenceUsecase,
	redisRepository contracts.RedisRepository,
	lockService contracts.LockerService,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:               logger,
		AuthUsecase:       authUsecase,
		PermissionService: permissionService,
		ReferenceUsecase:  referenceUsecase,
		RedisRepository:   redisRepository,
		LockService:       lockService,
		InternalConfig:    internalConfig,
	}
}
