package controllers

import (
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/utils"
	"context"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const defaultAuditEventsLimit = 50

type AuditController struct {
	Log            *zap.Logger
	AuditService   contracts.AuditService
	RequestTimeout time.Duration
}

func NewAuditController(logger *zap.Logger, auditService contracts.AuditService, requestTimeout time.Duration) *AuditController {
	return &AuditController{
		Log:            logger,
		AuditService:   auditService,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *AuditController) FindRecent(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultAuditEventsLimit
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	events, err := ctrl.AuditService.FindRecent(ctx, limit)
	if err != nil {
		ctrl.Log.Error("AuditController.FindRecent error calling AuditService.FindRecent",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAuditEventsSuccess, events)
}
