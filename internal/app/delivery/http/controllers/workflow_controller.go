package controllers

import (
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/dto/requests"
	"clinic-portal-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WorkflowController struct {
	Log             *zap.Logger
	WorkflowUsecase contracts.WorkflowUsecase
	RequestTimeout  time.Duration
}

func NewWorkflowController(logger *zap.Logger, workflowUsecase contracts.WorkflowUsecase, requestTimeout time.Duration) *WorkflowController {
	return &WorkflowController{
		Log:             logger,
		WorkflowUsecase: workflowUsecase,
		RequestTimeout:  requestTimeout,
	}
}

func (ctrl *WorkflowController) Start(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	request := new(requests.StartWorkflow)
	err := decodeJSON(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	err = validate(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	workflow, err := ctrl.WorkflowUsecase.Start(ctx, request)
	if err != nil {
		ctrl.Log.Error("WorkflowController.Start error calling WorkflowUsecase.Start",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.StartWorkflowSuccess, workflow)
}

func (ctrl *WorkflowController) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	workflow, err := ctrl.WorkflowUsecase.Get(ctx, workflowIDParam(r))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetWorkflowSuccess, workflow)
}

func (ctrl *WorkflowController) RecordTestResult(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	workflowID := workflowIDParam(r)

	request := new(requests.RecordTestResult)
	err := decodeJSON(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.ResultValue = strings.TrimSpace(request.ResultValue)
	request.Notes = strings.TrimSpace(request.Notes)

	err = validate(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	workflow, err := ctrl.WorkflowUsecase.RecordTestResult(ctx, workflowID, request)
	if err != nil {
		ctrl.Log.Error("WorkflowController.RecordTestResult error calling WorkflowUsecase.RecordTestResult",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWorkflowIDKey, workflowID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordTestResultSuccess, workflow)
}

func (ctrl *WorkflowController) ListStandardRegimens(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	regimens, err := ctrl.WorkflowUsecase.ListStandardRegimens(ctx, workflowIDParam(r))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetStandardRegimensSuccess, regimens)
}

func (ctrl *WorkflowController) ListActiveComponents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	components, err := ctrl.WorkflowUsecase.ListActiveComponents(ctx, workflowIDParam(r))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetActiveComponentsSuccess, components)
}

func (ctrl *WorkflowController) SelectRegimen(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	workflowID := workflowIDParam(r)

	request := new(requests.SelectRegimen)
	err := decodeJSON(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeSelectRegimenRequest(request)

	err = validate(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	workflow, err := ctrl.WorkflowUsecase.SelectRegimen(ctx, workflowID, request)
	if err != nil {
		ctrl.Log.Error("WorkflowController.SelectRegimen error calling WorkflowUsecase.SelectRegimen",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWorkflowIDKey, workflowID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SelectRegimenSuccess, workflow)
}

func (ctrl *WorkflowController) CreateTreatment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	workflowID := workflowIDParam(r)

	// validated by the usecase once the draft's carry-state is known good
	request := new(requests.CreateTreatment)
	err := decodeOptionalJSON(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeCreateTreatmentRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	workflow, err := ctrl.WorkflowUsecase.CreateTreatment(ctx, workflowID, request)
	if err != nil {
		ctrl.Log.Error("WorkflowController.CreateTreatment error calling WorkflowUsecase.CreateTreatment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWorkflowIDKey, workflowID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithWarnings(w, constvars.StatusCreated, constvars.CreateTreatmentSuccess, workflow, workflow.Warnings)
}

func (ctrl *WorkflowController) Abandon(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	err := ctrl.WorkflowUsecase.Abandon(ctx, workflowIDParam(r))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AbandonWorkflowSuccess, nil)
}

func workflowIDParam(r *http.Request) string {
	return chi.URLParam(r, "workflowID")
}
