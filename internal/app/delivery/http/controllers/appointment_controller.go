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

	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	RequestTimeout     time.Duration
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, requestTimeout time.Duration) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		RequestTimeout:     requestTimeout,
	}
}

func (ctrl *AppointmentController) SearchAvailableDoctors(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	request := &requests.SearchAvailableDoctors{
		Date: strings.TrimSpace(r.URL.Query().Get("date")),
		Time: strings.TrimSpace(r.URL.Query().Get("time")),
	}
	err := validate(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.SearchAvailableDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, request),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	doctors, err := ctrl.AppointmentUsecase.SearchAvailableDoctors(ctx, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.SearchAvailableDoctors error calling AppointmentUsecase.SearchAvailableDoctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.SearchAvailableDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(doctors)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchAvailableDoctorsSuccess, doctors)
}

func (ctrl *AppointmentController) Book(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	// Bind body to request
	request := new(requests.BookAppointment)
	err := decodeJSON(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	// Sanitize request
	utils.SanitizeBookAppointmentRequest(request)

	// Validate request
	err = validate(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.BookAppointment(ctx, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.Book error calling AppointmentUsecase.BookAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookAppointmentSuccess, appointment)
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	listQuery := utils.BuildListQuery(r)

	ctrl.Log.Info("AppointmentController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, listQuery),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	appointments, err := ctrl.AppointmentUsecase.FindAll(ctx, listQuery)
	if err != nil {
		ctrl.Log.Error("AppointmentController.FindAll error calling AppointmentUsecase.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	total := len(appointments)
	page := utils.Paginate(appointments, listQuery.Page, listQuery.PageSize)
	if listQuery.Page > 0 {
		pagination := utils.BuildPaginationResponse(total, listQuery.Page, listQuery.PageSize, r.URL.Path)
		utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetAppointmentSuccess, page, pagination)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccess, page)
}

func (ctrl *AppointmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := urlParamID(r, "appointmentID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.FindByID(ctx, appointmentID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccess, appointment)
}

func (ctrl *AppointmentController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	appointmentID, err := urlParamID(r, "appointmentID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateAppointmentStatus)
	err = decodeJSON(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.Status = strings.TrimSpace(request.Status)

	err = validate(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingDataKey, request.Status),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.UpdateStatus(ctx, appointmentID, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.UpdateStatus error calling AppointmentUsecase.UpdateStatus",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentSuccess, appointment)
}

func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	appointmentID, err := urlParamID(r, "appointmentID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.Cancel(ctx, appointmentID)
	if err != nil {
		ctrl.Log.Error("AppointmentController.Cancel error calling AppointmentUsecase.Cancel",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelAppointmentSuccess, appointment)
}
