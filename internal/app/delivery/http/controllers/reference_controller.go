package controllers

import (
	"clinic-portal-service/internal/app/config"
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/exceptions"
	"clinic-portal-service/internal/pkg/utils"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const certificateImageFormField = "image"

type ReferenceController struct {
	Log              *zap.Logger
	ReferenceUsecase contracts.ReferenceUsecase
	InternalConfig   *config.InternalConfig
	RequestTimeout   time.Duration
}

func NewReferenceController(logger *zap.Logger, referenceUsecase contracts.ReferenceUsecase, internalConfig *config.InternalConfig, requestTimeout time.Duration) *ReferenceController {
	return &ReferenceController{
		Log:              logger,
		ReferenceUsecase: referenceUsecase,
		InternalConfig:   internalConfig,
		RequestTimeout:   requestTimeout,
	}
}

func (ctrl *ReferenceController) List(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	resourceName := chi.URLParam(r, "resource")
	listQuery := utils.BuildListQuery(r)

	ctrl.Log.Info("ReferenceController.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicResourceKey, resourceName),
		zap.Any(constvars.LoggingQueryParamsKey, listQuery),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	records, total, err := ctrl.ReferenceUsecase.List(ctx, resourceName, listQuery)
	if err != nil {
		ctrl.Log.Error("ReferenceController.List error calling ReferenceUsecase.List",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	message := fmt.Sprintf(constvars.GetReferenceListSuccess, resourceName)
	if listQuery.Page > 0 {
		pagination := utils.BuildPaginationResponse(total, listQuery.Page, listQuery.PageSize, r.URL.Path)
		utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, message, records, pagination)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, records)
}

func (ctrl *ReferenceController) Get(w http.ResponseWriter, r *http.Request) {
	resourceName := chi.URLParam(r, "resource")
	id, err := urlParamID(r, "id")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	record, err := ctrl.ReferenceUsecase.Get(ctx, resourceName, id)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetReferenceSuccess, resourceName), record)
}

func (ctrl *ReferenceController) Create(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	resourceName := chi.URLParam(r, "resource")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	record, err := ctrl.ReferenceUsecase.Create(ctx, resourceName, body)
	if err != nil {
		ctrl.Log.Error("ReferenceController.Create error calling ReferenceUsecase.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClinicResourceKey, resourceName),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, fmt.Sprintf(constvars.CreateReferenceSuccess, resourceName), record)
}

func (ctrl *ReferenceController) Update(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	resourceName := chi.URLParam(r, "resource")
	id, err := urlParamID(r, "id")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	record, err := ctrl.ReferenceUsecase.Update(ctx, resourceName, id, body)
	if err != nil {
		ctrl.Log.Error("ReferenceController.Update error calling ReferenceUsecase.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClinicResourceKey, resourceName),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.UpdateReferenceSuccess, resourceName), record)
}

func (ctrl *ReferenceController) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	resourceName := chi.URLParam(r, "resource")
	id, err := urlParamID(r, "id")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	err = ctrl.ReferenceUsecase.Delete(ctx, resourceName, id)
	if err != nil {
		ctrl.Log.Error("ReferenceController.Delete error calling ReferenceUsecase.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClinicResourceKey, resourceName),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.DeleteReferenceSuccess, resourceName), nil)
}

func (ctrl *ReferenceController) UploadCertificateImage(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	certificateID, err := urlParamID(r, "id")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	maxBytes := ctrl.InternalConfig.Minio.CertificateMaxUploadSizeInMB * 1024 * 1024
	err = r.ParseMultipartForm(maxBytes)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile(certificateImageFormField)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}
	defer file.Close()

	ctrl.Log.Info("ReferenceController.UploadCertificateImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResourceIDKey, certificateID),
		zap.String(constvars.LoggingObjectNameKey, fileHeader.Filename),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	record, err := ctrl.ReferenceUsecase.UploadCertificateImage(ctx, certificateID, file, fileHeader)
	if err != nil {
		ctrl.Log.Error("ReferenceController.UploadCertificateImage error calling ReferenceUsecase.UploadCertificateImage",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadCertificateSuccess, record)
}
