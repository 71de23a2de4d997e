package workflow

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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	errDraftMissing        = errors.New("draft not found")
	errDraftOwner          = errors.New("draft owned by another user")
	errNotDoctor           = errors.New("workflow started by a non doctor session")
	errDraftCompleted      = errors.New("draft already completed")
	errDraftLocked         = errors.New("draft lock held")
	errStartDateNotFuture  = errors.New("start date is not after today")
	errEndDateBeforeStart  = errors.New("end date is not after start date")
	errAppointmentNoType   = errors.New("appointment has no test type")
	errRegimenNotStandard  = errors.New("regimen is not an active standard regimen")
	errComponentInactive   = errors.New("component is not active")
	errNoComponents        = errors.New("custom regimen without components")
	errSessionNotInContext = errors.New("no session in context")
)

type workflowUsecase struct {
	WorkflowDraftRepository contracts.WorkflowDraftRepository
	LockService             contracts.LockerService
	AppointmentClinicClient contracts.AppointmentClinicClient
	TestTypeClinicClient    contracts.TestTypeClinicClient
	TestResultClinicClient  contracts.TestResultClinicClient
	RegimenClinicClient     contracts.RegimenClinicClient
	ComponentClinicClient   contracts.ComponentClinicClient
	TreatmentClinicClient   contracts.TreatmentClinicClient
	TreatmentNotifier       contracts.TreatmentNotifier
	AuditService            contracts.AuditService
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger

	now func() time.Time
}

func NewWorkflowUsecase(
	workflowDraftRepository contracts.WorkflowDraftRepository,
	lockService contracts.LockerService,
	appointmentClinicClient contracts.AppointmentClinicClient,
	testTypeClinicClient contracts.TestTypeClinicClient,
	testResultClinicClient contracts.TestResultClinicClient,
	regimenClinicClient contracts.RegimenClinicClient,
	componentClinicClient contracts.ComponentClinicClient,
	treatmentClinicClient contracts.TreatmentClinicClient,
	treatmentNotifier contracts.TreatmentNotifier,
	auditService contracts.AuditService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.WorkflowUsecase {
	return &workflowUsecase{
		WorkflowDraftRepository: workflowDraftRepository,
		LockService:             lockService,
		AppointmentClinicClient: appointmentClinicClient,
		TestTypeClinicClient:    testTypeClinicClient,
		TestResultClinicClient:  testResultClinicClient,
		RegimenClinicClient:     regimenClinicClient,
		ComponentClinicClient:   componentClinicClient,
		TreatmentClinicClient:   treatmentClinicClient,
		TreatmentNotifier:       treatmentNotifier,
		AuditService:            auditService,
		InternalConfig:          internalConfig,
		Log:                     logger,
		now:                     time.Now,
	}
}

// Start opens a draft for an existing appointment. Booking happened earlier,
// so the draft begins at the test result step.
func (uc *workflowUsecase) Start(ctx context.Context, request *requests.StartWorkflow) (*responses.Workflow, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("workflowUsecase.Start called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	session, ok := models.SessionFromContext(ctx)
	if !ok {
		return nil, exceptions.ErrMissingSession(errSessionNotInContext)
	}
	if !session.IsDoctor() {
		uc.Log.Warn("workflowUsecase.Start rejected non doctor session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRoleKey, session.Role),
		)
		return nil, exceptions.ErrPermissionDenied(errNotDoctor, constvars.PermissionWorkflowRun, session.Role)
	}

	appointment, err := uc.AppointmentClinicClient.FindByID(ctx, request.AppointmentID)
	if err != nil {
		uc.Log.Error("workflowUsecase.Start error calling AppointmentClinicClient.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if appointment.DoctorID != session.User.ID {
		uc.Log.Warn("workflowUsecase.Start appointment assigned to another doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAppointmentIDKey, appointment.ID),
		)
		return nil, exceptions.ErrClinicApiNotFound(errDraftOwner, constvars.ResourceAppointment)
	}

	now := uc.now()
	draft := &models.WorkflowDraft{
		ID:            uuid.NewString(),
		OwnerUserID:   session.User.ID,
		Step:          constvars.WorkflowStepTestResult,
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		TestTypeID:    appointment.TestTypeID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.WorkflowDraftRepository.Save(ctx, draft)
	if err != nil {
		uc.Log.Error("workflowUsecase.Start error calling WorkflowDraftRepository.Save",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("workflowUsecase.Start succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkflowIDKey, draft.ID),
		zap.String(constvars.LoggingWorkflowStepKey, draft.Step),
	)
	return toWorkflowResponse(draft), nil
}

func (uc *workflowUsecase) Get(ctx context.Context, workflowID string) (*responses.Workflow, error) {
	draft, err := uc.loadOwnedDraft(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	return toWorkflowResponse(draft), nil
}

func (uc *workflowUsecase) RecordTestResult(ctx context.Context, workflowID string, request *requests.RecordTestResult) (*responses.Workflow, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("workflowUsecase.RecordTestResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkflowIDKey, workflowID),
	)

	draft, err := uc.loadOpenDraft(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	// the backend has no update for test results, a second submit keeps the first one
	if draft.TestResultID != nil {
		return toWorkflowResponse(draft), nil
	}

	appointment, err := uc.AppointmentClinicClient.FindByID(ctx, draft.AppointmentID)
	if err != nil {
		uc.Log.Error("workflowUsecase.RecordTestResult error calling AppointmentClinicClient.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// the appointment's own test type wins over the submitted one
	testTypeID := 0
	switch {
	case appointment.TestTypeID != nil && *appointment.TestTypeID > 0:
		testTypeID = *appointment.TestTypeID
	case request.TestTypeID != nil && *request.TestTypeID > 0:
		testTypeID = *request.TestTypeID
	default:
		return nil, exceptions.ErrAppointmentNoTestType(errAppointmentNoType, appointment.ID)
	}

	testType, err := uc.TestTypeClinicClient.FindByID(ctx, testTypeID)
	if err != nil {
		uc.Log.Error("workflowUsecase.RecordTestResult error calling TestTypeClinicClient.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	testResult, err := uc.TestResultClinicClient.Create(ctx, &clinic_dto.TestResult{
		AppointmentID: draft.AppointmentID,
		PatientID:     draft.PatientID,
		DoctorID:      draft.DoctorID,
		TestTypeID:    testType.ID,
		ResultValue:   request.ResultValue,
		Notes:         request.Notes,
		TestDate:      uc.now().Format(constvars.DateLayout),
	})
	if err != nil {
		uc.Log.Error("workflowUsecase.RecordTestResult error calling TestResultClinicClient.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	draft.TestTypeID = models.IntPtr(testType.ID)
	draft.TestResultID = models.IntPtr(testResult.ID)
	draft.Step = constvars.WorkflowStepRegimen
	err = uc.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("workflowUsecase.RecordTestResult succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkflowIDKey, workflowID),
		zap.Int(constvars.LoggingTestResultIDKey, testResult.ID),
	)
	return toWorkflowResponse(draft), nil
}

func (uc *workflowUsecase) ListStandardRegimens(ctx context.Context, workflowID string) ([]clinic_dto.Regimen, error) {
	requestID := utils.GetRequestID(ctx)

	_, err := uc.loadOwnedDraft(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	regimens, err := uc.RegimenClinicClient.FindAll(ctx)
	if err != nil {
		uc.Log.Error("workflowUsecase.ListStandardRegimens error calling RegimenClinicClient.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	standard := make([]clinic_dto.Regimen, 0, len(regimens))
	for _, regimen := range regimens {
		if isActiveStandard(&regimen) {
			standard = append(standard, regimen)
		}
	}
	return standard, nil
}

func (uc *workflowUsecase) ListActiveComponents(ctx context.Context, workflowID string) ([]clinic_dto.Component, error) {
	_, err := uc.loadOwnedDraft(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	return uc.activeComponents(ctx)
}

func (uc *workflowUsecase) SelectRegimen(ctx context.Context, workflowID string, request *requests.SelectRegimen) (*responses.Workflow, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("workflowUsecase.SelectRegimen called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkflowIDKey, workflowID),
		zap.String(constvars.LoggingDataKey, request.Mode),
	)

	draft, err := uc.loadOpenDraft(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	if draft.TestResultID == nil || *draft.TestResultID <= 0 {
		return nil, exceptions.ErrWorkflowMissingCarryState(nil, workflowID, "testResultId", constvars.ErrClientWorkflowMissingTestResult, constvars.RouteWorkflowTestResult)
	}

	var regimenID int
	switch request.Mode {
	case constvars.RegimenModeStandard:
		regimenID, err = uc.pickStandardRegimen(ctx, request.RegimenID)
	default:
		regimenID, err = uc.createCustomRegimen(ctx, draft, request)
	}
	if err != nil {
		return nil, err
	}

	draft.RegimenID = models.IntPtr(regimenID)
	draft.RegimenSource = request.Mode
	draft.Step = constvars.WorkflowStepTreatment
	err = uc.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("workflowUsecase.SelectRegimen succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkflowIDKey, workflowID),
		zap.Int(constvars.LoggingRegimenIDKey, regimenID),
	)
	return toWorkflowResponse(draft), nil
}

// CreateTreatment finishes the wizard. Everything that can be checked
// locally is checked before the first request leaves, carry-state first
// and the submitted form after it.
func (uc *workflowUsecase) CreateTreatment(ctx context.Context, workflowID string, request *requests.CreateTreatment) (*responses.Workflow, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("workflowUsecase.CreateTreatment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkflowIDKey, workflowID),
	)

	draft, err := uc.loadOwnedDraft(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	if draft.TreatmentID != nil {
		return toWorkflowResponse(draft), nil
	}

	if field, clientMessage, backTo, missing := draft.MissingCarryState(); missing {
		uc.Log.Warn("workflowUsecase.CreateTreatment draft misses carry-state",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWorkflowIDKey, workflowID),
			zap.String(constvars.LoggingDataKey, field),
		)
		return nil, exceptions.ErrWorkflowMissingCarryState(nil, workflowID, field, clientMessage, backTo)
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	err = uc.checkTreatmentDates(request.StartDate, request.EndDate)
	if err != nil {
		return nil, err
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyWorkflowLockFormat, workflowID)
	lockExpiration := time.Duration(uc.InternalConfig.Workflow.LockExpiredTimeInSeconds) * time.Second
	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, lockExpiration)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrWorkflowLocked(errDraftLocked, workflowID)
	}
	defer func() {
		unlockErr := uc.LockService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue)
		if unlockErr != nil {
			uc.Log.Error("workflowUsecase.CreateTreatment error calling LockService.Unlock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	// another submission may have finished while we waited for the lock
	draft, err = uc.loadOwnedDraft(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	if draft.TreatmentID != nil {
		return toWorkflowResponse(draft), nil
	}

	treatment, err := uc.TreatmentClinicClient.Create(ctx, &clinic_dto.Treatment{
		TestResultID:  *draft.TestResultID,
		RegimenID:     *draft.RegimenID,
		PatientID:     draft.PatientID,
		DoctorID:      draft.DoctorID,
		AppointmentID: draft.AppointmentID,
		StartDate:     request.StartDate,
		EndDate:       request.EndDate,
		Status:        constvars.TreatmentStatusInProgress,
		Notes:         request.Notes,
	})
	if err != nil {
		uc.Log.Error("workflowUsecase.CreateTreatment error calling TreatmentClinicClient.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	draft.TreatmentID = models.IntPtr(treatment.ID)
	err = uc.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	uc.AuditService.Record(ctx, constvars.AuditActionTreatmentCreate, constvars.ResourceTreatment, strconv.Itoa(treatment.ID), map[string]interface{}{
		"workflowId":    workflowID,
		"appointmentId": draft.AppointmentID,
		"regimenId":     treatment.RegimenID,
	})

	err = uc.TreatmentNotifier.NotifyTreatmentCreated(ctx, treatment)
	if err != nil {
		uc.Log.Warn("workflowUsecase.CreateTreatment notification failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingTreatmentIDKey, treatment.ID),
			zap.Error(err),
		)
	}

	err = uc.completeAppointment(ctx, draft.AppointmentID)
	if err != nil {
		uc.Log.Warn("workflowUsecase.CreateTreatment could not complete appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAppointmentIDKey, draft.AppointmentID),
			zap.Error(err),
		)
		draft.Warnings = append(draft.Warnings, constvars.WarningAppointmentStatusFailed)
	}

	draft.Step = constvars.WorkflowStepCompleted
	err = uc.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("workflowUsecase.CreateTreatment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkflowIDKey, workflowID),
		zap.Int(constvars.LoggingTreatmentIDKey, treatment.ID),
	)
	return toWorkflowResponse(draft), nil
}

func (uc *workflowUsecase) Abandon(ctx context.Context, workflowID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("workflowUsecase.Abandon called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkflowIDKey, workflowID),
	)

	_, err := uc.loadOwnedDraft(ctx, workflowID)
	if err != nil {
		return err
	}
	return uc.WorkflowDraftRepository.Delete(ctx, workflowID)
}

func (uc *workflowUsecase) loadOwnedDraft(ctx context.Context, workflowID string) (*models.WorkflowDraft, error) {
	session, ok := models.SessionFromContext(ctx)
	if !ok {
		return nil, exceptions.ErrMissingSession(errSessionNotInContext)
	}

	draft, err := uc.WorkflowDraftRepository.FindByID(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, exceptions.ErrWorkflowNotFound(errDraftMissing, workflowID)
	}
	if draft.OwnerUserID != session.User.ID {
		return nil, exceptions.ErrWorkflowNotOwner(errDraftOwner, workflowID)
	}
	return draft, nil
}

func (uc *workflowUsecase) loadOpenDraft(ctx context.Context, workflowID string) (*models.WorkflowDraft, error) {
	draft, err := uc.loadOwnedDraft(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	if draft.IsCompleted() || draft.TreatmentID != nil {
		return nil, exceptions.ErrWorkflowCompleted(errDraftCompleted, workflowID)
	}
	return draft, nil
}

func (uc *workflowUsecase) saveDraft(ctx context.Context, draft *models.WorkflowDraft) error {
	draft.UpdatedAt = uc.now()
	err := uc.WorkflowDraftRepository.Save(ctx, draft)
	if err != nil {
		uc.Log.Error("workflowUsecase.saveDraft error calling WorkflowDraftRepository.Save",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingWorkflowIDKey, draft.ID),
			zap.Error(err),
		)
	}
	return err
}

// checkTreatmentDates wants the start strictly after today and the end
// strictly after the start.
func (uc *workflowUsecase) checkTreatmentDates(startDate, endDate string) error {
	start, err := utils.ParseClinicDate(startDate)
	if err != nil {
		return exceptions.ErrCannotParseDate(err)
	}
	end, err := utils.ParseClinicDate(endDate)
	if err != nil {
		return exceptions.ErrCannotParseDate(err)
	}
	if !utils.IsAfterToday(start, uc.now()) {
		return exceptions.ErrTreatmentStartDate(errStartDateNotFuture)
	}
	if !end.After(start) {
		return exceptions.ErrTreatmentEndDate(errEndDateBeforeStart)
	}
	return nil
}

func (uc *workflowUsecase) pickStandardRegimen(ctx context.Context, regimenID int) (int, error) {
	regimen, err := uc.RegimenClinicClient.FindByID(ctx, regimenID)
	if err != nil {
		return 0, err
	}
	if !isActiveStandard(regimen) {
		return 0, exceptions.ErrRegimenNotStandard(errRegimenNotStandard, regimenID)
	}
	return regimen.ID, nil
}

func (uc *workflowUsecase) createCustomRegimen(ctx context.Context, draft *models.WorkflowDraft, request *requests.SelectRegimen) (int, error) {
	if len(request.ComponentIDs) == 0 {
		return 0, exceptions.ErrRegimenNoComponents(errNoComponents)
	}

	components, err := uc.activeComponents(ctx)
	if err != nil {
		return 0, err
	}
	active := make(map[int]struct{}, len(components))
	for _, component := range components {
		active[component.ID] = struct{}{}
	}
	for _, componentID := range request.ComponentIDs {
		if _, ok := active[componentID]; !ok {
			return 0, exceptions.ErrComponentNotActive(errComponentInactive, componentID)
		}
	}

	name := request.Name
	if name == "" {
		name = fmt.Sprintf("Customized regimen for patient %d", draft.PatientID)
	}
	regimen := &clinic_dto.Regimen{
		Name:        name,
		Description: request.Description,
		RegimenType: constvars.RegimenTypeCustomized,
		SideEffects: request.SideEffects,
		Usage:       request.Usage,
		Frequency:   request.Frequency,
		PatientID:   models.IntPtr(draft.PatientID),
		IsActive:    true,
	}
	regimen.SetComponentIDs(request.ComponentIDs)

	created, err := uc.RegimenClinicClient.Create(ctx, regimen)
	if err != nil {
		uc.Log.Error("workflowUsecase.createCustomRegimen error calling RegimenClinicClient.Create",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return 0, err
	}
	return created.ID, nil
}

func (uc *workflowUsecase) activeComponents(ctx context.Context) ([]clinic_dto.Component, error) {
	components, err := uc.ComponentClinicClient.FindAll(ctx)
	if err != nil {
		uc.Log.Error("workflowUsecase.activeComponents error calling ComponentClinicClient.FindAll",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	active := make([]clinic_dto.Component, 0, len(components))
	for _, component := range components {
		if component.IsActive {
			active = append(active, component)
		}
	}
	return active, nil
}

func (uc *workflowUsecase) completeAppointment(ctx context.Context, appointmentID int) error {
	appointment, err := uc.AppointmentClinicClient.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	appointment.Status = constvars.AppointmentStatusCompleted
	_, err = uc.AppointmentClinicClient.Update(ctx, appointment)
	return err
}

func isActiveStandard(regimen *clinic_dto.Regimen) bool {
	return regimen.IsActive && strings.EqualFold(regimen.RegimenType, constvars.RegimenTypeStandard)
}

func toWorkflowResponse(draft *models.WorkflowDraft) *responses.Workflow {
	return &responses.Workflow{
		ID:            draft.ID,
		Step:          draft.Step,
		AppointmentID: draft.AppointmentID,
		PatientID:     draft.PatientID,
		DoctorID:      draft.DoctorID,
		TestTypeID:    draft.TestTypeID,
		TestResultID:  draft.TestResultID,
		RegimenID:     draft.RegimenID,
		RegimenSource: draft.RegimenSource,
		TreatmentID:   draft.TreatmentID,
		Next:          draft.NextRoute(),
		Warnings:      draft.Warnings,
		CreatedAt:     draft.CreatedAt,
		UpdatedAt:     draft.UpdatedAt,
	}
}
