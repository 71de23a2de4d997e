package appointments

import (
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/app/models"
	"clinic-portal-service/internal/pkg/clinic_dto"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/dto/requests"
	"clinic-portal-service/internal/pkg/exceptions"
	"clinic-portal-service/internal/pkg/utils"
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	errSlotInPast           = errors.New(constvars.ErrDevSlotInPast)
	errTestTypeRequired     = errors.New(constvars.ErrDevTestTypeRequired)
	errPatientRequired      = errors.New(constvars.ErrDevPatientRequired)
	errAppointmentNotOwned  = errors.New("appointment belongs to another user")
	errSessionNotInContext  = errors.New(constvars.ErrDevMissingSession)
	appointmentFilterFields = []string{"appointmentDate", "status", "appointmentType", "doctorName", "patientName", "notes"}
)

type appointmentUsecase struct {
	AppointmentClinicClient contracts.AppointmentClinicClient
	DoctorClinicClient      contracts.DoctorClinicClient
	AuditService            contracts.AuditService
	Log                     *zap.Logger

	now func() time.Time
}

func NewAppointmentUsecase(
	appointmentClinicClient contracts.AppointmentClinicClient,
	doctorClinicClient contracts.DoctorClinicClient,
	auditService contracts.AuditService,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentClinicClient: appointmentClinicClient,
		DoctorClinicClient:      doctorClinicClient,
		AuditService:            auditService,
		Log:                     logger,
		now:                     time.Now,
	}
}

func (uc *appointmentUsecase) SearchAvailableDoctors(ctx context.Context, request *requests.SearchAvailableDoctors) ([]clinic_dto.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.SearchAvailableDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDataKey, request.Date+" "+request.Time),
	)

	clock, err := uc.futureSlot(request.Date, request.Time)
	if err != nil {
		return nil, err
	}

	doctors, err := uc.DoctorClinicClient.FindAvailable(ctx, request.Date, clock)
	if err != nil {
		uc.Log.Error("appointmentUsecase.SearchAvailableDoctors error calling DoctorClinicClient.FindAvailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.SearchAvailableDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordCountKey, len(doctors)),
	)
	return doctors, nil
}

func (uc *appointmentUsecase) BookAppointment(ctx context.Context, request *requests.BookAppointment) (*clinic_dto.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, ok := models.SessionFromContext(ctx)
	if !ok {
		return nil, exceptions.ErrMissingSession(errSessionNotInContext)
	}

	clock, err := uc.futureSlot(request.AppointmentDate, request.AppointmentTime)
	if err != nil {
		return nil, err
	}

	// consultations never carry a test type
	var testTypeID *int
	if request.AppointmentType == constvars.AppointmentTypeMedication {
		if request.TestTypeID == nil || *request.TestTypeID <= 0 {
			return nil, exceptions.ErrTestTypeRequired(errTestTypeRequired)
		}
		testTypeID = models.IntPtr(*request.TestTypeID)
	}

	patientID := request.PatientID
	if session.IsPatient() {
		patientID = session.User.ID
	} else if patientID <= 0 {
		return nil, exceptions.ErrPatientRequired(errPatientRequired)
	}

	payload := &clinic_dto.Appointment{
		AppointmentDate: request.AppointmentDate,
		AppointmentTime: clock,
		DoctorID:        request.DoctorID,
		PatientID:       patientID,
		TestTypeID:      testTypeID,
		Status:          constvars.AppointmentStatusPending,
		AppointmentType: request.AppointmentType,
		Notes:           request.Notes,
	}

	created, err := uc.AppointmentClinicClient.Create(ctx, payload)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error calling AppointmentClinicClient.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.AuditService.Record(ctx, constvars.AuditActionCreate, constvars.ResourceAppointment, strconv.Itoa(created.ID), map[string]interface{}{
		"doctorId":        created.DoctorID,
		"patientId":       created.PatientID,
		"appointmentType": created.AppointmentType,
	})

	uc.Log.Info("appointmentUsecase.BookAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, created.ID),
	)
	return created, nil
}

// FindAll narrows the list to the caller's own appointments unless the
// caller works in the back office.
func (uc *appointmentUsecase) FindAll(ctx context.Context, listQuery *requests.ListQuery) ([]clinic_dto.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, ok := models.SessionFromContext(ctx)
	if !ok {
		return nil, exceptions.ErrMissingSession(errSessionNotInContext)
	}

	query := url.Values{}
	if session.IsPatient() {
		query.Set("patientId", strconv.Itoa(session.User.ID))
	} else if session.IsDoctor() {
		query.Set("doctorId", strconv.Itoa(session.User.ID))
	}

	appointments, err := uc.AppointmentClinicClient.FindAll(ctx, query)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error calling AppointmentClinicClient.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	needle := ""
	if listQuery != nil {
		needle = strings.ToLower(strings.TrimSpace(listQuery.Q))
	}

	result := make([]clinic_dto.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if !ownsAppointment(session, &appointment) {
			continue
		}
		if needle != "" && !appointmentContains(&appointment, needle) {
			continue
		}
		result = append(result, appointment)
	}

	uc.Log.Info("appointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordCountKey, len(result)),
	)
	return result, nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, appointmentID int) (*clinic_dto.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	session, ok := models.SessionFromContext(ctx)
	if !ok {
		return nil, exceptions.ErrMissingSession(errSessionNotInContext)
	}

	appointment, err := uc.AppointmentClinicClient.FindByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindByID error calling AppointmentClinicClient.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if !ownsAppointment(session, appointment) {
		uc.Log.Warn("appointmentUsecase.FindByID appointment not owned by caller",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return nil, exceptions.ErrClinicApiNotFound(errAppointmentNotOwned, constvars.ResourceAppointment)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID int, request *requests.UpdateAppointmentStatus) (*clinic_dto.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingDataKey, request.Status),
	)

	appointment, err := uc.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	appointment.Status = request.Status
	updated, err := uc.AppointmentClinicClient.Update(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateStatus error calling AppointmentClinicClient.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.AuditService.Record(ctx, constvars.AuditActionUpdate, constvars.ResourceAppointment, strconv.Itoa(appointmentID), map[string]interface{}{
		"status": request.Status,
	})

	uc.Log.Info("appointmentUsecase.UpdateStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return updated, nil
}

// Cancel never deletes; the appointment stays with status Cancelled.
func (uc *appointmentUsecase) Cancel(ctx context.Context, appointmentID int) (*clinic_dto.Appointment, error) {
	return uc.UpdateStatus(ctx, appointmentID, &requests.UpdateAppointmentStatus{
		Status: constvars.AppointmentStatusCancelled,
	})
}

// futureSlot checks that date and clock form a slot strictly after now and
// returns the clock as HH:MM:SS.
func (uc *appointmentUsecase) futureSlot(date, clock string) (string, error) {
	slot, err := utils.CombineClinicSlot(date, clock)
	if err != nil {
		return "", exceptions.ErrCannotParseDate(err)
	}
	if !slot.After(uc.now()) {
		return "", exceptions.ErrSlotNotInFuture(errSlotInPast)
	}
	normalized, err := utils.NormalizeClinicTime(clock)
	if err != nil {
		return "", exceptions.ErrCannotParseDate(err)
	}
	return normalized, nil
}

func ownsAppointment(session *models.Session, appointment *clinic_dto.Appointment) bool {
	switch {
	case session.CanSeeAllAppointments():
		return true
	case session.IsPatient():
		return appointment.PatientID == session.User.ID
	case session.IsDoctor():
		return appointment.DoctorID == session.User.ID
	default:
		return false
	}
}

func appointmentContains(appointment *clinic_dto.Appointment, needle string) bool {
	record := map[string]interface{}{
		"appointmentDate": appointment.AppointmentDate,
		"status":          appointment.Status,
		"appointmentType": appointment.AppointmentType,
		"doctorName":      appointment.DoctorName,
		"patientName":     appointment.PatientName,
		"notes":           appointment.Notes,
	}
	return len(utils.FilterRecords([]map[string]interface{}{record}, appointmentFilterFields, needle, nil)) == 1
}
