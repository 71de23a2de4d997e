package appointments

import (
	"clinic-portal-service/internal/app/contracts/mocks"
	"clinic-portal-service/internal/app/models"
	"clinic-portal-service/internal/pkg/clinic_dto"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/dto/requests"
	"clinic-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type appointmentFixture struct {
	usecase      *appointmentUsecase
	appointments *mocks.AppointmentClinicClient
	doctors      *mocks.DoctorClinicClient
	audit        *mocks.AuditService
}

func newAppointmentFixture() *appointmentFixture {
	appointments := new(mocks.AppointmentClinicClient)
	doctors := new(mocks.DoctorClinicClient)
	audit := new(mocks.AuditService)
	usecase := NewAppointmentUsecase(appointments, doctors, audit, zap.NewNop()).(*appointmentUsecase)
	usecase.now = func() time.Time {
		return time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)
	}
	return &appointmentFixture{usecase: usecase, appointments: appointments, doctors: doctors, audit: audit}
}

func contextAs(role string, userID int) context.Context {
	return models.ContextWithSession(context.Background(), &models.Session{
		SessionID: "s",
		Role:      role,
		User:      models.UserProfile{ID: userID},
	})
}

func customStatus(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr.StatusCode
}

func TestBookAppointment(t *testing.T) {
	t.Run("consultation payload", func(t *testing.T) {
		f := newAppointmentFixture()
		var sent *clinic_dto.Appointment
		f.appointments.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(1).(*clinic_dto.Appointment) }).
			Return(&clinic_dto.Appointment{ID: 31, DoctorID: 7, PatientID: 12}, nil)

		testType := 3
		created, err := f.usecase.BookAppointment(contextAs(constvars.RolePatient, 12), &requests.BookAppointment{
			AppointmentDate: "2025-06-10",
			AppointmentTime: "08:00",
			DoctorID:        7,
			AppointmentType: constvars.AppointmentTypeConsultation,
			TestTypeID:      &testType,
			PatientID:       99,
		})

		require.NoError(t, err)
		assert.Equal(t, 31, created.ID)
		require.NotNil(t, sent)
		assert.Equal(t, "2025-06-10", sent.AppointmentDate)
		assert.Equal(t, "08:00:00", sent.AppointmentTime)
		assert.Equal(t, 7, sent.DoctorID)
		assert.Nil(t, sent.TestTypeID)
		assert.Equal(t, constvars.AppointmentStatusPending, sent.Status)
		assert.Equal(t, 12, sent.PatientID)
		assert.Equal(t, []string{constvars.AuditActionCreate}, f.audit.Recorded())
	})

	t.Run("medication keeps the test type", func(t *testing.T) {
		f := newAppointmentFixture()
		var sent *clinic_dto.Appointment
		f.appointments.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(1).(*clinic_dto.Appointment) }).
			Return(&clinic_dto.Appointment{ID: 32}, nil)

		testType := 3
		_, err := f.usecase.BookAppointment(contextAs(constvars.RoleStaff, 2), &requests.BookAppointment{
			AppointmentDate: "2025-06-10",
			AppointmentTime: "10:30",
			DoctorID:        7,
			AppointmentType: constvars.AppointmentTypeMedication,
			TestTypeID:      &testType,
			PatientID:       44,
		})

		require.NoError(t, err)
		require.NotNil(t, sent.TestTypeID)
		assert.Equal(t, 3, *sent.TestTypeID)
		assert.Equal(t, 44, sent.PatientID)
	})

	t.Run("medication without test type is rejected before any request", func(t *testing.T) {
		f := newAppointmentFixture()

		_, err := f.usecase.BookAppointment(contextAs(constvars.RolePatient, 12), &requests.BookAppointment{
			AppointmentDate: "2025-06-10",
			AppointmentTime: "08:00",
			DoctorID:        7,
			AppointmentType: constvars.AppointmentTypeMedication,
		})

		assert.Equal(t, constvars.StatusBadRequest, customStatus(t, err))
		f.appointments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("staff must name the patient", func(t *testing.T) {
		f := newAppointmentFixture()

		_, err := f.usecase.BookAppointment(contextAs(constvars.RoleStaff, 2), &requests.BookAppointment{
			AppointmentDate: "2025-06-10",
			AppointmentTime: "08:00",
			DoctorID:        7,
			AppointmentType: constvars.AppointmentTypeConsultation,
		})

		assert.Equal(t, constvars.StatusBadRequest, customStatus(t, err))
		f.appointments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("slot in the past is rejected", func(t *testing.T) {
		f := newAppointmentFixture()

		_, err := f.usecase.BookAppointment(contextAs(constvars.RolePatient, 12), &requests.BookAppointment{
			AppointmentDate: "2025-06-01",
			AppointmentTime: "09:00",
			DoctorID:        7,
			AppointmentType: constvars.AppointmentTypeConsultation,
		})

		assert.Equal(t, constvars.StatusBadRequest, customStatus(t, err))
		f.appointments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestSearchAvailableDoctors(t *testing.T) {
	t.Run("queries with normalized time", func(t *testing.T) {
		f := newAppointmentFixture()
		f.doctors.On("FindAvailable", mock.Anything, "2025-06-10", "08:00:00").
			Return([]clinic_dto.Doctor{{ID: 7, FullName: "Dr. Ana"}}, nil)

		doctors, err := f.usecase.SearchAvailableDoctors(contextAs(constvars.RolePatient, 12), &requests.SearchAvailableDoctors{Date: "2025-06-10", Time: "08:00"})

		require.NoError(t, err)
		assert.Len(t, doctors, 1)
	})

	t.Run("past slot never reaches the backend", func(t *testing.T) {
		f := newAppointmentFixture()

		_, err := f.usecase.SearchAvailableDoctors(contextAs(constvars.RolePatient, 12), &requests.SearchAvailableDoctors{Date: "2025-05-31", Time: "08:00"})

		assert.Error(t, err)
		f.doctors.AssertNotCalled(t, "FindAvailable", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFindAllAppointments(t *testing.T) {
	all := []clinic_dto.Appointment{
		{ID: 1, PatientID: 12, DoctorID: 7, Status: "Pending", DoctorName: "Dr. Ana"},
		{ID: 2, PatientID: 13, DoctorID: 7, Status: "Confirmed", DoctorName: "Dr. Ana"},
		{ID: 3, PatientID: 12, DoctorID: 8, Status: "Completed", DoctorName: "Dr. Bo"},
	}

	t.Run("patients only see their own", func(t *testing.T) {
		f := newAppointmentFixture()
		f.appointments.On("FindAll", mock.Anything, mock.Anything).Return(all, nil)

		result, err := f.usecase.FindAll(contextAs(constvars.RolePatient, 12), &requests.ListQuery{})

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("doctors only see their own", func(t *testing.T) {
		f := newAppointmentFixture()
		f.appointments.On("FindAll", mock.Anything, mock.Anything).Return(all, nil)

		result, err := f.usecase.FindAll(contextAs(constvars.RoleDoctor, 7), &requests.ListQuery{})

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("staff see everything and can filter", func(t *testing.T) {
		f := newAppointmentFixture()
		f.appointments.On("FindAll", mock.Anything, mock.Anything).Return(all, nil)

		result, err := f.usecase.FindAll(contextAs(constvars.RoleStaff, 1), &requests.ListQuery{Q: "dr. bo"})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, 3, result[0].ID)
	})
}

func TestCancelAppointment(t *testing.T) {
	t.Run("cancel is a status update", func(t *testing.T) {
		f := newAppointmentFixture()
		f.appointments.On("FindByID", mock.Anything, 1).Return(&clinic_dto.Appointment{ID: 1, PatientID: 12, Status: "Pending"}, nil)
		f.appointments.On("Update", mock.Anything, mock.MatchedBy(func(a *clinic_dto.Appointment) bool {
			return a.ID == 1 && a.Status == constvars.AppointmentStatusCancelled
		})).Return(&clinic_dto.Appointment{ID: 1, Status: constvars.AppointmentStatusCancelled}, nil)

		updated, err := f.usecase.Cancel(contextAs(constvars.RolePatient, 12), 1)

		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, updated.Status)
	})

	t.Run("someone else's appointment is not found", func(t *testing.T) {
		f := newAppointmentFixture()
		f.appointments.On("FindByID", mock.Anything, 2).Return(&clinic_dto.Appointment{ID: 2, PatientID: 13}, nil)

		_, err := f.usecase.Cancel(contextAs(constvars.RolePatient, 12), 2)

		assert.Equal(t, constvars.StatusNotFound, customStatus(t, err))
		f.appointments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
