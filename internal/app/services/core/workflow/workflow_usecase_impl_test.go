package workflow

import (
	"clinic-portal-service/internal/app/config"
	"clinic-portal-service/internal/app/contracts/mocks"
	"clinic-portal-service/internal/app/models"
	"clinic-portal-service/internal/app/services/shared/locker"
	"clinic-portal-service/internal/pkg/clinic_dto"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/dto/requests"
	"clinic-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const doctorID = 7

type workflowFixture struct {
	usecase      *workflowUsecase
	redis        *mocks.RedisRepository
	drafts       *workflowDraftRedisRepository
	appointments *mocks.AppointmentClinicClient
	testTypes    *mocks.TestTypeClinicClient
	testResults  *mocks.TestResultClinicClient
	regimens     *mocks.RegimenClinicClient
	components   *mocks.ComponentClinicClient
	treatments   *mocks.TreatmentClinicClient
	notifier     *mocks.TreatmentNotifier
	audit        *mocks.AuditService
}

func newWorkflowFixture() *workflowFixture {
	f := &workflowFixture{
		redis:        mocks.NewRedisRepository(),
		appointments: new(mocks.AppointmentClinicClient),
		testTypes:    new(mocks.TestTypeClinicClient),
		testResults:  new(mocks.TestResultClinicClient),
		regimens:     new(mocks.RegimenClinicClient),
		components:   new(mocks.ComponentClinicClient),
		treatments:   new(mocks.TreatmentClinicClient),
		notifier:     new(mocks.TreatmentNotifier),
		audit:        new(mocks.AuditService),
	}
	f.drafts = NewWorkflowDraftRedisRepository(f.redis, time.Hour).(*workflowDraftRedisRepository)
	internalConfig := &config.InternalConfig{
		Workflow: config.AppWorkflow{LockExpiredTimeInSeconds: 30},
	}
	f.usecase = NewWorkflowUsecase(
		f.drafts,
		locker.NewLockService(f.redis, zap.NewNop()),
		f.appointments,
		f.testTypes,
		f.testResults,
		f.regimens,
		f.components,
		f.treatments,
		f.notifier,
		f.audit,
		internalConfig,
		zap.NewNop(),
	).(*workflowUsecase)
	f.usecase.now = func() time.Time {
		return time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)
	}
	return f
}

func (f *workflowFixture) seed(t *testing.T, draft *models.WorkflowDraft) {
	t.Helper()
	require.NoError(t, f.drafts.Save(context.Background(), draft))
}

func (f *workflowFixture) stored(t *testing.T, workflowID string) *models.WorkflowDraft {
	t.Helper()
	draft, err := f.drafts.FindByID(context.Background(), workflowID)
	require.NoError(t, err)
	return draft
}

func doctorContext(userID int) context.Context {
	return models.ContextWithSession(context.Background(), &models.Session{
		SessionID: "s",
		Role:      constvars.RoleDoctor,
		User:      models.UserProfile{ID: userID},
	})
}

func readyDraft() *models.WorkflowDraft {
	return &models.WorkflowDraft{
		ID:            "wf-1",
		OwnerUserID:   doctorID,
		Step:          constvars.WorkflowStepTreatment,
		AppointmentID: 40,
		PatientID:     12,
		DoctorID:      doctorID,
		TestTypeID:    models.IntPtr(3),
		TestResultID:  models.IntPtr(55),
		RegimenID:     models.IntPtr(9),
		RegimenSource: constvars.RegimenModeStandard,
	}
}

func customError(t *testing.T, err error) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected custom error, got %v", err)
	return customErr
}

func TestStart(t *testing.T) {
	t.Run("seeds the draft from the appointment", func(t *testing.T) {
		f := newWorkflowFixture()
		f.appointments.On("FindByID", mock.Anything, 40).
			Return(&clinic_dto.Appointment{ID: 40, PatientID: 12, DoctorID: doctorID, TestTypeID: models.IntPtr(3)}, nil)

		workflow, err := f.usecase.Start(doctorContext(doctorID), &requests.StartWorkflow{AppointmentID: 40})

		require.NoError(t, err)
		assert.NotEmpty(t, workflow.ID)
		assert.Equal(t, constvars.WorkflowStepTestResult, workflow.Step)
		assert.Equal(t, constvars.RouteWorkflowTestResult, workflow.Next)
		assert.Equal(t, 12, workflow.PatientID)
		require.NotNil(t, workflow.TestTypeID)
		assert.Equal(t, 3, *workflow.TestTypeID)

		draft := f.stored(t, workflow.ID)
		require.NotNil(t, draft)
		assert.Equal(t, doctorID, draft.OwnerUserID)
	})

	t.Run("other doctor's appointment is hidden", func(t *testing.T) {
		f := newWorkflowFixture()
		f.appointments.On("FindByID", mock.Anything, 40).
			Return(&clinic_dto.Appointment{ID: 40, DoctorID: 8}, nil)

		_, err := f.usecase.Start(doctorContext(doctorID), &requests.StartWorkflow{AppointmentID: 40})

		assert.Equal(t, constvars.StatusNotFound, customError(t, err).StatusCode)
		assert.Zero(t, f.redis.Len())
	})

	t.Run("only doctors run the workflow", func(t *testing.T) {
		f := newWorkflowFixture()
		for _, role := range []string{constvars.RoleAdmin, constvars.RoleManager, constvars.RoleStaff, constvars.RolePatient} {
			ctx := models.ContextWithSession(context.Background(), &models.Session{
				SessionID: "s",
				Role:      role,
				User:      models.UserProfile{ID: 1},
			})

			_, err := f.usecase.Start(ctx, &requests.StartWorkflow{AppointmentID: 40})

			assert.Equal(t, constvars.StatusForbidden, customError(t, err).StatusCode, role)
		}
		f.appointments.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		assert.Zero(t, f.redis.Len())
	})

	t.Run("session required", func(t *testing.T) {
		f := newWorkflowFixture()

		_, err := f.usecase.Start(context.Background(), &requests.StartWorkflow{AppointmentID: 40})

		assert.Equal(t, constvars.StatusUnauthorized, customError(t, err).StatusCode)
		f.appointments.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestGet(t *testing.T) {
	f := newWorkflowFixture()
	f.seed(t, readyDraft())

	t.Run("owner resumes", func(t *testing.T) {
		workflow, err := f.usecase.Get(doctorContext(doctorID), "wf-1")

		require.NoError(t, err)
		assert.Equal(t, constvars.WorkflowStepTreatment, workflow.Step)
		assert.Equal(t, constvars.RouteWorkflowTreatment, workflow.Next)
	})

	t.Run("someone else is refused", func(t *testing.T) {
		_, err := f.usecase.Get(doctorContext(99), "wf-1")

		assert.Equal(t, constvars.StatusForbidden, customError(t, err).StatusCode)
	})

	t.Run("unknown draft", func(t *testing.T) {
		_, err := f.usecase.Get(doctorContext(doctorID), "missing")

		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, constvars.RouteDoctorAppointments, customErr.RedirectTo)
	})
}

func TestRecordTestResult(t *testing.T) {
	newDraft := func() *models.WorkflowDraft {
		return &models.WorkflowDraft{
			ID:            "wf-2",
			OwnerUserID:   doctorID,
			Step:          constvars.WorkflowStepTestResult,
			AppointmentID: 40,
			PatientID:     12,
			DoctorID:      doctorID,
		}
	}

	t.Run("appointment test type wins", func(t *testing.T) {
		f := newWorkflowFixture()
		f.seed(t, newDraft())
		f.appointments.On("FindByID", mock.Anything, 40).
			Return(&clinic_dto.Appointment{ID: 40, TestTypeID: models.IntPtr(3)}, nil)
		f.testTypes.On("FindByID", mock.Anything, 3).Return(&clinic_dto.TestType{ID: 3, IsActive: true}, nil)
		var sent *clinic_dto.TestResult
		f.testResults.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(1).(*clinic_dto.TestResult) }).
			Return(&clinic_dto.TestResult{ID: 55}, nil)

		workflow, err := f.usecase.RecordTestResult(doctorContext(doctorID), "wf-2", &requests.RecordTestResult{
			ResultValue: "450 cells/mm3",
			TestTypeID:  models.IntPtr(4),
		})

		require.NoError(t, err)
		require.NotNil(t, sent)
		assert.Equal(t, 3, sent.TestTypeID)
		assert.Equal(t, 12, sent.PatientID)
		assert.Equal(t, "2025-06-01", sent.TestDate)
		assert.Equal(t, constvars.WorkflowStepRegimen, workflow.Step)
		require.NotNil(t, workflow.TestResultID)
		assert.Equal(t, 55, *workflow.TestResultID)
		f.testTypes.AssertNotCalled(t, "FindByID", mock.Anything, 4)
	})

	t.Run("request test type used as fallback", func(t *testing.T) {
		f := newWorkflowFixture()
		f.seed(t, newDraft())
		f.appointments.On("FindByID", mock.Anything, 40).Return(&clinic_dto.Appointment{ID: 40}, nil)
		f.testTypes.On("FindByID", mock.Anything, 4).Return(&clinic_dto.TestType{ID: 4}, nil)
		f.testResults.On("Create", mock.Anything, mock.Anything).Return(&clinic_dto.TestResult{ID: 56}, nil)

		workflow, err := f.usecase.RecordTestResult(doctorContext(doctorID), "wf-2", &requests.RecordTestResult{
			ResultValue: "negative",
			TestTypeID:  models.IntPtr(4),
		})

		require.NoError(t, err)
		assert.Equal(t, 4, *workflow.TestTypeID)
	})

	t.Run("no test type anywhere", func(t *testing.T) {
		f := newWorkflowFixture()
		f.seed(t, newDraft())
		f.appointments.On("FindByID", mock.Anything, 40).Return(&clinic_dto.Appointment{ID: 40}, nil)

		_, err := f.usecase.RecordTestResult(doctorContext(doctorID), "wf-2", &requests.RecordTestResult{ResultValue: "x"})

		assert.Equal(t, constvars.StatusBadRequest, customError(t, err).StatusCode)
		f.testResults.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("recorded result is kept on a second submit", func(t *testing.T) {
		f := newWorkflowFixture()
		f.seed(t, readyDraft())

		workflow, err := f.usecase.RecordTestResult(doctorContext(doctorID), "wf-1", &requests.RecordTestResult{ResultValue: "again"})

		require.NoError(t, err)
		assert.Equal(t, constvars.WorkflowStepTreatment, workflow.Step)
		require.NotNil(t, workflow.TestResultID)
		assert.Equal(t, 55, *workflow.TestResultID)
		f.testResults.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.appointments.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)

		draft := f.stored(t, "wf-1")
		assert.Equal(t, constvars.WorkflowStepTreatment, draft.Step)
		require.NotNil(t, draft.RegimenID)
		assert.Equal(t, 9, *draft.RegimenID)
	})

	t.Run("completed draft is closed", func(t *testing.T) {
		f := newWorkflowFixture()
		draft := readyDraft()
		draft.Step = constvars.WorkflowStepCompleted
		draft.TreatmentID = models.IntPtr(70)
		f.seed(t, draft)

		_, err := f.usecase.RecordTestResult(doctorContext(doctorID), "wf-1", &requests.RecordTestResult{ResultValue: "x"})

		assert.Equal(t, constvars.StatusConflict, customError(t, err).StatusCode)
	})
}

func TestListRegimenChoices(t *testing.T) {
	f := newWorkflowFixture()
	f.seed(t, readyDraft())
	f.regimens.On("FindAll", mock.Anything).Return([]clinic_dto.Regimen{
		{ID: 1, RegimenType: constvars.RegimenTypeStandard, IsActive: true},
		{ID: 2, RegimenType: constvars.RegimenTypeStandard, IsActive: false},
		{ID: 3, RegimenType: constvars.RegimenTypeCustomized, IsActive: true},
	}, nil)
	f.components.On("FindAll", mock.Anything).Return([]clinic_dto.Component{
		{ID: 10, IsActive: true},
		{ID: 11, IsActive: false},
	}, nil)

	regimens, err := f.usecase.ListStandardRegimens(doctorContext(doctorID), "wf-1")
	require.NoError(t, err)
	require.Len(t, regimens, 1)
	assert.Equal(t, 1, regimens[0].ID)

	components, err := f.usecase.ListActiveComponents(doctorContext(doctorID), "wf-1")
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, 10, components[0].ID)
}

func TestSelectRegimen(t *testing.T) {
	newDraft := func() *models.WorkflowDraft {
		draft := readyDraft()
		draft.Step = constvars.WorkflowStepRegimen
		draft.RegimenID = nil
		draft.RegimenSource = ""
		return draft
	}

	t.Run("standard regimen", func(t *testing.T) {
		f := newWorkflowFixture()
		f.seed(t, newDraft())
		f.regimens.On("FindByID", mock.Anything, 1).
			Return(&clinic_dto.Regimen{ID: 1, RegimenType: constvars.RegimenTypeStandard, IsActive: true}, nil)

		workflow, err := f.usecase.SelectRegimen(doctorContext(doctorID), "wf-1", &requests.SelectRegimen{
			Mode:      constvars.RegimenModeStandard,
			RegimenID: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, *workflow.RegimenID)
		assert.Equal(t, constvars.WorkflowStepTreatment, workflow.Step)
		assert.Equal(t, constvars.RegimenModeStandard, workflow.RegimenSource)
	})

	t.Run("customized regimen is not a standard pick", func(t *testing.T) {
		f := newWorkflowFixture()
		f.seed(t, newDraft())
		f.regimens.On("FindByID", mock.Anything, 3).
			Return(&clinic_dto.Regimen{ID: 3, RegimenType: constvars.RegimenTypeCustomized, IsActive: true}, nil)

		_, err := f.usecase.SelectRegimen(doctorContext(doctorID), "wf-1", &requests.SelectRegimen{
			Mode:      constvars.RegimenModeStandard,
			RegimenID: 3,
		})

		assert.Equal(t, constvars.StatusBadRequest, customError(t, err).StatusCode)
		assert.Nil(t, f.stored(t, "wf-1").RegimenID)
	})

	t.Run("custom regimen from active components", func(t *testing.T) {
		f := newWorkflowFixture()
		f.seed(t, newDraft())
		f.components.On("FindAll", mock.Anything).Return([]clinic_dto.Component{
			{ID: 10, IsActive: true},
			{ID: 11, IsActive: true},
		}, nil)
		var sent *clinic_dto.Regimen
		f.regimens.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(1).(*clinic_dto.Regimen) }).
			Return(&clinic_dto.Regimen{ID: 21}, nil)

		workflow, err := f.usecase.SelectRegimen(doctorContext(doctorID), "wf-1", &requests.SelectRegimen{
			Mode:         constvars.RegimenModeCustom,
			ComponentIDs: []int{10, 11},
			Description:  "d",
			SideEffects:  "s",
			Usage:        "u",
			Frequency:    "daily",
		})

		require.NoError(t, err)
		assert.Equal(t, 21, *workflow.RegimenID)
		require.NotNil(t, sent)
		assert.Equal(t, constvars.RegimenTypeCustomized, sent.RegimenType)
		assert.Equal(t, []int{10, 11}, sent.ComponentIDs())
		assert.Nil(t, sent.ComponentID3)
		require.NotNil(t, sent.PatientID)
		assert.Equal(t, 12, *sent.PatientID)
		assert.True(t, sent.IsActive)
	})

	t.Run("inactive component rejected", func(t *testing.T) {
		f := newWorkflowFixture()
		f.seed(t, newDraft())
		f.components.On("FindAll", mock.Anything).Return([]clinic_dto.Component{
			{ID: 10, IsActive: true},
			{ID: 11, IsActive: false},
		}, nil)

		_, err := f.usecase.SelectRegimen(doctorContext(doctorID), "wf-1", &requests.SelectRegimen{
			Mode:         constvars.RegimenModeCustom,
			ComponentIDs: []int{10, 11},
		})

		assert.Equal(t, constvars.StatusBadRequest, customError(t, err).StatusCode)
		f.regimens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("custom regimen needs components", func(t *testing.T) {
		f := newWorkflowFixture()
		f.seed(t, newDraft())

		_, err := f.usecase.SelectRegimen(doctorContext(doctorID), "wf-1", &requests.SelectRegimen{
			Mode: constvars.RegimenModeCustom,
		})

		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Contains(t, customErr.FieldErrors, "componentIds")
	})

	t.Run("missing test result sends the doctor back", func(t *testing.T) {
		f := newWorkflowFixture()
		draft := newDraft()
		draft.TestResultID = nil
		f.seed(t, draft)

		_, err := f.usecase.SelectRegimen(doctorContext(doctorID), "wf-1", &requests.SelectRegimen{
			Mode:      constvars.RegimenModeStandard,
			RegimenID: 1,
		})

		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.RouteWorkflowTestResult, customErr.BackTo)
		f.regimens.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestCreateTreatment(t *testing.T) {
	validRequest := &requests.CreateTreatment{StartDate: "2025-06-02", EndDate: "2025-07-02"}

	t.Run("missing carry-state makes no backend call", func(t *testing.T) {
		f := newWorkflowFixture()
		draft := readyDraft()
		draft.RegimenID = nil
		f.seed(t, draft)

		_, err := f.usecase.CreateTreatment(doctorContext(doctorID), "wf-1", validRequest)

		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.RouteWorkflowRegimen, customErr.BackTo)
		f.treatments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("carry-state is reported before the form", func(t *testing.T) {
		f := newWorkflowFixture()
		draft := readyDraft()
		draft.TestResultID = nil
		f.seed(t, draft)

		_, err := f.usecase.CreateTreatment(doctorContext(doctorID), "wf-1", &requests.CreateTreatment{})

		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.RouteWorkflowTestResult, customErr.BackTo)
		f.treatments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("malformed dates on a complete draft", func(t *testing.T) {
		f := newWorkflowFixture()
		f.seed(t, readyDraft())

		_, err := f.usecase.CreateTreatment(doctorContext(doctorID), "wf-1", &requests.CreateTreatment{StartDate: "02/06/2025", EndDate: "2025-07-02"})

		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Contains(t, customErr.FieldErrors, "startDate")
		f.treatments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("dates are checked before sending", func(t *testing.T) {
		cases := []struct {
			name  string
			start string
			end   string
			field string
		}{
			{name: "start today", start: "2025-06-01", end: "2025-06-10", field: "startDate"},
			{name: "start in the past", start: "2025-05-20", end: "2025-06-10", field: "startDate"},
			{name: "end equals start", start: "2025-06-05", end: "2025-06-05", field: "endDate"},
			{name: "end before start", start: "2025-06-05", end: "2025-06-04", field: "endDate"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newWorkflowFixture()
				f.seed(t, readyDraft())

				_, err := f.usecase.CreateTreatment(doctorContext(doctorID), "wf-1", &requests.CreateTreatment{StartDate: tc.start, EndDate: tc.end})

				customErr := customError(t, err)
				assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
				assert.Contains(t, customErr.FieldErrors, tc.field)
				f.treatments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("completes the wizard", func(t *testing.T) {
		f := newWorkflowFixture()
		f.seed(t, readyDraft())
		var sent *clinic_dto.Treatment
		f.treatments.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(1).(*clinic_dto.Treatment) }).
			Return(&clinic_dto.Treatment{ID: 70, RegimenID: 9, PatientID: 12}, nil).Once()
		f.notifier.On("NotifyTreatmentCreated", mock.Anything, mock.Anything).Return(nil)
		f.appointments.On("FindByID", mock.Anything, 40).
			Return(&clinic_dto.Appointment{ID: 40, Status: constvars.AppointmentStatusConfirmed}, nil)
		var updated *clinic_dto.Appointment
		f.appointments.On("Update", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { updated = args.Get(1).(*clinic_dto.Appointment) }).
			Return(&clinic_dto.Appointment{ID: 40}, nil)

		workflow, err := f.usecase.CreateTreatment(doctorContext(doctorID), "wf-1", validRequest)

		require.NoError(t, err)
		require.NotNil(t, sent)
		assert.Equal(t, 55, sent.TestResultID)
		assert.Equal(t, 9, sent.RegimenID)
		assert.Equal(t, constvars.TreatmentStatusInProgress, sent.Status)
		assert.Equal(t, 70, *workflow.TreatmentID)
		assert.Equal(t, constvars.WorkflowStepCompleted, workflow.Step)
		assert.Equal(t, constvars.RouteDoctorAppointments, workflow.Next)
		assert.Empty(t, workflow.Warnings)
		require.NotNil(t, updated)
		assert.Equal(t, constvars.AppointmentStatusCompleted, updated.Status)
		assert.Equal(t, []string{constvars.AuditActionTreatmentCreate}, f.audit.Recorded())
		assert.False(t, f.redis.Has(fmt.Sprintf(constvars.RedisKeyWorkflowLockFormat, "wf-1")))

		again, err := f.usecase.CreateTreatment(doctorContext(doctorID), "wf-1", validRequest)
		require.NoError(t, err)
		assert.Equal(t, 70, *again.TreatmentID)
		f.treatments.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("notification and appointment failures do not fail the treatment", func(t *testing.T) {
		f := newWorkflowFixture()
		f.seed(t, readyDraft())
		f.treatments.On("Create", mock.Anything, mock.Anything).Return(&clinic_dto.Treatment{ID: 71}, nil)
		f.notifier.On("NotifyTreatmentCreated", mock.Anything, mock.Anything).Return(errors.New("broker down"))
		f.appointments.On("FindByID", mock.Anything, 40).Return(nil, errors.New("backend down"))

		workflow, err := f.usecase.CreateTreatment(doctorContext(doctorID), "wf-1", validRequest)

		require.NoError(t, err)
		assert.Equal(t, 71, *workflow.TreatmentID)
		assert.Equal(t, constvars.WorkflowStepCompleted, workflow.Step)
		assert.Equal(t, []string{constvars.WarningAppointmentStatusFailed}, workflow.Warnings)
		f.notifier.AssertExpectations(t)
	})

	t.Run("concurrent submission is refused", func(t *testing.T) {
		f := newWorkflowFixture()
		f.seed(t, readyDraft())
		lockKey := fmt.Sprintf(constvars.RedisKeyWorkflowLockFormat, "wf-1")
		acquired, _, err := f.usecase.LockService.TryLock(context.Background(), lockKey, time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		_, err = f.usecase.CreateTreatment(doctorContext(doctorID), "wf-1", validRequest)

		assert.Equal(t, constvars.StatusConflict, customError(t, err).StatusCode)
		f.treatments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("backend failure keeps the draft open", func(t *testing.T) {
		f := newWorkflowFixture()
		f.seed(t, readyDraft())
		f.treatments.On("Create", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrClinicApiRequestFailed(errors.New("boom"), constvars.ResourceTreatment, 500, "server error"))

		_, err := f.usecase.CreateTreatment(doctorContext(doctorID), "wf-1", validRequest)

		require.Error(t, err)
		draft := f.stored(t, "wf-1")
		assert.Nil(t, draft.TreatmentID)
		assert.Equal(t, constvars.WorkflowStepTreatment, draft.Step)
		f.notifier.AssertNotCalled(t, "NotifyTreatmentCreated", mock.Anything, mock.Anything)
	})
}

func TestAbandon(t *testing.T) {
	f := newWorkflowFixture()
	f.seed(t, readyDraft())

	err := f.usecase.Abandon(doctorContext(99), "wf-1")
	assert.Equal(t, constvars.StatusForbidden, customError(t, err).StatusCode)

	require.NoError(t, f.usecase.Abandon(doctorContext(doctorID), "wf-1"))
	assert.Nil(t, f.stored(t, "wf-1"))
}
