package references

import (
	"bytes"
	"clinic-portal-service/internal/app/config"
	"clinic-portal-service/internal/app/contracts/mocks"
	"clinic-portal-service/internal/app/models"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/dto/requests"
	"clinic-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type referenceFixture struct {
	usecase *referenceUsecase
	records *mocks.RecordClinicClient
	storage *mocks.Storage
	audit   *mocks.AuditService
}

func newReferenceFixture() *referenceFixture {
	records := new(mocks.RecordClinicClient)
	storage := new(mocks.Storage)
	audit := new(mocks.AuditService)
	internalConfig := &config.InternalConfig{
		Minio: config.AppMinio{BucketName: "clinic", CertificateMaxUploadSizeInMB: 2},
	}
	usecase := NewReferenceUsecase(records, storage, audit, internalConfig, zap.NewNop()).(*referenceUsecase)
	return &referenceFixture{usecase: usecase, records: records, storage: storage, audit: audit}
}

func statusOf(t *testing.T, err error) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected custom error, got %v", err)
	return customErr
}

func patientContext(userID int) context.Context {
	return models.ContextWithSession(context.Background(), &models.Session{
		SessionID: "s",
		Role:      constvars.RolePatient,
		User:      models.UserProfile{ID: userID},
	})
}

func TestList(t *testing.T) {
	t.Run("substring filter and paging", func(t *testing.T) {
		f := newReferenceFixture()
		f.records.On("FindAll", mock.Anything, constvars.ResourceCategory).Return([]map[string]interface{}{
			{"id": float64(1), "name": "HIV Basics", "isActive": true},
			{"id": float64(2), "name": "Nutrition", "isActive": true},
			{"id": float64(3), "name": "hiv and pregnancy", "isActive": false},
			{"id": float64(4), "name": "Living with HIV", "isActive": true},
		}, nil)

		page, total, err := f.usecase.List(context.Background(), constvars.ReferenceCategories, &requests.ListQuery{Q: "HIV", Page: 1, PageSize: 2})

		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, page, 2)
		assert.Equal(t, float64(1), page[0]["id"])
		assert.Equal(t, float64(3), page[1]["id"])
	})

	t.Run("active flag", func(t *testing.T) {
		f := newReferenceFixture()
		f.records.On("FindAll", mock.Anything, constvars.ResourceComponent).Return([]map[string]interface{}{
			{"id": float64(1), "name": "Tenofovir", "isActive": true},
			{"id": float64(2), "name": "Nevirapine", "isActive": false},
		}, nil)
		inactive := false

		page, total, err := f.usecase.List(context.Background(), constvars.ReferenceComponents, &requests.ListQuery{Active: &inactive})

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "Nevirapine", page[0]["name"])
	})

	t.Run("regimen screen hides customized regimens", func(t *testing.T) {
		f := newReferenceFixture()
		f.records.On("FindAll", mock.Anything, constvars.ResourceRegimen).Return([]map[string]interface{}{
			{"id": float64(1), "name": "TLD", "regimenType": "Standard"},
			{"id": float64(2), "name": "Custom for 12", "regimenType": "Customized"},
		}, nil)

		page, total, err := f.usecase.List(context.Background(), constvars.ReferenceRegimens, &requests.ListQuery{})

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "TLD", page[0]["name"])
	})

	t.Run("patients only see their own results", func(t *testing.T) {
		f := newReferenceFixture()
		f.records.On("FindAll", mock.Anything, constvars.ResourceTestResult).Return([]map[string]interface{}{
			{"id": float64(1), "patientId": float64(12)},
			{"id": float64(2), "patientId": float64(13)},
		}, nil)

		page, total, err := f.usecase.List(patientContext(12), constvars.ReferenceTestResults, &requests.ListQuery{})

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, float64(1), page[0]["id"])
	})

	t.Run("unknown resource", func(t *testing.T) {
		f := newReferenceFixture()

		_, _, err := f.usecase.List(context.Background(), "invoices", &requests.ListQuery{})

		assert.Equal(t, constvars.StatusNotFound, statusOf(t, err).StatusCode)
	})
}

func TestGetHidesOtherPatientsRecords(t *testing.T) {
	f := newReferenceFixture()
	f.records.On("FindByID", mock.Anything, constvars.ResourceTreatment, 5).
		Return(map[string]interface{}{"id": float64(5), "patientId": float64(13)}, nil)

	_, err := f.usecase.Get(patientContext(12), constvars.ReferenceTreatments, 5)

	assert.Equal(t, constvars.StatusNotFound, statusOf(t, err).StatusCode)
}

func TestCreate(t *testing.T) {
	t.Run("validation errors stop the request", func(t *testing.T) {
		f := newReferenceFixture()

		_, err := f.usecase.Create(context.Background(), constvars.ReferenceCategories, []byte(`{"description":"no name"}`))

		customErr := statusOf(t, err)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Contains(t, customErr.FieldErrors, "name")
		f.records.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newReferenceFixture()

		_, err := f.usecase.Create(context.Background(), constvars.ReferenceCategories, []byte(`{`))

		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err).StatusCode)
	})

	t.Run("standard regimen with defaults", func(t *testing.T) {
		f := newReferenceFixture()
		var sent map[string]interface{}
		f.records.On("Create", mock.Anything, constvars.ResourceRegimen, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(2).(map[string]interface{}) }).
			Return(map[string]interface{}{"id": float64(30)}, nil)

		created, err := f.usecase.Create(context.Background(), constvars.ReferenceRegimens,
			[]byte(`{"name":"TLD","description":"first line","componentId1":1,"usage":"oral","frequency":"daily"}`))

		require.NoError(t, err)
		assert.Equal(t, float64(30), created["id"])
		assert.Equal(t, constvars.RegimenTypeStandard, sent["regimenType"])
		assert.Equal(t, true, sent["isActive"])
		assert.Equal(t, float64(1), sent["componentId1"])
		assert.Nil(t, sent["componentId2"])
		assert.Equal(t, []string{constvars.AuditActionCreate}, f.audit.Recorded())
	})

	t.Run("read only resource", func(t *testing.T) {
		f := newReferenceFixture()

		_, err := f.usecase.Create(context.Background(), constvars.ReferencePatients, []byte(`{}`))

		assert.Equal(t, constvars.StatusMethodNotAllowed, statusOf(t, err).StatusCode)
	})
}

func TestUpdateKeepsUnsentFields(t *testing.T) {
	f := newReferenceFixture()
	f.records.On("FindByID", mock.Anything, constvars.ResourceCertificate, 8).Return(map[string]interface{}{
		"id":       float64(8),
		"name":     "Old",
		"issuedBy": "Board",
		"imageUrl": "https://cdn.example.org/clinic/certificates/8/a.png",
		"isActive": true,
	}, nil)
	var sent map[string]interface{}
	f.records.On("Update", mock.Anything, constvars.ResourceCertificate, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(2).(map[string]interface{}) }).
		Return(nil, nil)

	_, err := f.usecase.Update(context.Background(), constvars.ReferenceCertificates, 8, []byte(`{"name":"New","issuedBy":"Board"}`))

	require.NoError(t, err)
	assert.Equal(t, "New", sent["name"])
	assert.Equal(t, 8, sent["id"])
	assert.Equal(t, "https://cdn.example.org/clinic/certificates/8/a.png", sent["imageUrl"])
	assert.Equal(t, true, sent["isActive"])
}

func TestDelete(t *testing.T) {
	t.Run("soft delete deactivates through update", func(t *testing.T) {
		f := newReferenceFixture()
		f.records.On("FindByID", mock.Anything, constvars.ResourceStaff, 4).
			Return(map[string]interface{}{"id": float64(4), "fullName": "Rita", "isActive": true}, nil)
		var sent map[string]interface{}
		f.records.On("Update", mock.Anything, constvars.ResourceStaff, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(2).(map[string]interface{}) }).
			Return(nil, nil)

		err := f.usecase.Delete(context.Background(), constvars.ReferenceStaff, 4)

		require.NoError(t, err)
		assert.Equal(t, false, sent["isActive"])
		assert.Equal(t, 4, sent["id"])
		assert.Equal(t, "Rita", sent["fullName"])
		f.records.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
		assert.Equal(t, []string{constvars.AuditActionSoftDelete}, f.audit.Recorded())
	})

	t.Run("customized regimen is hidden from the regimen screen", func(t *testing.T) {
		f := newReferenceFixture()
		f.records.On("FindByID", mock.Anything, constvars.ResourceRegimen, 2).
			Return(map[string]interface{}{"id": float64(2), "name": "Custom for 12", "regimenType": "Customized", "isActive": true}, nil)

		err := f.usecase.Delete(context.Background(), constvars.ReferenceRegimens, 2)

		assert.Equal(t, constvars.StatusNotFound, statusOf(t, err).StatusCode)
		f.records.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		f.records.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
		assert.Empty(t, f.audit.Recorded())
	})

	t.Run("work schedules are removed", func(t *testing.T) {
		f := newReferenceFixture()
		f.records.On("Delete", mock.Anything, constvars.ResourceWorkSchedule, 6).Return(nil)

		err := f.usecase.Delete(context.Background(), constvars.ReferenceWorkSchedules, 6)

		require.NoError(t, err)
		f.records.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		assert.Equal(t, []string{constvars.AuditActionHardDelete}, f.audit.Recorded())
	})

	t.Run("read only resource", func(t *testing.T) {
		f := newReferenceFixture()

		err := f.usecase.Delete(context.Background(), constvars.ReferenceTreatments, 1)

		assert.Equal(t, constvars.StatusMethodNotAllowed, statusOf(t, err).StatusCode)
	})
}

func TestUploadCertificateImage(t *testing.T) {
	header := func(name string, size int64) *multipart.FileHeader {
		return &multipart.FileHeader{
			Filename: name,
			Size:     size,
			Header:   textproto.MIMEHeader{constvars.HeaderContentType: []string{"image/png"}},
		}
	}

	t.Run("stores the image and links it", func(t *testing.T) {
		f := newReferenceFixture()
		f.records.On("FindByID", mock.Anything, constvars.ResourceCertificate, 8).
			Return(map[string]interface{}{"id": float64(8), "name": "Board"}, nil)
		var objectName string
		f.storage.On("UploadFile", mock.Anything, mock.Anything, mock.Anything, "clinic", mock.Anything).
			Run(func(args mock.Arguments) { objectName = args.String(4) }).
			Return("https://cdn.example.org/clinic/certificates/8/x.png", nil)
		var sent map[string]interface{}
		f.records.On("Update", mock.Anything, constvars.ResourceCertificate, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(2).(map[string]interface{}) }).
			Return(nil, nil)

		_, err := f.usecase.UploadCertificateImage(context.Background(), 8, bytes.NewReader([]byte("png")), header("Cert.PNG", 3))

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(objectName, "certificates/8/"))
		assert.True(t, strings.HasSuffix(objectName, ".png"))
		assert.Equal(t, "https://cdn.example.org/clinic/certificates/8/x.png", sent["imageUrl"])
		assert.Equal(t, []string{constvars.AuditActionUpload}, f.audit.Recorded())
	})

	t.Run("rejects other formats", func(t *testing.T) {
		f := newReferenceFixture()

		_, err := f.usecase.UploadCertificateImage(context.Background(), 8, bytes.NewReader(nil), header("cert.pdf", 3))

		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err).StatusCode)
		f.storage.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects oversized files", func(t *testing.T) {
		f := newReferenceFixture()

		_, err := f.usecase.UploadCertificateImage(context.Background(), 8, bytes.NewReader(nil), header("cert.png", 3*1024*1024))

		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err).StatusCode)
	})
}

func TestPermissions(t *testing.T) {
	f := newReferenceFixture()

	read, manage, ok := f.usecase.Permissions(constvars.ReferenceWorkSchedules)
	require.True(t, ok)
	assert.Equal(t, constvars.PermissionSchedulesRead, read)
	assert.Equal(t, constvars.PermissionSchedulesManage, manage)

	_, manage, ok = f.usecase.Permissions(constvars.ReferencePatients)
	require.True(t, ok)
	assert.Empty(t, manage)

	_, _, ok = f.usecase.Permissions("invoices")
	assert.False(t, ok)
}
