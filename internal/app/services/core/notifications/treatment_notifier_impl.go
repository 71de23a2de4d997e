package notifications

import (
	"clinic-portal-service/internal/app/config"
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/pkg/clinic_dto"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var errPatientWithoutEmail = errors.New("patient has no email address")

type treatmentNotifier struct {
	PatientClinicClient contracts.PatientClinicClient
	MailerService       contracts.MailerService
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewTreatmentNotifier(
	patientClinicClient contracts.PatientClinicClient,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.TreatmentNotifier {
	return &treatmentNotifier{
		PatientClinicClient: patientClinicClient,
		MailerService:       mailerService,
		InternalConfig:      internalConfig,
		Log:                 logger,
	}
}

// NotifyTreatmentCreated e-mails the patient that a treatment plan exists.
// Callers treat any error as non fatal.
func (n *treatmentNotifier) NotifyTreatmentCreated(ctx context.Context, treatment *clinic_dto.Treatment) error {
	requestID := utils.GetRequestID(ctx)
	n.Log.Info("treatmentNotifier.NotifyTreatmentCreated called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTreatmentIDKey, treatment.ID),
	)

	patient, err := n.PatientClinicClient.FindByID(ctx, treatment.PatientID)
	if err != nil {
		n.Log.Error("treatmentNotifier.NotifyTreatmentCreated error calling PatientClinicClient.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if patient.Email == "" {
		return fmt.Errorf("patient %d: %w", patient.ID, errPatientWithoutEmail)
	}

	payload := utils.BuildTreatmentCreatedEmailPayload(
		n.InternalConfig.Mailer.EmailSender,
		patient.Email,
		patient.FullName,
		treatment.StartDate,
		treatment.EndDate,
		n.InternalConfig.App.NotificationPatientPortalUrl,
	)
	payload.ReferenceID = fmt.Sprintf(constvars.EmailReferenceTreatmentFormat, treatment.ID)

	err = n.MailerService.SendEmail(ctx, payload)
	if err != nil {
		n.Log.Error("treatmentNotifier.NotifyTreatmentCreated error calling MailerService.SendEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	n.Log.Info("treatmentNotifier.NotifyTreatmentCreated succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTreatmentIDKey, treatment.ID),
	)
	return nil
}
