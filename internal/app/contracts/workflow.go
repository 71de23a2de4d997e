package contracts

import (
	"clinic-portal-service/internal/app/models"
	"clinic-portal-service/internal/pkg/clinic_dto"
	"clinic-portal-service/internal/pkg/dto/requests"
	"clinic-portal-service/internal/pkg/dto/responses"
	"context"
)

type WorkflowDraftRepository interface {
	Save(ctx context.Context, draft *models.WorkflowDraft) error
	FindByID(ctx context.Context, workflowID string) (*models.WorkflowDraft, error)
	Delete(ctx context.Context, workflowID string) error
}

type WorkflowUsecase interface {
	Start(ctx context.Context, request *requests.StartWorkflow) (*responses.Workflow, error)
	Get(ctx context.Context, workflowID string) (*responses.Workflow, error)
	RecordTestResult(ctx context.Context, workflowID string, request *requests.RecordTestResult) (*responses.Workflow, error)
	ListStandardRegimens(ctx context.Context, workflowID string) ([]clinic_dto.Regimen, error)
	ListActiveComponents(ctx context.Context, workflowID string) ([]clinic_dto.Component, error)
	SelectRegimen(ctx context.Context, workflowID string, request *requests.SelectRegimen) (*responses.Workflow, error)
	CreateTreatment(ctx context.Context, workflowID string, request *requests.CreateTreatment) (*responses.Workflow, error)
	Abandon(ctx context.Context, workflowID string) error
}

type TreatmentNotifier interface {
	NotifyTreatmentCreated(ctx context.Context, treatment *clinic_dto.Treatment) error
}
