package workflow

import (
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/app/models"
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

type workflowDraftRedisRepository struct {
	RedisRepository contracts.RedisRepository
	Expiration      time.Duration
}

func NewWorkflowDraftRedisRepository(redisRepository contracts.RedisRepository, expiration time.Duration) contracts.WorkflowDraftRepository {
	return &workflowDraftRedisRepository{
		RedisRepository: redisRepository,
		Expiration:      expiration,
	}
}

func draftKey(workflowID string) string {
	return fmt.Sprintf(constvars.RedisKeyWorkflowFormat, workflowID)
}

// Save writes the draft and restarts its expiration.
func (repo *workflowDraftRedisRepository) Save(ctx context.Context, draft *models.WorkflowDraft) error {
	return repo.RedisRepository.Set(ctx, draftKey(draft.ID), draft, repo.Expiration)
}

// FindByID returns nil without error when the draft does not exist.
func (repo *workflowDraftRedisRepository) FindByID(ctx context.Context, workflowID string) (*models.WorkflowDraft, error) {
	raw, err := repo.RedisRepository.Get(ctx, draftKey(workflowID))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	draft := new(models.WorkflowDraft)
	err = json.Unmarshal([]byte(raw), draft)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return draft, nil
}

func (repo *workflowDraftRedisRepository) Delete(ctx context.Context, workflowID string) error {
	return repo.RedisRepository.Delete(ctx, draftKey(workflowID))
}
