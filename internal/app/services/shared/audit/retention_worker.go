package audit

import (
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/pkg/constvars"
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	defaultRetentionCronSpec = "@daily"
	retentionLeaderTTL       = 5 * time.Minute
)

// RetentionWorker purges audit events older than the retention window on a
// cron schedule. Only the instance holding the leader lock purges.
type RetentionWorker struct {
	AuditRepository contracts.AuditRepository
	LockerService   contracts.LockerService
	Retention       time.Duration
	CronSpec        string
	Log             *zap.Logger

	now    func() time.Time
	cron   *cron.Cron
	cancel context.CancelFunc
}

func NewRetentionWorker(auditRepository contracts.AuditRepository, lockerService contracts.LockerService, retentionInDays int, cronSpec string, logger *zap.Logger) *RetentionWorker {
	return &RetentionWorker{
		AuditRepository: auditRepository,
		LockerService:   lockerService,
		Retention:       time.Duration(retentionInDays) * 24 * time.Hour,
		CronSpec:        cronSpec,
		Log:             logger,
		now:             time.Now,
	}
}

// Start schedules the purge. A zero retention disables the worker. An
// invalid spec falls back to @daily.
func (w *RetentionWorker) Start(ctx context.Context) {
	if w.Retention <= 0 {
		w.Log.Info("RetentionWorker.Start disabled, audit retention is not set")
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	c := cron.New()
	_, err := c.AddFunc(w.CronSpec, func() { w.RunOnce(runCtx) })
	if err != nil {
		w.Log.Warn("RetentionWorker.Start invalid cron spec, falling back to @daily",
			zap.String(constvars.LoggingCronSpecKey, w.CronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(defaultRetentionCronSpec, func() { w.RunOnce(runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop waits for a running purge to finish.
func (w *RetentionWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *RetentionWorker) RunOnce(ctx context.Context) {
	acquired, lockValue, err := w.LockerService.TryLock(ctx, constvars.RedisKeyAuditRetentionLeader, retentionLeaderTTL)
	if err != nil {
		w.Log.Warn("RetentionWorker.RunOnce error acquiring leader lock", zap.Error(err))
		return
	}
	if !acquired {
		w.Log.Info("RetentionWorker.RunOnce leader lock held by another instance")
		return
	}
	defer func() {
		_ = w.LockerService.Unlock(context.WithoutCancel(ctx), constvars.RedisKeyAuditRetentionLeader, lockValue)
	}()

	cutoff := w.now().Add(-w.Retention).UTC()
	deleted, err := w.AuditRepository.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		w.Log.Error("RetentionWorker.RunOnce error calling AuditRepository.DeleteOlderThan",
			zap.Time(constvars.LoggingAuditCutoffKey, cutoff),
			zap.Error(err),
		)
		return
	}

	w.Log.Info("RetentionWorker.RunOnce succeeded",
		zap.Time(constvars.LoggingAuditCutoffKey, cutoff),
		zap.Int64(constvars.LoggingDeletedCountKey, deleted),
	)
}
