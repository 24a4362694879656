package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/presswork-as/estimate-api/internal/domain"
	"github.com/presswork-as/estimate-api/internal/repository"
	"go.uber.org/zap"
)

// EstimateExpiryJobName is the name of the estimate expiry job
const EstimateExpiryJobName = "estimate_expiry"

// expiryJobTimeout bounds a single expiry sweep
const expiryJobTimeout = 5 * time.Minute

// Auditor records audit entries for expired estimates. This interface
// allows the job to call the audit service without importing the service
// package directly.
type Auditor interface {
	Record(ctx context.Context, action domain.AuditAction, entityType string, entityID *uuid.UUID, detail interface{})
}

// EstimateExpiryJob marks estimates past their validity window as expired.
type EstimateExpiryJob struct {
	estimateRepo *repository.EstimateRepository
	auditor      Auditor
	logger       *zap.Logger
}

// NewEstimateExpiryJob creates a new estimate expiry job.
func NewEstimateExpiryJob(estimateRepo *repository.EstimateRepository, auditor Auditor, logger *zap.Logger) *EstimateExpiryJob {
	return &EstimateExpiryJob{
		estimateRepo: estimateRepo,
		auditor:      auditor,
		logger:       logger,
	}
}

// Run executes the expiry sweep. This is called by the scheduler according
// to the cron expression.
func (j *EstimateExpiryJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), expiryJobTimeout)
	defer cancel()

	start := time.Now()
	expired, err := j.estimateRepo.ExpireOverdue(ctx, time.Now().UTC())
	if err != nil {
		j.logger.Error("estimate expiry sweep failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	if expired > 0 {
		j.auditor.Record(ctx, domain.AuditActionEstimatesExpired, "estimate", nil, map[string]interface{}{
			"expired_count": expired,
		})
	}

	j.logger.Info("estimate expiry sweep completed",
		zap.Int64("expired", expired),
		zap.Duration("duration", time.Since(start)))
}
