package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/presswork-as/estimate-api/internal/domain"
	"github.com/presswork-as/estimate-api/internal/mapper"
	"github.com/presswork-as/estimate-api/internal/repository"
	"go.uber.org/zap"
)

// AuditLogService records and queries the append-only audit trail of
// pricing decisions and corrections.
type AuditLogService struct {
	auditRepo *repository.AuditLogRepository
	logger    *zap.Logger
}

// NewAuditLogService creates a new audit log service
func NewAuditLogService(auditRepo *repository.AuditLogRepository, logger *zap.Logger) *AuditLogService {
	return &AuditLogService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Record writes an audit entry. Detail may be any JSON-serializable value.
// Audit failures are logged, never propagated: an estimation must not fail
// because its audit record could not be written.
func (s *AuditLogService) Record(ctx context.Context, action domain.AuditAction, entityType string, entityID *uuid.UUID, detail interface{}) {
	entry := &domain.AuditLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}

	if detail != nil {
		data, err := json.Marshal(detail)
		if err != nil {
			s.logger.Warn("failed to encode audit detail", zap.Error(err), zap.String("action", string(action)))
		} else {
			entry.Detail = string(data)
		}
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		s.logger.Error("failed to write audit log",
			zap.Error(err),
			zap.String("action", string(action)),
			zap.String("entity_type", entityType),
		)
	}
}

// List returns audit log entries with pagination and optional filters
func (s *AuditLogService) List(ctx context.Context, filter *repository.AuditLogFilter, page, pageSize int) (*domain.PaginatedResponse, error) {
	logs, total, err := s.auditRepo.List(ctx, filter, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}

	dtos := make([]domain.AuditLogDTO, 0, len(logs))
	for i := range logs {
		dtos = append(dtos, mapper.ToAuditLogDTO(&logs[i]))
	}

	return &domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}
	return pages
}
