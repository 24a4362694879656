package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/presswork-as/estimate-api/internal/domain"
	"github.com/presswork-as/estimate-api/internal/repository"
	"github.com/presswork-as/estimate-api/internal/service"
	"go.uber.org/zap"
)

type AuditHandler struct {
	auditService *service.AuditLogService
	logger       *zap.Logger
}

func NewAuditHandler(auditService *service.AuditLogService, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
		logger:       logger,
	}
}

// List godoc
// @Summary List audit log entries
// @Description Get paginated audit trail of pricing decisions and corrections
// @Tags Audit
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 100)" default(20)
// @Param action query string false "Filter by action" Enums(estimate_created, proposal_overridden, breakdown_corrected, artwork_uploaded, estimates_expired)
// @Param entityType query string false "Filter by entity type"
// @Param entityId query string false "Filter by entity ID" format(uuid)
// @Param startTime query string false "Filter entries at or after this time (RFC 3339)"
// @Param endTime query string false "Filter entries before this time (RFC 3339)"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.AuditLogDTO}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security ApiKeyAuth
// @Router /audit [get]
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	filter := &repository.AuditLogFilter{
		EntityType: r.URL.Query().Get("entityType"),
	}
	if action := r.URL.Query().Get("action"); action != "" {
		a := domain.AuditAction(action)
		filter.Action = &a
	}
	if entityID := r.URL.Query().Get("entityId"); entityID != "" {
		id, err := uuid.Parse(entityID)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid entity ID")
			return
		}
		filter.EntityID = &id
	}
	if start := r.URL.Query().Get("startTime"); start != "" {
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid startTime, expected RFC 3339")
			return
		}
		filter.StartTime = &t
	}
	if end := r.URL.Query().Get("endTime"); end != "" {
		t, err := time.Parse(time.RFC3339, end)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid endTime, expected RFC 3339")
			return
		}
		filter.EndTime = &t
	}

	result, err := h.auditService.List(r.Context(), filter, page, pageSize)
	if err != nil {
		h.logger.Error("failed to list audit logs", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list audit logs")
		return
	}

	respondJSON(w, http.StatusOK, result)
}
