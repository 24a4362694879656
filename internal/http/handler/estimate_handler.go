package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/presswork-as/estimate-api/internal/domain"
	"github.com/presswork-as/estimate-api/internal/service"
	"go.uber.org/zap"
)

type EstimateHandler struct {
	estimateService *service.EstimateService
	logger          *zap.Logger
}

func NewEstimateHandler(estimateService *service.EstimateService, logger *zap.Logger) *EstimateHandler {
	return &EstimateHandler{
		estimateService: estimateService,
		logger:          logger,
	}
}

// Create godoc
// @Summary Create an estimate
// @Description Normalize, price and validate a print order specification
// @Tags Estimates
// @Accept json
// @Produce json
// @Param request body domain.EstimateRequest true "Order specification"
// @Success 201 {object} domain.EstimateResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security ApiKeyAuth
// @Router /estimates [post]
func (h *EstimateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	resp, err := h.estimateService.Estimate(r.Context(), &req)
	if err != nil {
		var malformed *domain.MalformedSpecError
		if errors.As(err, &malformed) {
			respondWithError(w, http.StatusBadRequest, malformed.Error())
			return
		}
		h.logger.Error("failed to create estimate", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create estimate")
		return
	}

	respondJSON(w, http.StatusCreated, resp)
}
