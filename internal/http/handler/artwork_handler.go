package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/presswork-as/estimate-api/internal/config"
	"github.com/presswork-as/estimate-api/internal/service"
	"go.uber.org/zap"
)

type ArtworkHandler struct {
	artworkService *service.ArtworkService
	cfg            *config.StorageConfig
	logger         *zap.Logger
}

func NewArtworkHandler(artworkService *service.ArtworkService, cfg *config.StorageConfig, logger *zap.Logger) *ArtworkHandler {
	return &ArtworkHandler{
		artworkService: artworkService,
		cfg:            cfg,
		logger:         logger,
	}
}

// Upload godoc
// @Summary Upload artwork for an order
// @Description Upload an artwork file and attach it to a print order
// @Tags Artwork
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Order ID" format(uuid)
// @Param file formData file true "Artwork file"
// @Success 201 {object} domain.ArtworkFileDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 413 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security ApiKeyAuth
// @Router /orders/{id}/artwork [post]
func (h *ArtworkHandler) Upload(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	maxBytes := h.cfg.MaxUploadSizeMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		respondWithError(w, http.StatusRequestEntityTooLarge, "Uploaded file exceeds size limit")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	dto, err := h.artworkService.Upload(r.Context(), orderID, header.Filename, contentType, header.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondWithError(w, http.StatusNotFound, "Order not found")
		case errors.Is(err, service.ErrArtworkTooLarge):
			respondWithError(w, http.StatusRequestEntityTooLarge, "Uploaded file exceeds size limit")
		default:
			h.logger.Error("failed to upload artwork", zap.Error(err), zap.String("order_id", orderID.String()))
			respondWithError(w, http.StatusInternalServerError, "Failed to upload artwork")
		}
		return
	}

	respondJSON(w, http.StatusCreated, dto)
}

// List godoc
// @Summary List artwork for an order
// @Description Get all artwork files attached to a print order
// @Tags Artwork
// @Accept json
// @Produce json
// @Param id path string true "Order ID" format(uuid)
// @Success 200 {array} domain.ArtworkFileDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security ApiKeyAuth
// @Router /orders/{id}/artwork [get]
func (h *ArtworkHandler) List(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	files, err := h.artworkService.ListByOrderID(r.Context(), orderID)
	if err != nil {
		h.logger.Error("failed to list artwork", zap.Error(err), zap.String("order_id", orderID.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to list artwork")
		return
	}

	respondJSON(w, http.StatusOK, files)
}
