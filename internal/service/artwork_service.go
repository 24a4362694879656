package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/presswork-as/estimate-api/internal/config"
	"github.com/presswork-as/estimate-api/internal/domain"
	"github.com/presswork-as/estimate-api/internal/mapper"
	"github.com/presswork-as/estimate-api/internal/repository"
	"github.com/presswork-as/estimate-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ArtworkService handles artwork file uploads for print orders
type ArtworkService struct {
	orderRepo    *repository.OrderRepository
	artworkRepo  *repository.ArtworkRepository
	auditService *AuditLogService
	store        storage.Storage
	cfg          *config.StorageConfig
	logger       *zap.Logger
}

// NewArtworkService creates a new artwork service
func NewArtworkService(
	orderRepo *repository.OrderRepository,
	artworkRepo *repository.ArtworkRepository,
	auditService *AuditLogService,
	store storage.Storage,
	cfg *config.StorageConfig,
	logger *zap.Logger,
) *ArtworkService {
	return &ArtworkService{
		orderRepo:    orderRepo,
		artworkRepo:  artworkRepo,
		auditService: auditService,
		store:        store,
		cfg:          cfg,
		logger:       logger,
	}
}

// Upload stores an artwork file for the given order and marks the order as
// having artwork. size is the declared upload size used for limit checks;
// the stored size is what was actually written.
func (s *ArtworkService) Upload(ctx context.Context, orderID uuid.UUID, filename, contentType string, size int64, data io.Reader) (*domain.ArtworkFileDTO, error) {
	if size > s.cfg.MaxUploadSizeMB*1024*1024 {
		return nil, ErrArtworkTooLarge
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	storagePath, written, err := s.store.Upload(ctx, fmt.Sprintf("%s/%s", orderID, filename), contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload artwork: %w", err)
	}

	file := &domain.ArtworkFile{
		OrderID:     orderID,
		Filename:    filename,
		ContentType: contentType,
		Size:        written,
		StoragePath: storagePath,
	}
	if err := s.artworkRepo.Create(ctx, file); err != nil {
		// Keep storage and database consistent on failure
		if delErr := s.store.Delete(ctx, storagePath); delErr != nil {
			s.logger.Error("failed to remove orphaned artwork blob", zap.Error(delErr), zap.String("path", storagePath))
		}
		return nil, fmt.Errorf("failed to create artwork record: %w", err)
	}

	if !order.ArtworkProvided {
		order.ArtworkProvided = true
		if err := s.orderRepo.Update(ctx, order); err != nil {
			s.logger.Error("failed to mark order artwork provided", zap.Error(err), zap.String("order_id", orderID.String()))
		}
	}

	s.auditService.Record(ctx, domain.AuditActionArtworkUploaded, "artwork_file", &file.ID, map[string]interface{}{
		"order_id": orderID,
		"filename": filename,
		"size":     written,
	})

	s.logger.Info("artwork uploaded",
		zap.String("order_id", orderID.String()),
		zap.String("filename", filename),
		zap.Int64("size", written),
	)

	dto := mapper.ToArtworkFileDTO(file)
	return &dto, nil
}

// ListByOrderID returns all artwork files for an order
func (s *ArtworkService) ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]domain.ArtworkFileDTO, error) {
	files, err := s.artworkRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list artwork files: %w", err)
	}

	dtos := make([]domain.ArtworkFileDTO, 0, len(files))
	for i := range files {
		dtos = append(dtos, mapper.ToArtworkFileDTO(&files[i]))
	}
	return dtos, nil
}
