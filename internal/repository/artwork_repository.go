package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/presswork-as/estimate-api/internal/domain"
	"gorm.io/gorm"
)

// ArtworkRepository handles artwork file metadata access
type ArtworkRepository struct {
	db *gorm.DB
}

// NewArtworkRepository creates a new artwork repository
func NewArtworkRepository(db *gorm.DB) *ArtworkRepository {
	return &ArtworkRepository{db: db}
}

// Create inserts a new artwork file record
func (r *ArtworkRepository) Create(ctx context.Context, file *domain.ArtworkFile) error {
	return r.db.WithContext(ctx).Create(file).Error
}

// GetByID retrieves an artwork file record by ID
func (r *ArtworkRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ArtworkFile, error) {
	var file domain.ArtworkFile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&file).Error
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// ListByOrderID retrieves all artwork files for an order
func (r *ArtworkRepository) ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]domain.ArtworkFile, error) {
	var files []domain.ArtworkFile
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&files).Error
	return files, err
}
