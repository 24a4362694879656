package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/presswork-as/estimate-api/internal/domain"
	"gorm.io/gorm"
)

// EstimateRepository handles estimate data access
type EstimateRepository struct {
	db *gorm.DB
}

// NewEstimateRepository creates a new estimate repository
func NewEstimateRepository(db *gorm.DB) *EstimateRepository {
	return &EstimateRepository{db: db}
}

// Create inserts a new estimate
func (r *EstimateRepository) Create(ctx context.Context, estimate *domain.Estimate) error {
	return r.db.WithContext(ctx).Create(estimate).Error
}

// GetByID retrieves an estimate by ID
func (r *EstimateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Estimate, error) {
	var estimate domain.Estimate
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&estimate).Error
	if err != nil {
		return nil, err
	}
	return &estimate, nil
}

// ListByOrderID retrieves all estimates for an order, newest first
func (r *EstimateRepository) ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]domain.Estimate, error) {
	var estimates []domain.Estimate
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&estimates).Error
	return estimates, err
}

// ExpireOverdue marks active estimates past their expiry time as expired
// and returns the number of rows affected.
func (r *EstimateRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Estimate{}).
		Where("status = ? AND expires_at < ?", domain.EstimateStatusActive, now).
		Update("status", domain.EstimateStatusExpired)
	return result.RowsAffected, result.Error
}
