package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/presswork-as/estimate-api/internal/domain"
	"gorm.io/gorm"
)

// OrderFilters represents filter options for querying print orders
type OrderFilters struct {
	Status   *domain.OrderStatus
	Valid    *bool
	Severity string
}

// OrderRepository handles print order data access
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts a new print order
func (r *OrderRepository) Create(ctx context.Context, order *domain.PrintOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// Update saves changes to an existing print order
func (r *OrderRepository) Update(ctx context.Context, order *domain.PrintOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// GetByID retrieves a print order with its estimates and artwork files
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PrintOrder, error) {
	var order domain.PrintOrder
	err := r.db.WithContext(ctx).
		Preload("Estimates", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("ArtworkFiles").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List retrieves print orders with pagination and optional filters
func (r *OrderRepository) List(ctx context.Context, filters *OrderFilters, page, pageSize int) ([]domain.PrintOrder, int64, error) {
	var (
		orders []domain.PrintOrder
		total  int64
	)

	query := r.db.WithContext(ctx).Model(&domain.PrintOrder{})
	if filters != nil {
		if filters.Status != nil {
			query = query.Where("status = ?", *filters.Status)
		}
		if filters.Valid != nil {
			query = query.Where("valid = ?", *filters.Valid)
		}
		if filters.Severity != "" {
			query = query.Where("severity = ?", filters.Severity)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}
