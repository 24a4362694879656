package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/presswork-as/estimate-api/internal/domain"
	"github.com/presswork-as/estimate-api/internal/repository"
	"github.com/presswork-as/estimate-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestOrder(t *testing.T, repo *repository.OrderRepository, status domain.OrderStatus, valid bool, severity string) *domain.PrintOrder {
	order := &domain.PrintOrder{
		InputType: domain.InputTypeAPI,
		Status:    status,
		Specs:     `{"quantity":100}`,
		Valid:     valid,
		Severity:  severity,
		Flags:     []string{},
	}
	require.NoError(t, repo.Create(context.Background(), order))
	return order
}

func TestOrderRepository_CreateAssignsID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewOrderRepository(db)

	order := createTestOrder(t, repo, domain.OrderStatusEstimated, true, "low")

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestOrderRepository_GetByIDPreloadsEstimates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	orderRepo := repository.NewOrderRepository(db)
	estimateRepo := repository.NewEstimateRepository(db)
	ctx := context.Background()

	order := createTestOrder(t, orderRepo, domain.OrderStatusEstimated, true, "low")

	for i := 0; i < 2; i++ {
		estimate := &domain.Estimate{
			OrderID:     order.ID,
			TotalPrice:  100.0 * float64(i+1),
			Breakdown:   `{}`,
			PriceSource: "rule_based",
			Status:      domain.EstimateStatusActive,
		}
		require.NoError(t, estimateRepo.Create(ctx, estimate))
	}

	fetched, err := orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, fetched.Estimates, 2)
}

func TestOrderRepository_GetByIDNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewOrderRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOrderRepository_ListFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewOrderRepository(db)
	ctx := context.Background()

	createTestOrder(t, repo, domain.OrderStatusEstimated, true, "low")
	createTestOrder(t, repo, domain.OrderStatusEstimated, false, "high")
	createTestOrder(t, repo, domain.OrderStatusPending, false, "medium")

	t.Run("no filters", func(t *testing.T) {
		orders, total, err := repo.List(ctx, nil, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, orders, 3)
	})

	t.Run("by status", func(t *testing.T) {
		status := domain.OrderStatusEstimated
		orders, total, err := repo.List(ctx, &repository.OrderFilters{Status: &status}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, orders, 2)
	})

	t.Run("by validity", func(t *testing.T) {
		valid := false
		_, total, err := repo.List(ctx, &repository.OrderFilters{Valid: &valid}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("by severity", func(t *testing.T) {
		_, total, err := repo.List(ctx, &repository.OrderFilters{Severity: "high"}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("pagination", func(t *testing.T) {
		orders, total, err := repo.List(ctx, nil, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, orders, 1)
	})
}

func TestOrderRepository_FlagsRoundtrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewOrderRepository(db)
	ctx := context.Background()

	order := &domain.PrintOrder{
		InputType: domain.InputTypeText,
		Status:    domain.OrderStatusEstimated,
		Flags:     []string{"price_anomaly", "low_res_art"},
	}
	require.NoError(t, repo.Create(ctx, order))

	fetched, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"price_anomaly", "low_res_art"}, []string(fetched.Flags))
}
