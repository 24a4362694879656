package mapper_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/presswork-as/estimate-api/internal/domain"
	"github.com/presswork-as/estimate-api/internal/mapper"
	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 589.57, mapper.Round2(589.5654))
	assert.Equal(t, 589.57, mapper.Round2(589.565))
	assert.Equal(t, 0.0, mapper.Round2(0))
	assert.Equal(t, 100.0, mapper.Round2(99.999))
	assert.Equal(t, -2.35, mapper.Round2(-2.345))
}

func TestToPricingBreakdownDTO(t *testing.T) {
	b := domain.PricingBreakdown{
		Method:        domain.MethodDigital,
		SetupCost:     300,
		PaperCost:     45.2176,
		PrintingCost:  75,
		FinishingCost: 12.3456,
		RushFee:       15.111,
		Margin:        98.7654,
	}

	dto := mapper.ToPricingBreakdownDTO(b)

	assert.Equal(t, domain.MethodDigital, dto.Method)
	assert.Equal(t, 300.0, dto.SetupCost)
	assert.Equal(t, 45.22, dto.PaperCost)
	assert.Equal(t, 75.0, dto.PrintingCost)
	assert.Equal(t, 12.35, dto.FinishingCost)
	assert.Equal(t, 15.11, dto.RushFee)
	assert.Equal(t, 98.77, dto.Margin)
}

func TestToEstimateDTO(t *testing.T) {
	now := time.Now().UTC()
	estimate := &domain.Estimate{
		BaseModel: domain.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:     uuid.New(),
		TotalPrice:  589.5654,
		Breakdown:   `{"method":"digital"}`,
		PriceSource: "rule_based",
		Status:      domain.EstimateStatusActive,
		ExpiresAt:   now.Add(14 * 24 * time.Hour),
	}

	dto := mapper.ToEstimateDTO(estimate)

	assert.Equal(t, estimate.ID, dto.ID)
	assert.Equal(t, estimate.OrderID, dto.OrderID)
	assert.Equal(t, 589.57, dto.TotalPrice)
	assert.Equal(t, `{"method":"digital"}`, dto.Breakdown)
	assert.Equal(t, "rule_based", dto.PriceSource)
	assert.Equal(t, domain.EstimateStatusActive, dto.Status)
	assert.NotEmpty(t, dto.ExpiresAt)
	assert.NotEmpty(t, dto.CreatedAt)
}

func TestToOrderDTO(t *testing.T) {
	now := time.Now().UTC()
	order := &domain.PrintOrder{
		BaseModel: domain.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		InputType:       domain.InputTypeAPI,
		Status:          domain.OrderStatusEstimated,
		Specs:           `{"quantity":300}`,
		ArtworkProvided: true,
		Valid:           false,
		Severity:        "high",
		Flags:           pq.StringArray{"missing_qty"},
		TurnaroundDays:  5,
		Estimates: []domain.Estimate{
			{BaseModel: domain.BaseModel{ID: uuid.New()}, TotalPrice: 120},
		},
	}

	dto := mapper.ToOrderDTO(order)

	assert.Equal(t, order.ID, dto.ID)
	assert.Equal(t, domain.OrderStatusEstimated, dto.Status)
	assert.True(t, dto.ArtworkProvided)
	assert.False(t, dto.Valid)
	assert.Equal(t, "high", dto.Severity)
	assert.Equal(t, []string{"missing_qty"}, dto.Flags)
	assert.Equal(t, 5.0, dto.TurnaroundDays)
	assert.Len(t, dto.Estimates, 1)
}

func TestToOrderDTO_NilFlags(t *testing.T) {
	order := &domain.PrintOrder{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Status:    domain.OrderStatusPending,
	}

	dto := mapper.ToOrderDTO(order)

	assert.NotNil(t, dto.Flags)
	assert.Empty(t, dto.Flags)
}

func TestToAuditLogDTO(t *testing.T) {
	entityID := uuid.New()
	log := &domain.AuditLog{
		ID:          uuid.New(),
		Action:      domain.AuditActionEstimateCreated,
		EntityType:  "estimate",
		EntityID:    &entityID,
		Detail:      `{"total_price":589.57}`,
		PerformedAt: time.Now().UTC(),
	}

	dto := mapper.ToAuditLogDTO(log)

	assert.Equal(t, log.ID, dto.ID)
	assert.Equal(t, domain.AuditActionEstimateCreated, dto.Action)
	assert.Equal(t, "estimate", dto.EntityType)
	assert.Equal(t, &entityID, dto.EntityID)
	assert.Equal(t, `{"total_price":589.57}`, dto.Detail)
	assert.NotEmpty(t, dto.PerformedAt)
}
