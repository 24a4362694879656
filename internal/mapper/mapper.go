package mapper

import (
	"math"

	"github.com/presswork-as/estimate-api/internal/domain"
)

// Round2 rounds a monetary value to two decimals for display. Internal
// pricing keeps full precision; rounding happens only at the API boundary.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ToPricingBreakdownDTO converts a PricingBreakdown to its display form
func ToPricingBreakdownDTO(b domain.PricingBreakdown) domain.PricingBreakdownDTO {
	return domain.PricingBreakdownDTO{
		Method:        b.Method,
		SetupCost:     Round2(b.SetupCost),
		PaperCost:     Round2(b.PaperCost),
		PrintingCost:  Round2(b.PrintingCost),
		FinishingCost: Round2(b.FinishingCost),
		RushFee:       Round2(b.RushFee),
		Margin:        Round2(b.Margin),
	}
}

// ToValidationResultDTO converts a ValidationResult to its display form
func ToValidationResultDTO(r domain.ValidationResult) domain.ValidationResultDTO {
	return domain.ValidationResultDTO{
		Valid:       r.Valid,
		Flags:       r.Flags,
		Severity:    r.Severity,
		Suggestions: r.Suggestions,
	}
}

// ToEstimateDTO converts an Estimate to EstimateDTO
func ToEstimateDTO(estimate *domain.Estimate) domain.EstimateDTO {
	return domain.EstimateDTO{
		ID:             estimate.ID,
		OrderID:        estimate.OrderID,
		TotalPrice:     Round2(estimate.TotalPrice),
		Breakdown:      estimate.Breakdown,
		PriceSource:    estimate.PriceSource,
		CorrectionNote: estimate.CorrectionNote,
		Status:         estimate.Status,
		ExpiresAt:      estimate.ExpiresAt.Format("2006-01-02T15:04:05Z"),
		CreatedAt:      estimate.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToOrderDTO converts a PrintOrder to OrderDTO including its estimates
func ToOrderDTO(order *domain.PrintOrder) domain.OrderDTO {
	dto := domain.OrderDTO{
		ID:              order.ID,
		InputType:       order.InputType,
		Status:          order.Status,
		Specs:           order.Specs,
		ArtworkProvided: order.ArtworkProvided,
		Valid:           order.Valid,
		Severity:        order.Severity,
		Flags:           order.Flags,
		TurnaroundDays:  order.TurnaroundDays,
		CreatedAt:       order.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:       order.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if dto.Flags == nil {
		dto.Flags = []string{}
	}
	for i := range order.Estimates {
		dto.Estimates = append(dto.Estimates, ToEstimateDTO(&order.Estimates[i]))
	}
	return dto
}

// ToArtworkFileDTO converts an ArtworkFile to ArtworkFileDTO
func ToArtworkFileDTO(file *domain.ArtworkFile) domain.ArtworkFileDTO {
	return domain.ArtworkFileDTO{
		ID:          file.ID,
		OrderID:     file.OrderID,
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Size:        file.Size,
		CreatedAt:   file.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToAuditLogDTO converts an AuditLog to AuditLogDTO
func ToAuditLogDTO(log *domain.AuditLog) domain.AuditLogDTO {
	return domain.AuditLogDTO{
		ID:          log.ID,
		Action:      log.Action,
		EntityType:  log.EntityType,
		EntityID:    log.EntityID,
		RequestID:   log.RequestID,
		Detail:      log.Detail,
		PerformedAt: log.PerformedAt.Format("2006-01-02T15:04:05Z"),
	}
}
