package domain

import (
	"github.com/google/uuid"
)

// Request DTOs

// EstimateRequest carries a partially populated specification from the
// extraction collaborator plus the raw input it was extracted from.
type EstimateRequest struct {
	Specs    SpecInput `json:"specs" validate:"required"`
	RawInput string    `json:"raw_input,omitempty" validate:"max=20000"`
	Input    InputType `json:"input_type,omitempty" validate:"omitempty,oneof=text pdf image api"`
}

// Response DTOs

// PricingBreakdownDTO is the cost breakdown with display rounding applied
type PricingBreakdownDTO struct {
	Method        PrintMethod `json:"method"`
	SetupCost     float64     `json:"setup_cost"`
	PaperCost     float64     `json:"paper_cost"`
	PrintingCost  float64     `json:"printing_cost"`
	FinishingCost float64     `json:"finishing_cost"`
	RushFee       float64     `json:"rush_fee"`
	Margin        float64     `json:"margin"`
}

// PricingDTO is the pricing section of an estimate response
type PricingDTO struct {
	TotalPrice  float64             `json:"total_price"`
	Breakdown   PricingBreakdownDTO `json:"breakdown"`
	Source      string              `json:"source"`
	Competitors []CompetitorQuote   `json:"competitors,omitempty"`
}

// ValidationResultDTO is the validation section of an estimate response
type ValidationResultDTO struct {
	Valid       bool         `json:"valid"`
	Flags       []string     `json:"flags"`
	Severity    FlagSeverity `json:"severity"`
	Suggestions []string     `json:"suggestions"`
}

// EstimateResponse is the full result of one order estimation
type EstimateResponse struct {
	OrderID        uuid.UUID           `json:"order_id"`
	EstimateID     uuid.UUID           `json:"estimate_id"`
	Specs          Specification       `json:"specs"`
	Pricing        PricingDTO          `json:"pricing"`
	Validation     ValidationResultDTO `json:"validation"`
	CorrectionNote string              `json:"correction_note,omitempty"`
}

// EstimateDTO is a persisted estimate in API responses
type EstimateDTO struct {
	ID             uuid.UUID      `json:"id"`
	OrderID        uuid.UUID      `json:"orderId"`
	TotalPrice     float64        `json:"totalPrice"`
	Breakdown      string         `json:"breakdown"`
	PriceSource    string         `json:"priceSource"`
	CorrectionNote string         `json:"correctionNote,omitempty"`
	Status         EstimateStatus `json:"status"`
	ExpiresAt      string         `json:"expiresAt"` // ISO 8601
	CreatedAt      string         `json:"createdAt"` // ISO 8601
}

// OrderDTO is a persisted print order in API responses
type OrderDTO struct {
	ID              uuid.UUID     `json:"id"`
	InputType       InputType     `json:"inputType"`
	Status          OrderStatus   `json:"status"`
	Specs           string        `json:"specs,omitempty"`
	ArtworkProvided bool          `json:"artworkProvided"`
	Valid           bool          `json:"valid"`
	Severity        string        `json:"severity,omitempty"`
	Flags           []string      `json:"flags"`
	TurnaroundDays  float64       `json:"turnaroundDays,omitempty"`
	Estimates       []EstimateDTO `json:"estimates,omitempty"`
	CreatedAt       string        `json:"createdAt"` // ISO 8601
	UpdatedAt       string        `json:"updatedAt"` // ISO 8601
}

// ArtworkFileDTO is an uploaded artwork file in API responses
type ArtworkFileDTO struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"orderId"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	CreatedAt   string    `json:"createdAt"` // ISO 8601
}

// AuditLogDTO is an audit record in API responses
type AuditLogDTO struct {
	ID          uuid.UUID   `json:"id"`
	Action      AuditAction `json:"action"`
	EntityType  string      `json:"entityType"`
	EntityID    *uuid.UUID  `json:"entityId,omitempty"`
	RequestID   string      `json:"requestId,omitempty"`
	Detail      string      `json:"detail,omitempty"`
	PerformedAt string      `json:"performedAt"` // ISO 8601
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// Pagination response wrapper
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}
