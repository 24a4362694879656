package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns a UUID so the same models work on Postgres and the
// in-memory SQLite database used by tests.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// OrderStatus represents the lifecycle state of a print order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusEstimated OrderStatus = "estimated"
	OrderStatusFailed    OrderStatus = "failed"
)

// InputType identifies where the order specification came from
type InputType string

const (
	InputTypeText  InputType = "text"
	InputTypePDF   InputType = "pdf"
	InputTypeImage InputType = "image"
	InputTypeAPI   InputType = "api"
)

// PrintOrder represents a received print order and its validation outcome
type PrintOrder struct {
	BaseModel
	InputType       InputType      `gorm:"type:varchar(20);not null;default:'api';column:input_type"`
	RawInput        string         `gorm:"type:text;column:raw_input"`
	Status          OrderStatus    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Specs           string         `gorm:"type:jsonb"`
	ArtworkProvided bool           `gorm:"not null;default:false;column:artwork_provided"`
	Valid           bool           `gorm:"not null;default:false"`
	Severity        string         `gorm:"type:varchar(10)"`
	Flags           pq.StringArray `gorm:"type:text[]"`
	TurnaroundDays  float64        `gorm:"column:turnaround_days"`
	Estimates       []Estimate     `gorm:"foreignKey:OrderID"`
	ArtworkFiles    []ArtworkFile  `gorm:"foreignKey:OrderID"`
}

// EstimateStatus represents the lifecycle state of an estimate
type EstimateStatus string

const (
	EstimateStatusActive  EstimateStatus = "active"
	EstimateStatusExpired EstimateStatus = "expired"
)

// Estimate represents a priced estimate for an order.
// Breakdown is the full cost breakdown as JSON; PriceSource records whether
// the figure came from the rule engine or an accepted external proposal.
type Estimate struct {
	BaseModel
	OrderID        uuid.UUID      `gorm:"type:uuid;not null;index;column:order_id"`
	Order          *PrintOrder    `gorm:"foreignKey:OrderID"`
	TotalPrice     float64        `gorm:"not null;column:total_price"`
	Breakdown      string         `gorm:"type:jsonb"`
	PriceSource    string         `gorm:"type:varchar(30);not null;column:price_source"`
	CorrectionNote string         `gorm:"type:text;column:correction_note"`
	Status         EstimateStatus `gorm:"type:varchar(20);not null;default:'active';index"`
	ExpiresAt      time.Time      `gorm:"not null;column:expires_at;index"`
}

// ArtworkFile represents an uploaded artwork file attached to an order
type ArtworkFile struct {
	BaseModel
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index;column:order_id"`
	Filename    string    `gorm:"type:varchar(255);not null"`
	ContentType string    `gorm:"type:varchar(100);not null;column:content_type"`
	Size        int64     `gorm:"not null"`
	StoragePath string    `gorm:"type:varchar(500);not null;unique;column:storage_path"`
}

// AuditAction represents the type of audited event
type AuditAction string

const (
	AuditActionEstimateCreated    AuditAction = "estimate_created"
	AuditActionProposalOverridden AuditAction = "proposal_overridden"
	AuditActionBreakdownCorrected AuditAction = "breakdown_corrected"
	AuditActionArtworkUploaded    AuditAction = "artwork_uploaded"
	AuditActionEstimatesExpired   AuditAction = "estimates_expired"
)

// AuditLog is an append-only record of pricing decisions and corrections
type AuditLog struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key"`
	Action      AuditAction `gorm:"type:varchar(40);not null;index"`
	EntityType  string      `gorm:"type:varchar(50);not null;column:entity_type"`
	EntityID    *uuid.UUID  `gorm:"type:uuid;column:entity_id;index"`
	RequestID   string      `gorm:"type:varchar(100);column:request_id"`
	Detail      string      `gorm:"type:jsonb"`
	PerformedAt time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP;column:performed_at"`
	CreatedAt   time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns a UUID for the append-only audit record
func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.PerformedAt.IsZero() {
		l.PerformedAt = time.Now().UTC()
	}
	return nil
}
