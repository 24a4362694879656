package domain

// PrintMethod identifies the production method chosen for an order
type PrintMethod string

const (
	MethodDigital PrintMethod = "digital"
	MethodOffset  PrintMethod = "offset"
)

// Sides identifies single or double sided printing
type Sides string

const (
	SidesSingle Sides = "single"
	SidesDouble Sides = "double"
)

// Urgency identifies whether an order carries a rush premium
type Urgency string

const (
	UrgencyStandard Urgency = "standard"
	UrgencyRush     Urgency = "rush"
)

// FinishingNone is the normalized value for absent or unknown finishing
const FinishingNone = "none"

// SpecInput is a partially populated specification as delivered by the
// extraction collaborator. Any field may be absent.
type SpecInput struct {
	Quantity        *int     `json:"quantity,omitempty"`
	WidthMM         *float64 `json:"width_mm,omitempty"`
	HeightMM        *float64 `json:"height_mm,omitempty"`
	MaterialGSM     *int     `json:"material_gsm,omitempty"`
	Sides           *string  `json:"sides,omitempty" validate:"omitempty,oneof=single double"`
	Finishing       *string  `json:"finishing,omitempty"`
	TurnaroundDays  *float64 `json:"turnaround_days,omitempty"`
	ArtworkProvided bool     `json:"artwork_provided"`
}

// Specification is a fully normalized order specification. All numeric
// fields are present and within policy bounds after normalization.
type Specification struct {
	Quantity        int     `json:"quantity"`
	WidthMM         float64 `json:"width_mm"`
	HeightMM        float64 `json:"height_mm"`
	MaterialGSM     int     `json:"material_gsm"`
	Sides           Sides   `json:"sides"`
	Finishing       string  `json:"finishing"`
	Urgency         Urgency `json:"urgency"`
	RushPremiumRate float64 `json:"rush_premium_rate"`
	TurnaroundDays  float64 `json:"turnaround_days"`
	ArtworkProvided bool    `json:"artwork_provided"`
}

// AreaSqm returns the sheet area in square meters
func (s Specification) AreaSqm() float64 {
	return s.WidthMM * s.HeightMM / 1_000_000
}

// NormalizationReport records what normalization had to correct, so that
// validation can flag suspicious raw values after the fact.
type NormalizationReport struct {
	RawQuantity      *int `json:"raw_quantity,omitempty"`
	QuantityAdjusted bool `json:"quantity_adjusted"`
	RawGSM           *int `json:"raw_gsm,omitempty"`
	GSMAdjusted      bool `json:"gsm_adjusted"`
}

// PricingBreakdown decomposes a total price into named cost components.
// Invariant: the components sum to TotalPrice within a small epsilon.
type PricingBreakdown struct {
	Method        PrintMethod `json:"method"`
	SetupCost     float64     `json:"setup_cost"`
	PaperCost     float64     `json:"paper_cost"`
	PrintingCost  float64     `json:"printing_cost"`
	FinishingCost float64     `json:"finishing_cost"`
	RushFee       float64     `json:"rush_fee"`
	Margin        float64     `json:"margin"`
	TotalPrice    float64     `json:"total_price"`
}

// ComponentSum returns the sum of all cost components
func (b PricingBreakdown) ComponentSum() float64 {
	return b.SetupCost + b.PaperCost + b.PrintingCost + b.FinishingCost + b.RushFee + b.Margin
}

// PriceProposal is an externally sourced price of unknown trustworthiness.
// It is consumed once by reconciliation and never persisted as-is.
type PriceProposal struct {
	TotalPrice float64          `json:"total_price"`
	Breakdown  PricingBreakdown `json:"breakdown"`
}

// FlagSeverity classifies how serious a validation flag is
type FlagSeverity string

const (
	SeverityLow    FlagSeverity = "low"
	SeverityMedium FlagSeverity = "medium"
	SeverityHigh   FlagSeverity = "high"
)

// Validation flag names
const (
	FlagMissingQty        = "missing_qty"
	FlagLowResArt         = "low_res_art"
	FlagInvalidSize       = "invalid_size"
	FlagPriceAnomaly      = "price_anomaly"
	FlagMaterialMismatch  = "material_mismatch"
	FlagRushConflict      = "rush_conflict"
	FlagFinishingConflict = "finishing_conflict"
)

// ValidationResult is the outcome of the specification feasibility rules.
// It is derived entirely from the specification and the final breakdown and
// is recomputed for every estimation.
type ValidationResult struct {
	Valid       bool         `json:"valid"`
	Flags       []string     `json:"flags"`
	Severity    FlagSeverity `json:"severity"`
	Suggestions []string     `json:"suggestions"`
}

// HasFlag reports whether the given flag was triggered
func (r ValidationResult) HasFlag(name string) bool {
	for _, f := range r.Flags {
		if f == name {
			return true
		}
	}
	return false
}

// CompetitorQuote is an indicative market price attached to an estimate
type CompetitorQuote struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
