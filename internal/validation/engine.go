// Package validation evaluates order specifications and final pricing
// against the business feasibility rules. The rules are independent
// predicates held in a table, so individual flags can be tested and new
// rules added without touching the evaluation loop.
package validation

import (
	"math"

	"github.com/presswork-as/estimate-api/internal/config"
	"github.com/presswork-as/estimate-api/internal/domain"
	"github.com/presswork-as/estimate-api/internal/pricing"
)

// Input is everything the rules may look at: the normalized specification,
// the final breakdown, and the normalization report carrying raw values
// from before clamping.
type Input struct {
	Spec      domain.Specification
	Breakdown domain.PricingBreakdown
	Report    domain.NormalizationReport
}

type rule struct {
	flag       string
	severity   domain.FlagSeverity
	suggestion string
	applies    func(in *Input, e *Engine) bool
}

// Engine evaluates the feasibility rule table
type Engine struct {
	cfg     *config.ValidationConfig
	pricing *config.PricingConfig
	rules   []rule
}

// NewEngine creates a validation engine bound to the given thresholds. The
// pricing table is needed because the price anomaly rule recomputes the
// rule-based price independently rather than reusing a cached value.
func NewEngine(cfg *config.ValidationConfig, pricingCfg *config.PricingConfig) *Engine {
	e := &Engine{cfg: cfg, pricing: pricingCfg}
	e.rules = []rule{
		{
			flag:       domain.FlagMissingQty,
			severity:   domain.SeverityHigh,
			suggestion: "Confirm the order quantity; the provided value was outside the feasible range",
			applies:    ruleMissingQty,
		},
		{
			flag:       domain.FlagRushConflict,
			severity:   domain.SeverityHigh,
			suggestion: "Confirm the turnaround time; it is below the minimum production time for this order",
			applies:    ruleRushConflict,
		},
		{
			flag:       domain.FlagPriceAnomaly,
			severity:   domain.SeverityMedium,
			suggestion: "Review the price against the rule-based estimate before quoting",
			applies:    rulePriceAnomaly,
		},
		{
			flag:       domain.FlagMaterialMismatch,
			severity:   domain.SeverityMedium,
			suggestion: "Review the material and print method for the quantity ordered",
			applies:    ruleMaterialMismatch,
		},
		{
			flag:       domain.FlagInvalidSize,
			severity:   domain.SeverityMedium,
			suggestion: "Confirm the dimensions; they fall outside standard press limits",
			applies:    ruleInvalidSize,
		},
		{
			flag:       domain.FlagFinishingConflict,
			severity:   domain.SeverityMedium,
			suggestion: "Choose a heavier stock or drop the lamination",
			applies:    ruleFinishingConflict,
		},
		{
			flag:       domain.FlagLowResArt,
			severity:   domain.SeverityLow,
			suggestion: "Request higher-resolution artwork",
			applies:    ruleLowResArt,
		},
	}
	return e
}

// Evaluate runs every rule independently and aggregates the triggered
// flags. The result is derived entirely from the input and recomputed on
// every call; it carries no state between estimations.
func (e *Engine) Evaluate(in Input) domain.ValidationResult {
	result := domain.ValidationResult{
		Valid:       true,
		Flags:       []string{},
		Severity:    domain.SeverityLow,
		Suggestions: []string{},
	}

	for _, r := range e.rules {
		if !r.applies(&in, e) {
			continue
		}
		result.Flags = append(result.Flags, r.flag)
		result.Suggestions = append(result.Suggestions, r.suggestion)
		if severityRank(r.severity) > severityRank(result.Severity) {
			result.Severity = r.severity
		}
		if r.severity == domain.SeverityHigh {
			result.Valid = false
		}
	}

	return result
}

func severityRank(s domain.FlagSeverity) int {
	switch s {
	case domain.SeverityHigh:
		return 3
	case domain.SeverityMedium:
		return 2
	default:
		return 1
	}
}

// ruleMissingQty fires when the quantity was non-positive or above the
// ceiling before normalization clamped it.
func ruleMissingQty(in *Input, e *Engine) bool {
	return in.Report.QuantityAdjusted
}

// ruleRushConflict fires when the requested turnaround is below minimum
// feasible production time: sub-day turnarounds are never feasible, and
// bulk runs cannot complete inside the bulk rush window.
func ruleRushConflict(in *Input, e *Engine) bool {
	if in.Spec.TurnaroundDays < e.cfg.MinTurnaroundDays {
		return true
	}
	return in.Spec.TurnaroundDays < e.cfg.BulkRushMinDays && in.Spec.Quantity > e.cfg.BulkRushQty
}

// rulePriceAnomaly recomputes the rule-based price and fires when the final
// total deviates beyond the anomaly threshold. Small orders get leniency on
// the high side because setup costs dominate them.
func rulePriceAnomaly(in *Input, e *Engine) bool {
	expected := pricing.Calculate(in.Spec, e.pricing).TotalPrice
	if expected <= 0 {
		return false
	}
	deviation := math.Abs(in.Breakdown.TotalPrice-expected) / expected
	if deviation <= e.cfg.AnomalyFlagThreshold {
		return false
	}
	if in.Spec.Quantity < e.cfg.SmallOrderQty && in.Breakdown.TotalPrice < expected*e.cfg.SmallOrderLeniencyFactor {
		return false
	}
	return true
}

// ruleMaterialMismatch fires when the raw grammage is infeasible or the
// chosen print method does not match its efficient quantity band.
func ruleMaterialMismatch(in *Input, e *Engine) bool {
	gsm := in.Spec.MaterialGSM
	if in.Report.RawGSM != nil {
		gsm = *in.Report.RawGSM
	}
	if gsm < e.cfg.GSMFeasibleMin || gsm > e.cfg.GSMFeasibleMax {
		return true
	}
	switch in.Breakdown.Method {
	case domain.MethodOffset:
		return in.Spec.Quantity < e.cfg.OffsetMinQty
	case domain.MethodDigital:
		return in.Spec.Quantity > e.cfg.DigitalMaxQty
	}
	return false
}

func ruleInvalidSize(in *Input, e *Engine) bool {
	if in.Spec.WidthMM < e.cfg.MinDimensionMM || in.Spec.HeightMM < e.cfg.MinDimensionMM {
		return true
	}
	return in.Spec.WidthMM > e.cfg.MaxWidthMM || in.Spec.HeightMM > e.cfg.MaxHeightMM
}

// ruleFinishingConflict fires for lamination on stock too thin to laminate
func ruleFinishingConflict(in *Input, e *Engine) bool {
	return in.Spec.Finishing == e.cfg.FinishingLaminate && in.Spec.MaterialGSM < e.cfg.LaminateMinGSM
}

func ruleLowResArt(in *Input, e *Engine) bool {
	return !in.Spec.ArtworkProvided && in.Spec.Quantity >= e.cfg.LowResArtMinQty
}
