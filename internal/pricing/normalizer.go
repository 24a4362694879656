// Package pricing implements the deterministic pricing engine for print
// orders: specification normalization, the rule-based cost calculator,
// reconciliation of externally proposed prices, and breakdown enforcement.
// All functions are pure; policy rates come from the configuration table.
package pricing

import (
	"math"
	"strings"

	"github.com/presswork-as/estimate-api/internal/config"
	"github.com/presswork-as/estimate-api/internal/domain"
)

// Normalize fills missing specification fields with policy defaults and
// clamps out-of-range values. The report records raw values that were
// adjusted so validation can flag them later. Structurally invalid input
// (non-finite or negative numbers) yields a MalformedSpecError.
func Normalize(in *domain.SpecInput, cfg *config.PricingConfig) (domain.Specification, domain.NormalizationReport, error) {
	var (
		spec   domain.Specification
		report domain.NormalizationReport
	)

	if in == nil {
		in = &domain.SpecInput{}
	}

	// Quantity: absent or non-positive falls back to the policy default,
	// values above the ceiling are clamped. Both adjustments are reported.
	spec.Quantity = cfg.QuantityDefault
	if in.Quantity != nil {
		q := *in.Quantity
		switch {
		case q <= 0:
			report.RawQuantity = &q
			report.QuantityAdjusted = true
		case q > cfg.QuantityMax:
			report.RawQuantity = &q
			report.QuantityAdjusted = true
			spec.Quantity = cfg.QuantityMax
		default:
			spec.Quantity = q
		}
	}

	// Dimensions default to A4
	spec.WidthMM = cfg.DefaultWidthMM
	if in.WidthMM != nil {
		w := *in.WidthMM
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return spec, report, domain.NewMalformedSpecError("width_mm", "must be a positive number")
		}
		spec.WidthMM = w
	}
	spec.HeightMM = cfg.DefaultHeightMM
	if in.HeightMM != nil {
		h := *in.HeightMM
		if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
			return spec, report, domain.NewMalformedSpecError("height_mm", "must be a positive number")
		}
		spec.HeightMM = h
	}

	// Grammage is clamped into the policy band; the raw value is kept so
	// validation can still flag infeasible stock.
	spec.MaterialGSM = cfg.GSMDefault
	if in.MaterialGSM != nil {
		g := *in.MaterialGSM
		switch {
		case g < cfg.GSMMin:
			report.RawGSM = &g
			report.GSMAdjusted = true
			spec.MaterialGSM = cfg.GSMMin
		case g > cfg.GSMMax:
			report.RawGSM = &g
			report.GSMAdjusted = true
			spec.MaterialGSM = cfg.GSMMax
		default:
			spec.MaterialGSM = g
		}
	}

	spec.Sides = domain.SidesSingle
	if in.Sides != nil && strings.EqualFold(*in.Sides, string(domain.SidesDouble)) {
		spec.Sides = domain.SidesDouble
	}

	spec.Finishing = domain.FinishingNone
	if in.Finishing != nil {
		if f := strings.ToLower(strings.TrimSpace(*in.Finishing)); f != "" {
			spec.Finishing = f
		}
	}

	spec.TurnaroundDays = cfg.DefaultTurnaroundDays
	if in.TurnaroundDays != nil {
		t := *in.TurnaroundDays
		if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			return spec, report, domain.NewMalformedSpecError("turnaround_days", "must be a non-negative number")
		}
		spec.TurnaroundDays = t
	}

	// Urgency is derived from the turnaround: one day or less carries the
	// full rush premium, two days a reduced one.
	spec.Urgency = domain.UrgencyStandard
	switch {
	case spec.TurnaroundDays <= 1:
		spec.Urgency = domain.UrgencyRush
		spec.RushPremiumRate = cfg.RushPremium1Day
	case spec.TurnaroundDays <= 2:
		spec.Urgency = domain.UrgencyRush
		spec.RushPremiumRate = cfg.RushPremium2Day
	}

	spec.ArtworkProvided = in.ArtworkProvided

	return spec, report, nil
}
