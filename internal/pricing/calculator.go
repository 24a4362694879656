package pricing

import (
	"github.com/presswork-as/estimate-api/internal/config"
	"github.com/presswork-as/estimate-api/internal/domain"
)

// SelectMethod chooses the print method for a quantity. Digital is the
// default below the efficiency ceiling; in the overlap band where offset
// also becomes viable, the cheaper of the two wins and ties go to digital
// since it has no minimum run penalty.
func SelectMethod(quantity int, cfg *config.PricingConfig) domain.PrintMethod {
	if quantity >= cfg.DigitalEfficiencyMax {
		return domain.MethodOffset
	}
	if quantity > cfg.OffsetEfficiencyMin {
		digital := cfg.DigitalSetupCost + float64(quantity)*cfg.DigitalUnitRate
		offset := cfg.OffsetSetupCost + float64(quantity)*cfg.OffsetUnitRate
		if offset < digital {
			return domain.MethodOffset
		}
	}
	return domain.MethodDigital
}

// Calculate produces a deterministic cost breakdown for a fully normalized
// specification. The component-sum invariant holds by construction: no
// intermediate rounding is applied, display rounding happens in the mapper.
func Calculate(spec domain.Specification, cfg *config.PricingConfig) domain.PricingBreakdown {
	method := SelectMethod(spec.Quantity, cfg)
	qty := float64(spec.Quantity)
	area := spec.AreaSqm()

	var setup, unitRate float64
	if method == domain.MethodDigital {
		setup = cfg.DigitalSetupCost
		unitRate = cfg.DigitalUnitRate
	} else {
		setup = cfg.OffsetSetupCost
		unitRate = cfg.OffsetUnitRate
	}

	// Paper cost scales linearly with grammage from the baseline stock
	paper := qty * area * cfg.BasePaperRate * (float64(spec.MaterialGSM) / float64(cfg.GSMBaseline))
	if area >= cfg.PhotoPremiumMinAreaSqm && spec.MaterialGSM >= cfg.PhotoPremiumMinGSM {
		paper += qty * area * cfg.PhotoPremiumRate
	}

	printing := qty * unitRate
	if spec.Sides == domain.SidesDouble {
		// Duplex shares the sheet, so less than twice the single-sided cost
		printing *= cfg.DuplexMultiplier
	}

	finishing := qty * cfg.FinishingRates[spec.Finishing]

	subtotal := setup + paper + printing + finishing
	rushFee := subtotal * spec.RushPremiumRate
	margin := (subtotal + rushFee) * marginRate(spec.Quantity, cfg)

	return domain.PricingBreakdown{
		Method:        method,
		SetupCost:     setup,
		PaperCost:     paper,
		PrintingCost:  printing,
		FinishingCost: finishing,
		RushFee:       rushFee,
		Margin:        margin,
		TotalPrice:    subtotal + rushFee + margin,
	}
}

// marginRate returns the margin percentage for an order size. Small orders
// carry a higher margin to cover handling, bulk orders a competitive one.
func marginRate(quantity int, cfg *config.PricingConfig) float64 {
	switch {
	case quantity < cfg.SmallOrderQty:
		return cfg.MarginRateSmallOrder
	case quantity > cfg.BulkOrderQty:
		return cfg.MarginRateBulkOrder
	default:
		return cfg.MarginRate
	}
}
