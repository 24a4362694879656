package pricing

import (
	"math"

	"github.com/presswork-as/estimate-api/internal/config"
	"github.com/presswork-as/estimate-api/internal/domain"
)

// Enforce guarantees that the breakdown's components sum exactly to its
// total. Setup, paper, printing, finishing and rush fee represent
// externally meaningful costs and are never touched; margin is the
// residual. If closing the gap would drive margin negative the breakdown
// is treated as broken and the rule-based fallback is returned instead,
// with fellBack reporting that the correction happened.
func Enforce(chosen, fallback domain.PricingBreakdown, cfg *config.PricingConfig) (result domain.PricingBreakdown, fellBack bool) {
	if math.Abs(chosen.ComponentSum()-chosen.TotalPrice) <= cfg.BreakdownEpsilon {
		return chosen, false
	}

	residual := chosen.TotalPrice - (chosen.SetupCost + chosen.PaperCost + chosen.PrintingCost + chosen.FinishingCost + chosen.RushFee)
	if residual < 0 {
		return fallback, true
	}

	chosen.Margin = residual
	return chosen, false
}
