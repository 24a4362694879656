package pricing

import (
	"fmt"
	"math"

	"github.com/presswork-as/estimate-api/internal/config"
	"github.com/presswork-as/estimate-api/internal/domain"
)

// PriceSource records which pricing source won reconciliation
type PriceSource string

const (
	// SourceRuleBased means no external proposal was available
	SourceRuleBased PriceSource = "rule_based"
	// SourceProposalAccepted means the external proposal was within tolerance
	SourceProposalAccepted PriceSource = "proposal_accepted"
	// SourceProposalOverridden means the proposal deviated too far and the
	// rule-based breakdown was used instead
	SourceProposalOverridden PriceSource = "proposal_overridden"
)

// ReconcileOutcome carries the chosen breakdown together with its
// provenance, so callers can audit which source won.
type ReconcileOutcome struct {
	Breakdown  domain.PricingBreakdown
	Source     PriceSource
	Overridden bool
	Note       string
}

// Reconcile compares an externally supplied proposal against the rule-based
// breakdown. External pricing sources may hallucinate magnitudes; the
// rule-based calculator is the ground truth, so any deviation beyond the
// override threshold discards the proposal entirely.
func Reconcile(ruleBased domain.PricingBreakdown, proposal *domain.PriceProposal, cfg *config.PricingConfig) ReconcileOutcome {
	if proposal == nil {
		return ReconcileOutcome{Breakdown: ruleBased, Source: SourceRuleBased}
	}

	deviation := math.Abs(proposal.TotalPrice-ruleBased.TotalPrice) / ruleBased.TotalPrice
	if deviation > cfg.DeviationOverrideThreshold {
		return ReconcileOutcome{
			Breakdown:  ruleBased,
			Source:     SourceProposalOverridden,
			Overridden: true,
			Note:       fmt.Sprintf("external pricing corrected: deviation %.1f%%", deviation*100),
		}
	}

	// Within tolerance: trust the proposal's structure, the enforcer still
	// guarantees its component-sum invariant afterwards.
	chosen := proposal.Breakdown
	chosen.TotalPrice = proposal.TotalPrice
	if chosen.Method == "" {
		chosen.Method = ruleBased.Method
	}
	return ReconcileOutcome{Breakdown: chosen, Source: SourceProposalAccepted}
}
