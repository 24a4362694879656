package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/presswork-as/estimate-api/internal/config"
	"github.com/presswork-as/estimate-api/internal/domain"
	"github.com/presswork-as/estimate-api/internal/mapper"
	"github.com/presswork-as/estimate-api/internal/pricing"
	"github.com/presswork-as/estimate-api/internal/repository"
	"github.com/presswork-as/estimate-api/internal/validation"
	"go.uber.org/zap"
)

// ProposalClient fetches an external price proposal for a specification.
// Implementations may fail or time out; the estimation pipeline treats a
// missing proposal as a normal condition and prices rule-based instead.
type ProposalClient interface {
	ProposePrice(ctx context.Context, spec domain.Specification) (*domain.PriceProposal, error)
}

// EstimateService runs the full estimation pipeline: normalization,
// rule-based pricing, reconciliation against the external proposal,
// breakdown enforcement, validation and persistence.
type EstimateService struct {
	orderRepo    *repository.OrderRepository
	estimateRepo *repository.EstimateRepository
	auditService *AuditLogService
	proposals    ProposalClient
	engine       *validation.Engine
	cfg          *config.Config
	logger       *zap.Logger
}

// NewEstimateService creates a new estimate service. proposals may be nil
// when no external pricing service is configured.
func NewEstimateService(
	orderRepo *repository.OrderRepository,
	estimateRepo *repository.EstimateRepository,
	auditService *AuditLogService,
	proposals ProposalClient,
	engine *validation.Engine,
	cfg *config.Config,
	logger *zap.Logger,
) *EstimateService {
	return &EstimateService{
		orderRepo:    orderRepo,
		estimateRepo: estimateRepo,
		auditService: auditService,
		proposals:    proposals,
		engine:       engine,
		cfg:          cfg,
		logger:       logger,
	}
}

// Estimate prices and validates an order specification, persisting the
// order, the estimate and the audit trail of every pricing decision.
func (s *EstimateService) Estimate(ctx context.Context, req *domain.EstimateRequest) (*domain.EstimateResponse, error) {
	spec, report, err := pricing.Normalize(&req.Specs, &s.cfg.Pricing)
	if err != nil {
		var malformed *domain.MalformedSpecError
		if errors.As(err, &malformed) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to normalize specification: %w", err)
	}

	ruleBased := pricing.Calculate(spec, &s.cfg.Pricing)

	proposal := s.fetchProposal(ctx, spec)

	outcome := pricing.Reconcile(ruleBased, proposal, &s.cfg.Pricing)
	if outcome.Overridden {
		s.logger.Warn("external price proposal overridden",
			zap.Float64("proposed", proposal.TotalPrice),
			zap.Float64("rule_based", ruleBased.TotalPrice),
		)
	}

	final, fellBack := pricing.Enforce(outcome.Breakdown, ruleBased, &s.cfg.Pricing)
	source := outcome.Source
	note := outcome.Note
	if fellBack {
		source = pricing.SourceProposalOverridden
		note = "external breakdown inconsistent, replaced with rule-based pricing"
	}

	result := s.engine.Evaluate(validation.Input{
		Spec:      spec,
		Breakdown: final,
		Report:    report,
	})

	order, estimate, err := s.persist(ctx, req, spec, final, string(source), note, result)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, order, estimate, outcome, fellBack, proposal, ruleBased)

	s.logger.Info("estimate created",
		zap.String("order_id", order.ID.String()),
		zap.String("estimate_id", estimate.ID.String()),
		zap.Float64("total_price", final.TotalPrice),
		zap.String("price_source", string(source)),
		zap.Bool("valid", result.Valid),
		zap.Strings("flags", result.Flags),
	)

	return &domain.EstimateResponse{
		OrderID:    order.ID,
		EstimateID: estimate.ID,
		Specs:      spec,
		Pricing: domain.PricingDTO{
			TotalPrice:  mapper.Round2(final.TotalPrice),
			Breakdown:   mapper.ToPricingBreakdownDTO(final),
			Source:      string(source),
			Competitors: pricing.CompetitorQuotes(final.TotalPrice),
		},
		Validation:     mapper.ToValidationResultDTO(result),
		CorrectionNote: note,
	}, nil
}

// fetchProposal asks the external pricing service for a proposal. Any
// failure degrades to rule-based pricing; the call is bounded by the
// configured timeout so a slow collaborator cannot stall estimation.
func (s *EstimateService) fetchProposal(ctx context.Context, spec domain.Specification) *domain.PriceProposal {
	if s.proposals == nil {
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.AIPricer.TimeoutDuration())
	defer cancel()

	proposal, err := s.proposals.ProposePrice(callCtx, spec)
	if err != nil {
		s.logger.Warn("price proposal unavailable, falling back to rule-based pricing", zap.Error(err))
		return nil
	}
	return proposal
}

func (s *EstimateService) persist(
	ctx context.Context,
	req *domain.EstimateRequest,
	spec domain.Specification,
	final domain.PricingBreakdown,
	source, note string,
	result domain.ValidationResult,
) (*domain.PrintOrder, *domain.Estimate, error) {
	specsJSON, err := json.Marshal(spec)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode specification: %w", err)
	}
	breakdownJSON, err := json.Marshal(final)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode breakdown: %w", err)
	}

	inputType := req.Input
	if inputType == "" {
		inputType = domain.InputTypeAPI
	}

	order := &domain.PrintOrder{
		InputType:       inputType,
		RawInput:        req.RawInput,
		Status:          domain.OrderStatusEstimated,
		Specs:           string(specsJSON),
		ArtworkProvided: spec.ArtworkProvided,
		Valid:           result.Valid,
		Severity:        string(result.Severity),
		Flags:           result.Flags,
		TurnaroundDays:  spec.TurnaroundDays,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, nil, fmt.Errorf("failed to create print order: %w", err)
	}

	estimate := &domain.Estimate{
		OrderID:        order.ID,
		TotalPrice:     final.TotalPrice,
		Breakdown:      string(breakdownJSON),
		PriceSource:    source,
		CorrectionNote: note,
		Status:         domain.EstimateStatusActive,
		ExpiresAt:      time.Now().UTC().Add(s.cfg.Jobs.EstimateTTL()),
	}
	if err := s.estimateRepo.Create(ctx, estimate); err != nil {
		return nil, nil, fmt.Errorf("failed to create estimate: %w", err)
	}

	return order, estimate, nil
}

func (s *EstimateService) audit(
	ctx context.Context,
	order *domain.PrintOrder,
	estimate *domain.Estimate,
	outcome pricing.ReconcileOutcome,
	fellBack bool,
	proposal *domain.PriceProposal,
	ruleBased domain.PricingBreakdown,
) {
	s.auditService.Record(ctx, domain.AuditActionEstimateCreated, "estimate", &estimate.ID, map[string]interface{}{
		"order_id":     order.ID,
		"total_price":  estimate.TotalPrice,
		"price_source": estimate.PriceSource,
	})

	if outcome.Overridden && proposal != nil {
		s.auditService.Record(ctx, domain.AuditActionProposalOverridden, "estimate", &estimate.ID, map[string]interface{}{
			"proposed_total":   proposal.TotalPrice,
			"rule_based_total": ruleBased.TotalPrice,
			"note":             outcome.Note,
		})
	}

	if fellBack {
		s.auditService.Record(ctx, domain.AuditActionBreakdownCorrected, "estimate", &estimate.ID, map[string]interface{}{
			"reason": "component sum exceeded total, margin residual negative",
		})
	}
}
