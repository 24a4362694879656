package validation_test

import (
	"testing"

	"github.com/presswork-as/estimate-api/internal/config"
	"github.com/presswork-as/estimate-api/internal/domain"
	"github.com/presswork-as/estimate-api/internal/pricing"
	"github.com/presswork-as/estimate-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *validation.Engine {
	return validation.NewEngine(config.DefaultValidationConfig(), config.DefaultPricingConfig())
}

// cleanInput builds a specification that triggers no flags, priced by the
// rule engine so the anomaly rule sees no deviation.
func cleanInput() validation.Input {
	spec := domain.Specification{
		Quantity:        300,
		WidthMM:         210,
		HeightMM:        297,
		MaterialGSM:     120,
		Sides:           domain.SidesSingle,
		Finishing:       domain.FinishingNone,
		Urgency:         domain.UrgencyStandard,
		TurnaroundDays:  5,
		ArtworkProvided: true,
	}
	return validation.Input{
		Spec:      spec,
		Breakdown: pricing.Calculate(spec, config.DefaultPricingConfig()),
	}
}

func TestEvaluate_CleanSpecIsValid(t *testing.T) {
	result := newEngine().Evaluate(cleanInput())

	assert.True(t, result.Valid)
	assert.Empty(t, result.Flags)
	assert.Empty(t, result.Suggestions)
	assert.Equal(t, domain.SeverityLow, result.Severity)
}

func TestEvaluate_MissingQuantityIsHighSeverity(t *testing.T) {
	in := cleanInput()
	raw := 0
	in.Report = domain.NormalizationReport{RawQuantity: &raw, QuantityAdjusted: true}

	result := newEngine().Evaluate(in)

	assert.False(t, result.Valid)
	assert.True(t, result.HasFlag(domain.FlagMissingQty))
	assert.Equal(t, domain.SeverityHigh, result.Severity)
}

func TestEvaluate_RushConflict(t *testing.T) {
	t.Run("sub-day turnaround", func(t *testing.T) {
		in := cleanInput()
		in.Spec.TurnaroundDays = 0.5
		in.Breakdown = pricing.Calculate(in.Spec, config.DefaultPricingConfig())

		result := newEngine().Evaluate(in)
		assert.True(t, result.HasFlag(domain.FlagRushConflict))
		assert.False(t, result.Valid)
	})

	t.Run("bulk run inside bulk window", func(t *testing.T) {
		in := cleanInput()
		in.Spec.Quantity = 8000
		in.Spec.TurnaroundDays = 1.5
		in.Breakdown = pricing.Calculate(in.Spec, config.DefaultPricingConfig())

		result := newEngine().Evaluate(in)
		assert.True(t, result.HasFlag(domain.FlagRushConflict))
	})

	t.Run("one day is feasible for small runs", func(t *testing.T) {
		in := cleanInput()
		in.Spec.TurnaroundDays = 1
		in.Spec.Urgency = domain.UrgencyRush
		in.Spec.RushPremiumRate = 0.15
		in.Breakdown = pricing.Calculate(in.Spec, config.DefaultPricingConfig())

		result := newEngine().Evaluate(in)
		assert.False(t, result.HasFlag(domain.FlagRushConflict))
	})
}

func TestEvaluate_PriceAnomaly(t *testing.T) {
	t.Run("deviant total flagged", func(t *testing.T) {
		in := cleanInput()
		in.Breakdown.TotalPrice *= 2

		result := newEngine().Evaluate(in)
		assert.True(t, result.HasFlag(domain.FlagPriceAnomaly))
		assert.Equal(t, domain.SeverityMedium, result.Severity)
		// Medium flags do not invalidate
		assert.True(t, result.Valid)
	})

	t.Run("small order leniency on the high side", func(t *testing.T) {
		in := cleanInput()
		in.Spec.Quantity = 20
		expected := pricing.Calculate(in.Spec, config.DefaultPricingConfig())
		// Over the 50% threshold but under 3x expected
		in.Breakdown = expected
		in.Breakdown.TotalPrice = expected.TotalPrice * 2

		result := newEngine().Evaluate(in)
		assert.False(t, result.HasFlag(domain.FlagPriceAnomaly))
	})

	t.Run("small order still flagged past leniency", func(t *testing.T) {
		in := cleanInput()
		in.Spec.Quantity = 20
		expected := pricing.Calculate(in.Spec, config.DefaultPricingConfig())
		in.Breakdown = expected
		in.Breakdown.TotalPrice = expected.TotalPrice * 4

		result := newEngine().Evaluate(in)
		assert.True(t, result.HasFlag(domain.FlagPriceAnomaly))
	})
}

func TestEvaluate_MaterialMismatch(t *testing.T) {
	t.Run("raw grammage below feasible range", func(t *testing.T) {
		in := cleanInput()
		raw := 40
		in.Report = domain.NormalizationReport{RawGSM: &raw, GSMAdjusted: true}

		result := newEngine().Evaluate(in)
		assert.True(t, result.HasFlag(domain.FlagMaterialMismatch))
	})

	t.Run("digital method on oversized run", func(t *testing.T) {
		in := cleanInput()
		in.Spec.Quantity = 6000
		in.Breakdown = pricing.Calculate(in.Spec, config.DefaultPricingConfig())
		// Force the mismatch the rule looks for
		in.Breakdown.Method = domain.MethodDigital

		result := newEngine().Evaluate(in)
		assert.True(t, result.HasFlag(domain.FlagMaterialMismatch))
	})

	t.Run("offset method on tiny run", func(t *testing.T) {
		in := cleanInput()
		in.Spec.Quantity = 100
		in.Breakdown = pricing.Calculate(in.Spec, config.DefaultPricingConfig())
		in.Breakdown.Method = domain.MethodOffset

		result := newEngine().Evaluate(in)
		assert.True(t, result.HasFlag(domain.FlagMaterialMismatch))
	})
}

func TestEvaluate_InvalidSize(t *testing.T) {
	in := cleanInput()
	in.Spec.WidthMM = 30
	in.Breakdown = pricing.Calculate(in.Spec, config.DefaultPricingConfig())

	result := newEngine().Evaluate(in)
	assert.True(t, result.HasFlag(domain.FlagInvalidSize))

	in = cleanInput()
	in.Spec.HeightMM = 2000
	in.Breakdown = pricing.Calculate(in.Spec, config.DefaultPricingConfig())

	result = newEngine().Evaluate(in)
	assert.True(t, result.HasFlag(domain.FlagInvalidSize))
}

func TestEvaluate_FinishingConflict(t *testing.T) {
	in := cleanInput()
	in.Spec.Finishing = "laminate"
	in.Spec.MaterialGSM = 90
	in.Breakdown = pricing.Calculate(in.Spec, config.DefaultPricingConfig())

	result := newEngine().Evaluate(in)
	assert.True(t, result.HasFlag(domain.FlagFinishingConflict))

	in.Spec.MaterialGSM = 150
	in.Breakdown = pricing.Calculate(in.Spec, config.DefaultPricingConfig())
	result = newEngine().Evaluate(in)
	assert.False(t, result.HasFlag(domain.FlagFinishingConflict))
}

func TestEvaluate_LowResArtwork(t *testing.T) {
	in := cleanInput()
	in.Spec.ArtworkProvided = false

	result := newEngine().Evaluate(in)
	assert.True(t, result.HasFlag(domain.FlagLowResArt))
	assert.Equal(t, domain.SeverityLow, result.Severity)
	assert.True(t, result.Valid)

	// Small runs without artwork are not worth flagging
	in.Spec.Quantity = 100
	in.Breakdown = pricing.Calculate(in.Spec, config.DefaultPricingConfig())
	result = newEngine().Evaluate(in)
	assert.False(t, result.HasFlag(domain.FlagLowResArt))
}

func TestEvaluate_SeverityAggregatesToHighest(t *testing.T) {
	in := cleanInput()
	in.Spec.ArtworkProvided = false
	in.Spec.WidthMM = 30
	raw := -5
	in.Report = domain.NormalizationReport{RawQuantity: &raw, QuantityAdjusted: true}
	in.Breakdown = pricing.Calculate(in.Spec, config.DefaultPricingConfig())

	result := newEngine().Evaluate(in)

	require.NotEmpty(t, result.Flags)
	assert.Equal(t, domain.SeverityHigh, result.Severity)
	assert.False(t, result.Valid)
	assert.Len(t, result.Suggestions, len(result.Flags))
}
