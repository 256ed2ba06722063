package calculator

import (
	"github.com/Dan9191/realty-service/internal/models"
)

const (
	// FallbackPricePerSqFt applies when no neighborhood context is known.
	FallbackPricePerSqFt = 150.0
	// UpgradeBonus is added to the multiplier for each recent upgrade.
	UpgradeBonus = 0.02
	// ValueVariance is the spread on either side of the mid estimate.
	ValueVariance = 0.12

	// Input ceilings, well past any single-family home.
	MaxSquareFeet   = 100000.0
	MaxPricePerSqFt = 10000.0
)

var conditionMultipliers = map[string]float64{
	models.ConditionExcellent: 1.10,
	models.ConditionGood:      1.00,
	models.ConditionFair:      0.95,
	models.ConditionNeedsWork: 0.85,
}

var validTimelines = map[string]bool{
	models.TimelineASAP:       true,
	models.TimelineOneToThree: true,
	models.TimelineThreeToSix: true,
	models.TimelineExploring:  true,
}

// EstimateValue produces a low/mid/high value range from size, price per
// square foot, condition and upgrades, and picks a list strategy from the
// seller's timeline.
func EstimateValue(in models.HomeValueInput) (models.ValueEstimate, error) {
	v := &validator{}
	v.positive("square_feet", in.SquareFeet)
	v.atMost("square_feet", in.SquareFeet, MaxSquareFeet)
	v.nonNegative("price_per_sqft", in.PricePerSqFt)
	v.atMost("price_per_sqft", in.PricePerSqFt, MaxPricePerSqFt)

	multiplier, conditionKnown := 1.0, in.Condition != ""
	if conditionKnown {
		m, ok := conditionMultipliers[in.Condition]
		if !ok {
			v.add("condition", "unknown condition %q", in.Condition)
		}
		multiplier = m
	}
	if !validTimelines[in.Timeline] {
		if in.Timeline == "" {
			v.add("timeline", "is required")
		} else {
			v.add("timeline", "unknown timeline %q", in.Timeline)
		}
	}
	if err := v.err(); err != nil {
		return models.ValueEstimate{}, err
	}

	pricePerSqFt, contextKnown := in.PricePerSqFt, in.PricePerSqFt > 0
	if !contextKnown {
		pricePerSqFt = FallbackPricePerSqFt
	}

	bonus := UpgradeBonus * float64(countUpgrades(in.Upgrades))
	base := in.SquareFeet * pricePerSqFt * multiplier * (1 + bonus)
	variance := base * ValueVariance
	if err := checkFinite("square_feet", base, base-variance, base+variance); err != nil {
		return models.ValueEstimate{}, err
	}

	est := models.ValueEstimate{
		LowEstimate:  roundThousand(base - variance),
		MidEstimate:  roundThousand(base),
		HighEstimate: roundThousand(base + variance),
		PricePerSqFt: pricePerSqFt,
	}

	switch in.Timeline {
	case models.TimelineASAP:
		est.SuggestedStrategy = models.StrategyAggressive
		est.SuggestedPrice = est.LowEstimate
	case models.TimelineOneToThree:
		est.SuggestedStrategy = models.StrategyMarket
		est.SuggestedPrice = est.MidEstimate
	default:
		est.SuggestedStrategy = models.StrategyTestHigh
		est.SuggestedPrice = est.HighEstimate
	}

	switch {
	case contextKnown:
		est.Confidence = models.ConfidenceHigh
	case conditionKnown:
		est.Confidence = models.ConfidenceMedium
	default:
		est.Confidence = models.ConfidenceLow
	}

	return est, nil
}

func countUpgrades(u models.Upgrades) int {
	n := 0
	for _, done := range []bool{u.Kitchen, u.Bath, u.Flooring, u.HVAC, u.Roof} {
		if done {
			n++
		}
	}
	return n
}
