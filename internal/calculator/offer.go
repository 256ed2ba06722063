package calculator

import (
	"github.com/Dan9191/realty-service/internal/models"
)

// DefaultClosingDays is assumed when the buyer leaves the timeline blank.
const DefaultClosingDays = 30

var financingScores = map[string]int{
	models.FinancingCash:         20,
	models.FinancingConventional: 18,
	models.FinancingVA:           15,
	models.FinancingFHA:          12,
}

// Offer tiers
const (
	TierVeryStrong       = "Very Strong"
	TierStrong           = "Strong"
	TierCompetitive      = "Competitive"
	TierNeedsImprovement = "Needs Improvement"
)

// ScoreOffer rates an offer out of 100 on price, down payment, financing,
// appraisal gap coverage, closing timeline and concessions.
func ScoreOffer(in models.OfferInput) (models.OfferScore, error) {
	v := &validator{}
	v.positiveAmount("offer_price", in.OfferPrice)
	v.positiveAmount("list_price", in.ListPrice)
	v.percent("down_payment_percent", in.DownPaymentPercent)
	financing, ok := financingScores[in.FinancingType]
	if !ok {
		v.add("financing_type", "must be one of cash, conventional, va, fha")
	}
	v.amount("appraisal_gap", in.AppraisalGap)
	if in.ClosingDays < 0 {
		v.add("closing_days", "must not be negative")
	}
	v.amount("concessions", in.Concessions)
	if err := v.err(); err != nil {
		return models.OfferScore{}, err
	}

	closingDays := in.ClosingDays
	if closingDays == 0 {
		closingDays = DefaultClosingDays
	}

	b := models.OfferBreakdown{
		Price:        priceScore(in.OfferPrice / in.ListPrice),
		DownPayment:  downPaymentScore(in.DownPaymentPercent),
		Financing:    financing,
		AppraisalGap: appraisalGapScore(in.AppraisalGap),
		Timeline:     timelineScore(closingDays),
		Concessions:  concessionsScore(in.Concessions),
	}

	score := models.OfferScore{
		TotalScore:      b.Total(),
		Breakdown:       b,
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: []string{},
	}
	score.Tier = tier(score.TotalScore)
	describeOffer(&score, in.FinancingType)
	return score, nil
}

func priceScore(ratio float64) int {
	switch {
	case ratio >= 1.05:
		return 30
	case ratio >= 1.00:
		return 28
	case ratio >= 0.98:
		return 25
	case ratio >= 0.95:
		return 20
	default:
		return 15
	}
}

func downPaymentScore(percent float64) int {
	switch {
	case percent >= 20:
		return 20
	case percent >= 10:
		return 15
	case percent >= 5:
		return 10
	default:
		return 5
	}
}

func appraisalGapScore(gap float64) int {
	switch {
	case gap >= 10000:
		return 15
	case gap >= 5000:
		return 12
	case gap > 0:
		return 8
	default:
		return 0
	}
}

func timelineScore(days int) int {
	switch {
	case days <= 21:
		return 10
	case days <= 30:
		return 8
	case days <= 45:
		return 6
	default:
		return 4
	}
}

func concessionsScore(amount float64) int {
	switch {
	case amount == 0:
		return 5
	case amount <= 2000:
		return 3
	default:
		return 1
	}
}

func tier(total int) string {
	switch {
	case total >= 85:
		return TierVeryStrong
	case total >= 70:
		return TierStrong
	case total >= 55:
		return TierCompetitive
	default:
		return TierNeedsImprovement
	}
}

func describeOffer(s *models.OfferScore, financingType string) {
	b := s.Breakdown
	strength := func(msg string) { s.Strengths = append(s.Strengths, msg) }
	weakness := func(msg, rec string) {
		s.Weaknesses = append(s.Weaknesses, msg)
		s.Recommendations = append(s.Recommendations, rec)
	}

	switch {
	case b.Price >= 28:
		strength("Strong offer price at or above list")
	case b.Price < 20:
		weakness("Offer is well below list price",
			"Consider raising your offer closer to list price")
	}

	switch {
	case b.DownPayment >= 15:
		strength("Solid down payment")
	case b.DownPayment < 10:
		weakness("Low down payment",
			"Increase your down payment or show proof of reserves")
	}

	switch {
	case financingType == models.FinancingCash:
		strength("Cash offer with no financing contingency")
	case b.Financing >= 18:
		strength("Conventional financing")
	case b.Financing < 15:
		weakness("FHA financing carries stricter appraisal and repair requirements",
			"Include a strong pre-approval letter from a local lender")
	}

	switch {
	case b.AppraisalGap >= 12:
		strength("Appraisal gap coverage protects the seller")
	case b.AppraisalGap == 0:
		weakness("No appraisal gap coverage",
			"Offer to cover part of any appraisal shortfall")
	}

	switch {
	case b.Timeline >= 8:
		strength("Quick closing timeline")
	case b.Timeline <= 4:
		weakness("Long closing timeline",
			"Shorten your closing to 30 days or less")
	}

	switch {
	case b.Concessions == 5:
		strength("No seller concessions requested")
	case b.Concessions == 1:
		weakness("Large seller concessions requested",
			"Reduce requested concessions or build them into the price")
	}
}
