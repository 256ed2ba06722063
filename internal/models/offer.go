package models

// Financing types
const (
	FinancingCash         = "cash"
	FinancingConventional = "conventional"
	FinancingVA           = "va"
	FinancingFHA          = "fha"
)

// OfferInput represents a buyer's offer to be scored
type OfferInput struct {
	OfferPrice         float64 `json:"offer_price"`
	ListPrice          float64 `json:"list_price"`
	DownPaymentPercent float64 `json:"down_payment_percent"`
	FinancingType      string  `json:"financing_type"`
	AppraisalGap       float64 `json:"appraisal_gap,omitempty"`
	ClosingDays        int     `json:"closing_days,omitempty"` // 0 means the 30 day default
	Concessions        float64 `json:"concessions,omitempty"`
}

// OfferBreakdown holds the six sub-scores; maxima are 30/20/20/15/10/5
type OfferBreakdown struct {
	Price        int `json:"price"`
	DownPayment  int `json:"down_payment"`
	Financing    int `json:"financing"`
	AppraisalGap int `json:"appraisal_gap"`
	Timeline     int `json:"timeline"`
	Concessions  int `json:"concessions"`
}

// Total sums the sub-scores
func (b OfferBreakdown) Total() int {
	return b.Price + b.DownPayment + b.Financing + b.AppraisalGap + b.Timeline + b.Concessions
}

// OfferScore represents the strength of an offer on a 0-100 scale
type OfferScore struct {
	TotalScore      int            `json:"total_score"`
	Tier            string         `json:"tier"`
	Breakdown       OfferBreakdown `json:"breakdown"`
	Strengths       []string       `json:"strengths"`
	Weaknesses      []string       `json:"weaknesses"`
	Recommendations []string       `json:"recommendations"`
}
