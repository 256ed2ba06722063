package models

// NetProceedsInput represents a seller's net sheet request
type NetProceedsInput struct {
	SalePrice        float64  `json:"sale_price"`
	MortgageBalance  float64  `json:"mortgage_balance,omitempty"`
	CommissionRate   *float64 `json:"commission_rate,omitempty"`    // percent, defaults to 6
	ClosingCostsRate *float64 `json:"closing_costs_rate,omitempty"` // percent, defaults to 2
	RepairCredits    float64  `json:"repair_credits,omitempty"`
	Liens            float64  `json:"liens,omitempty"`
}

// NetProceedsBreakdown lists every deduction from the sale price
type NetProceedsBreakdown struct {
	Commission     float64 `json:"commission"`
	ClosingCosts   float64 `json:"closing_costs"`
	MortgagePayoff float64 `json:"mortgage_payoff"`
	RepairCredits  float64 `json:"repair_credits"`
	Liens          float64 `json:"liens"`
}

// NetProceedsResult represents the cash a seller walks away with.
// NetProceeds may be negative for an underwater sale.
type NetProceedsResult struct {
	SalePrice       float64              `json:"sale_price"`
	TotalDeductions float64              `json:"total_deductions"`
	NetProceeds     float64              `json:"net_proceeds"`
	Underwater      bool                 `json:"underwater"`
	Breakdown       NetProceedsBreakdown `json:"breakdown"`
}
