package calculator

import (
	"github.com/Dan9191/realty-service/internal/models"
)

// Default seller-side rates, in percent of the sale price.
const (
	DefaultCommissionRate   = 6.0
	DefaultClosingCostsRate = 2.0
)

// NetProceeds subtracts every seller deduction from the sale price.
// The result is not floored: an underwater sale comes back negative.
func NetProceeds(in models.NetProceedsInput) (models.NetProceedsResult, error) {
	commissionRate := DefaultCommissionRate
	if in.CommissionRate != nil {
		commissionRate = *in.CommissionRate
	}
	closingRate := DefaultClosingCostsRate
	if in.ClosingCostsRate != nil {
		closingRate = *in.ClosingCostsRate
	}

	v := &validator{}
	v.positiveAmount("sale_price", in.SalePrice)
	v.amount("mortgage_balance", in.MortgageBalance)
	v.percent("commission_rate", commissionRate)
	v.percent("closing_costs_rate", closingRate)
	v.amount("repair_credits", in.RepairCredits)
	v.amount("liens", in.Liens)
	if err := v.err(); err != nil {
		return models.NetProceedsResult{}, err
	}

	breakdown := models.NetProceedsBreakdown{
		Commission:     roundCents(in.SalePrice * commissionRate / 100),
		ClosingCosts:   roundCents(in.SalePrice * closingRate / 100),
		MortgagePayoff: roundCents(in.MortgageBalance),
		RepairCredits:  roundCents(in.RepairCredits),
		Liens:          roundCents(in.Liens),
	}
	total := sumCents(
		breakdown.Commission,
		breakdown.ClosingCosts,
		breakdown.MortgagePayoff,
		breakdown.RepairCredits,
		breakdown.Liens,
	)
	salePrice := roundCents(in.SalePrice)
	net := sumCents(salePrice, -total)

	return models.NetProceedsResult{
		SalePrice:       salePrice,
		TotalDeductions: total,
		NetProceeds:     net,
		Underwater:      net < 0,
		Breakdown:       breakdown,
	}, nil
}
