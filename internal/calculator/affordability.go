package calculator

import (
	"github.com/Dan9191/realty-service/internal/models"
)

const (
	// ClosingCostRate is the flat share of the price buyers budget for closing.
	ClosingCostRate = 0.03

	// Conventional qualifying ratios.
	MaxHousingRatio = 0.28
	MaxDebtToIncome = 0.36
)

// Affordability estimates the buyer's monthly payment and cash to close.
// When an income is supplied the result also carries qualifying ratios.
func Affordability(in models.AffordabilityInput) (models.AffordabilityResult, error) {
	v := &validator{}
	v.amount("annual_income", in.AnnualIncome)
	v.amount("monthly_debts", in.MonthlyDebts)
	terms := paymentTerms{
		homePrice:       in.HomePrice,
		downPayment:     in.DownPayment,
		downPaymentType: in.DownPaymentType,
		interestRate:    in.InterestRate,
		termYears:       in.LoanTermYears,
		taxesAnnual:     in.PropertyTaxesAnnual,
		insuranceAnnual: in.HomeInsuranceAnnual,
		hoaMonthly:      in.HOAFeesMonthly,
		pmiMonthly:      in.PMIMonthly,
	}
	terms.validate(v)
	if err := v.err(); err != nil {
		return models.AffordabilityResult{}, err
	}

	c, err := terms.compute()
	if err != nil {
		return models.AffordabilityResult{}, err
	}

	closingCosts := roundCents(in.HomePrice * ClosingCostRate)
	downPayment := roundCents(c.downPayment)

	result := models.AffordabilityResult{
		PrincipalAndInterest: c.principal,
		PropertyTaxesMonthly: c.taxes,
		HomeInsuranceMonthly: c.insurance,
		HOAFeesMonthly:       c.hoa,
		PMIMonthly:           c.pmi,
		TotalMonthly:         c.total,
		LoanAmount:           roundCents(c.loanAmount),
		DownPaymentAmount:    downPayment,
		ClosingCosts:         closingCosts,
		CashToClose:          sumCents(downPayment, closingCosts),
	}

	if in.AnnualIncome > 0 {
		monthlyIncome := in.AnnualIncome / 12
		housingRaw := c.total / monthlyIncome
		dtiRaw := (c.total + in.MonthlyDebts) / monthlyIncome
		if err := checkFinite("annual_income", housingRaw, dtiRaw); err != nil {
			return models.AffordabilityResult{}, err
		}
		housing := ratio(housingRaw)
		dti := ratio(dtiRaw)
		within := housing <= MaxHousingRatio && dti <= MaxDebtToIncome
		result.HousingRatio = &housing
		result.DebtToIncome = &dti
		result.WithinGuidelines = &within
	}

	return result, nil
}

// ratio rounds to four decimals.
func ratio(value float64) float64 {
	return roundTo(value, 4)
}
