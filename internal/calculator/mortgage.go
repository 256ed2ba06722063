package calculator

import (
	"github.com/Dan9191/realty-service/internal/models"
)

const (
	// PMIThreshold is the down payment share at which lenders drop PMI.
	PMIThreshold = 0.20
	// DefaultPMIRate is the annual PMI estimate applied to the loan amount.
	DefaultPMIRate = 0.005

	// ratioEpsilon absorbs float error when comparing the down payment share.
	ratioEpsilon = 1e-9
)

// paymentTerms is the input shared by the mortgage and affordability tools.
type paymentTerms struct {
	homePrice       float64
	downPayment     float64
	downPaymentType string
	interestRate    float64
	termYears       int
	taxesAnnual     float64
	insuranceAnnual float64
	hoaMonthly      float64
	pmiMonthly      *float64
}

type monthlyCosts struct {
	payment     float64 // unrounded P&I, used for the schedule
	principal   float64 // rounded P&I
	taxes       float64
	insurance   float64
	hoa         float64
	pmi         float64
	total       float64
	loanAmount  float64
	downPayment float64
	numPayments int
	monthlyRate float64
}

func (p paymentTerms) validate(v *validator) {
	v.positiveAmount("home_price", p.homePrice)
	v.nonNegative("down_payment", p.downPayment)
	v.nonNegative("interest_rate", p.interestRate)
	v.atMost("interest_rate", p.interestRate, MaxInterestRate)
	v.termYears("loan_term_years", p.termYears)
	v.amount("property_taxes_annual", p.taxesAnnual)
	v.amount("home_insurance_annual", p.insuranceAnnual)
	v.amount("hoa_fees_monthly", p.hoaMonthly)
	if p.pmiMonthly != nil {
		v.amount("pmi_monthly", *p.pmiMonthly)
	}

	switch p.downPaymentType {
	case models.DownPaymentPercent:
		if p.downPayment > 100 {
			v.add("down_payment", "percent down payment cannot exceed 100")
		}
	case models.DownPaymentDollar:
		if p.homePrice > 0 && p.downPayment > p.homePrice {
			v.add("down_payment", "down payment cannot exceed the home price")
		}
	default:
		v.add("down_payment_type", "must be %q or %q", models.DownPaymentPercent, models.DownPaymentDollar)
	}
}

func (p paymentTerms) downPaymentAmount() float64 {
	if p.downPaymentType == models.DownPaymentPercent {
		return p.homePrice * p.downPayment / 100
	}
	return p.downPayment
}

func (p paymentTerms) compute() (monthlyCosts, error) {
	v := &validator{}
	p.validate(v)
	if err := v.err(); err != nil {
		return monthlyCosts{}, err
	}

	c := monthlyCosts{
		downPayment: p.downPaymentAmount(),
		numPayments: NumPayments(p.termYears),
		monthlyRate: MonthlyRate(p.interestRate),
	}
	c.loanAmount = p.homePrice - c.downPayment
	if c.loanAmount < 0 {
		return monthlyCosts{}, ValidationErrors{{Field: "down_payment", Message: "down payment cannot exceed the home price"}}
	}

	if c.loanAmount > 0 {
		c.payment = monthlyPayment(c.loanAmount, c.monthlyRate, c.numPayments)
		if err := checkFinite("interest_rate", c.payment); err != nil {
			return monthlyCosts{}, err
		}
	}

	c.principal = roundCents(c.payment)
	c.taxes = roundCents(p.taxesAnnual / 12)
	c.insurance = roundCents(p.insuranceAnnual / 12)
	c.hoa = roundCents(p.hoaMonthly)

	if c.downPayment/p.homePrice < PMIThreshold-ratioEpsilon {
		if p.pmiMonthly != nil {
			c.pmi = roundCents(*p.pmiMonthly)
		} else {
			c.pmi = roundCents(c.loanAmount * DefaultPMIRate / 12)
		}
	}

	c.total = sumCents(c.principal, c.taxes, c.insurance, c.hoa, c.pmi)
	return c, nil
}

// Mortgage breaks a purchase down into its monthly cost and lifetime totals,
// with a yearly-sampled amortization schedule.
func Mortgage(in models.MortgageInput) (models.MortgageBreakdown, error) {
	c, err := paymentTerms{
		homePrice:       in.HomePrice,
		downPayment:     in.DownPayment,
		downPaymentType: in.DownPaymentType,
		interestRate:    in.InterestRate,
		termYears:       in.LoanTermYears,
		taxesAnnual:     in.PropertyTaxesAnnual,
		insuranceAnnual: in.HomeInsuranceAnnual,
		hoaMonthly:      in.HOAFeesMonthly,
		pmiMonthly:      in.PMIMonthly,
	}.compute()
	if err != nil {
		return models.MortgageBreakdown{}, err
	}

	totalPayment := roundCents(c.principal * float64(c.numPayments))
	loanAmount := roundCents(c.loanAmount)
	// cent rounding of a zero-rate payment can land a few cents under the loan
	totalInterest := sumCents(totalPayment, -loanAmount)
	if totalInterest < 0 {
		totalInterest = 0
	}

	schedule := []models.AmortizationRow{}
	if c.loanAmount > 0 {
		for _, row := range SampleYearly(amortize(c.loanAmount, c.monthlyRate, c.numPayments, c.payment)) {
			schedule = append(schedule, models.AmortizationRow{
				Month:            row.Month,
				Year:             row.Year,
				Payment:          roundCents(row.Payment),
				Principal:        roundCents(row.Principal),
				Interest:         roundCents(row.Interest),
				RemainingBalance: roundCents(row.RemainingBalance),
			})
		}
	}

	return models.MortgageBreakdown{
		PrincipalAndInterest: c.principal,
		PropertyTaxesMonthly: c.taxes,
		HomeInsuranceMonthly: c.insurance,
		HOAFeesMonthly:       c.hoa,
		PMIMonthly:           c.pmi,
		TotalMonthly:         c.total,
		LoanAmount:           loanAmount,
		DownPaymentAmount:    roundCents(c.downPayment),
		TotalInterest:        totalInterest,
		TotalPayment:         totalPayment,
		Schedule:             schedule,
	}, nil
}
