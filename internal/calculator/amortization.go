// Package calculator holds the pure financial calculations behind the site's
// buyer and seller tools. Functions here do no I/O and keep no state.
package calculator

import (
	"math"

	"github.com/Dan9191/realty-service/internal/models"
)

const (
	// MaxInterestRate is the highest annual rate, in percent, accepted anywhere.
	MaxInterestRate = 100.0
	// MaxTermYears is the longest loan term accepted.
	MaxTermYears = 50
)

// MonthlyRate converts an annual percentage rate to a monthly decimal rate.
func MonthlyRate(annualPercent float64) float64 {
	return annualPercent / 100 / 12
}

// NumPayments returns the number of monthly payments for a term in years.
func NumPayments(termYears int) int {
	return termYears * 12
}

// MonthlyPayment returns the level payment that retires loanAmount over
// numPayments months at monthlyRate. A zero rate is a straight-line payoff.
func MonthlyPayment(loanAmount, monthlyRate float64, numPayments int) (float64, error) {
	v := &validator{}
	v.positiveAmount("loan_amount", loanAmount)
	v.nonNegative("monthly_rate", monthlyRate)
	v.atMost("monthly_rate", monthlyRate, MonthlyRate(MaxInterestRate))
	if numPayments <= 0 {
		v.add("num_payments", "must be greater than 0")
	} else if numPayments > NumPayments(MaxTermYears) {
		v.add("num_payments", "must not exceed %d", NumPayments(MaxTermYears))
	}
	if err := v.err(); err != nil {
		return 0, err
	}
	payment := monthlyPayment(loanAmount, monthlyRate, numPayments)
	if err := checkFinite("monthly_rate", payment); err != nil {
		return 0, err
	}
	return payment, nil
}

// LoanPayment is MonthlyPayment expressed in loan terms.
func LoanPayment(terms models.LoanTerms) (float64, error) {
	v := &validator{}
	v.positiveAmount("principal", terms.Principal)
	v.nonNegative("interest_rate", terms.InterestRate)
	v.atMost("interest_rate", terms.InterestRate, MaxInterestRate)
	v.termYears("term_years", terms.TermYears)
	if err := v.err(); err != nil {
		return 0, err
	}
	payment := monthlyPayment(terms.Principal, MonthlyRate(terms.InterestRate), NumPayments(terms.TermYears))
	if err := checkFinite("interest_rate", payment); err != nil {
		return 0, err
	}
	return payment, nil
}

func monthlyPayment(loanAmount, r float64, n int) float64 {
	if r == 0 {
		return loanAmount / float64(n)
	}
	growth := math.Pow(1+r, float64(n))
	return loanAmount * (r * growth) / (growth - 1)
}

// AmortizationSchedule returns one row per month. Balances never go below
// zero and the final row always closes at exactly zero.
func AmortizationSchedule(loanAmount, monthlyRate float64, numPayments int) ([]models.AmortizationRow, error) {
	payment, err := MonthlyPayment(loanAmount, monthlyRate, numPayments)
	if err != nil {
		return nil, err
	}
	return amortize(loanAmount, monthlyRate, numPayments, payment), nil
}

func amortize(loanAmount, r float64, n int, payment float64) []models.AmortizationRow {
	rows := make([]models.AmortizationRow, 0, n)
	balance := loanAmount
	for month := 1; month <= n; month++ {
		interest := balance * r
		principal := payment - interest
		balance -= principal
		if balance < 0 || month == n {
			balance = 0
		}
		rows = append(rows, models.AmortizationRow{
			Month:            month,
			Year:             (month + 11) / 12,
			Payment:          payment,
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: balance,
		})
	}
	return rows
}

// SampleYearly keeps month 1 and every 12th month.
func SampleYearly(rows []models.AmortizationRow) []models.AmortizationRow {
	sampled := make([]models.AmortizationRow, 0, len(rows)/12+1)
	for _, row := range rows {
		if row.Month == 1 || row.Month%12 == 0 {
			sampled = append(sampled, row)
		}
	}
	return sampled
}
