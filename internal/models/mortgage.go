package models

// Down payment input modes
const (
	DownPaymentPercent = "percent"
	DownPaymentDollar  = "dollar"
)

// LoanTerms represents a fixed-rate loan
type LoanTerms struct {
	Principal    float64 `json:"principal"`
	InterestRate float64 `json:"interest_rate"` // annual, percent
	TermYears    int     `json:"term_years"`
}

// MortgageInput represents a buyer's mortgage calculator request
type MortgageInput struct {
	HomePrice           float64  `json:"home_price"`
	DownPayment         float64  `json:"down_payment"`
	DownPaymentType     string   `json:"down_payment_type"` // "percent" or "dollar"
	InterestRate        float64  `json:"interest_rate"`
	LoanTermYears       int      `json:"loan_term_years"`
	PropertyTaxesAnnual float64  `json:"property_taxes_annual,omitempty"`
	HomeInsuranceAnnual float64  `json:"home_insurance_annual,omitempty"`
	HOAFeesMonthly      float64  `json:"hoa_fees_monthly,omitempty"`
	PMIMonthly          *float64 `json:"pmi_monthly,omitempty"` // nil means use the default PMI estimate
}

// MortgageBreakdown represents the monthly cost of a mortgage and its totals
type MortgageBreakdown struct {
	PrincipalAndInterest float64           `json:"principal_and_interest"`
	PropertyTaxesMonthly float64           `json:"property_taxes_monthly"`
	HomeInsuranceMonthly float64           `json:"home_insurance_monthly"`
	HOAFeesMonthly       float64           `json:"hoa_fees_monthly"`
	PMIMonthly           float64           `json:"pmi_monthly"`
	TotalMonthly         float64           `json:"total_monthly"`
	LoanAmount           float64           `json:"loan_amount"`
	DownPaymentAmount    float64           `json:"down_payment_amount"`
	TotalInterest        float64           `json:"total_interest"`
	TotalPayment         float64           `json:"total_payment"`
	Schedule             []AmortizationRow `json:"schedule"`
}

// AmortizationRow represents one period of a loan repayment schedule
type AmortizationRow struct {
	Month            int     `json:"month"`
	Year             int     `json:"year"`
	Payment          float64 `json:"payment"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// AffordabilityInput represents a buyer's affordability request
type AffordabilityInput struct {
	HomePrice           float64  `json:"home_price"`
	DownPayment         float64  `json:"down_payment"`
	DownPaymentType     string   `json:"down_payment_type"`
	InterestRate        float64  `json:"interest_rate"`
	LoanTermYears       int      `json:"loan_term_years"`
	PropertyTaxesAnnual float64  `json:"property_taxes_annual,omitempty"`
	HomeInsuranceAnnual float64  `json:"home_insurance_annual,omitempty"`
	HOAFeesMonthly      float64  `json:"hoa_fees_monthly,omitempty"`
	PMIMonthly          *float64 `json:"pmi_monthly,omitempty"`
	AnnualIncome        float64  `json:"annual_income,omitempty"`
	MonthlyDebts        float64  `json:"monthly_debts,omitempty"`
}

// AffordabilityResult represents the buyer's monthly payment and cash needed at closing
type AffordabilityResult struct {
	PrincipalAndInterest float64  `json:"principal_and_interest"`
	PropertyTaxesMonthly float64  `json:"property_taxes_monthly"`
	HomeInsuranceMonthly float64  `json:"home_insurance_monthly"`
	HOAFeesMonthly       float64  `json:"hoa_fees_monthly"`
	PMIMonthly           float64  `json:"pmi_monthly"`
	TotalMonthly         float64  `json:"total_monthly"`
	LoanAmount           float64  `json:"loan_amount"`
	DownPaymentAmount    float64  `json:"down_payment_amount"`
	ClosingCosts         float64  `json:"closing_costs"`
	CashToClose          float64  `json:"cash_to_close"`
	HousingRatio         *float64 `json:"housing_ratio,omitempty"`
	DebtToIncome         *float64 `json:"debt_to_income,omitempty"`
	WithinGuidelines     *bool    `json:"within_guidelines,omitempty"`
}

// MortgageRequest is a MortgageInput whose interest rate may be omitted,
// in which case the current market rate for the term is used
type MortgageRequest struct {
	MortgageInput
	InterestRate *float64 `json:"interest_rate,omitempty"`
}

// AffordabilityRequest is an AffordabilityInput whose interest rate may be omitted
type AffordabilityRequest struct {
	AffordabilityInput
	InterestRate *float64 `json:"interest_rate,omitempty"`
}
