package service

import (
	"context"
	"errors"

	"github.com/Dan9191/realty-service/internal/calculator"
	"github.com/Dan9191/realty-service/internal/models"
	"github.com/Dan9191/realty-service/internal/neighborhoods"
)

// Calculator names used in metrics and logs
const (
	CalcMortgage      = "mortgage"
	CalcAffordability = "affordability"
	CalcNetProceeds   = "net-proceeds"
	CalcHomeValue     = "home-value"
	CalcRepairs       = "repairs"
	CalcOfferScore    = "offer-score"
)

func (s *Service) observe(name string, err error) {
	var verrs calculator.ValidationErrors
	switch {
	case err == nil:
		s.metrics.RecordCalculation(name)
	case errors.As(err, &verrs):
		s.metrics.RecordValidationError(name)
		s.log.WithField("calculator", name).Debugf("Rejected input: %v", err)
	default:
		s.log.WithField("calculator", name).Errorf("Calculation failed: %v", err)
	}
}

// Mortgage computes the monthly breakdown, using the market rate when none is given
func (s *Service) Mortgage(ctx context.Context, req models.MortgageRequest) (models.MortgageBreakdown, error) {
	in := req.MortgageInput
	if req.InterestRate != nil {
		in.InterestRate = *req.InterestRate
	} else {
		in.InterestRate = s.CurrentRates(ctx).RateFor(in.LoanTermYears)
		s.log.Debugf("Using market rate %.3f%% for %d year mortgage", in.InterestRate, in.LoanTermYears)
	}

	out, err := calculator.Mortgage(in)
	s.observe(CalcMortgage, err)
	return out, err
}

// Affordability computes the payment and cash to close, using the market rate when none is given
func (s *Service) Affordability(ctx context.Context, req models.AffordabilityRequest) (models.AffordabilityResult, error) {
	in := req.AffordabilityInput
	if req.InterestRate != nil {
		in.InterestRate = *req.InterestRate
	} else {
		in.InterestRate = s.CurrentRates(ctx).RateFor(in.LoanTermYears)
	}

	out, err := calculator.Affordability(in)
	s.observe(CalcAffordability, err)
	return out, err
}

// NetProceeds estimates what a seller walks away with
func (s *Service) NetProceeds(in models.NetProceedsInput) (models.NetProceedsResult, error) {
	out, err := calculator.NetProceeds(in)
	s.observe(CalcNetProceeds, err)
	return out, err
}

// EstimateValue estimates a home's value. A known neighborhood supplies the
// price per square foot when the request carries none.
func (s *Service) EstimateValue(in models.HomeValueInput) (models.ValueEstimate, error) {
	if in.PricePerSqFt == 0 && in.Neighborhood != "" {
		if n, ok := neighborhoods.Lookup(in.Neighborhood); ok {
			in.PricePerSqFt = n.PricePerSqFt
		} else {
			s.log.Debugf("No price context for neighborhood %q", in.Neighborhood)
		}
	}

	out, err := calculator.EstimateValue(in)
	s.observe(CalcHomeValue, err)
	return out, err
}

// EstimateRepairs prices the repairs implied by the reported conditions
func (s *Service) EstimateRepairs(in models.RepairInput) (models.RepairEstimate, error) {
	out, err := calculator.EstimateRepairs(in)
	s.observe(CalcRepairs, err)
	return out, err
}

// ScoreOffer rates a buyer's offer against the list price
func (s *Service) ScoreOffer(in models.OfferInput) (models.OfferScore, error) {
	out, err := calculator.ScoreOffer(in)
	s.observe(CalcOfferScore, err)
	return out, err
}
