package models

// MarketRates represents the latest weekly average mortgage rates
type MarketRates struct {
	Date        string  `json:"date"` // Format: YYYY-MM-DD
	ThirtyYear  float64 `json:"thirty_year"`
	FifteenYear float64 `json:"fifteen_year"`
	Source      string  `json:"source"` // "feed", "cache" or "fallback"
}

// RateFor picks the rate matching a loan term
func (m MarketRates) RateFor(termYears int) float64 {
	if termYears <= 15 {
		return m.FifteenYear
	}
	return m.ThirtyYear
}

// Neighborhood represents price context for an area we serve
type Neighborhood struct {
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	Zips         []string `json:"zips"`
	PricePerSqFt float64  `json:"price_per_sqft"`
}
