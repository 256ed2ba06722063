package models

// Property conditions
const (
	ConditionExcellent = "excellent"
	ConditionGood      = "good"
	ConditionFair      = "fair"
	ConditionNeedsWork = "needs-work"
)

// Selling timelines
const (
	TimelineASAP       = "asap"
	TimelineOneToThree = "1-3-months"
	TimelineThreeToSix = "3-6-months"
	TimelineExploring  = "exploring"
)

// Pricing strategies
const (
	StrategyAggressive = "aggressive"
	StrategyMarket     = "market"
	StrategyTestHigh   = "test-high"
)

// Estimate confidence levels
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Upgrades flags recent improvements to the home
type Upgrades struct {
	Kitchen  bool `json:"kitchen"`
	Bath     bool `json:"bath"`
	Flooring bool `json:"flooring"`
	HVAC     bool `json:"hvac"`
	Roof     bool `json:"roof"`
}

// HomeValueInput represents a seller's home value request
type HomeValueInput struct {
	SquareFeet   float64  `json:"square_feet"`
	PricePerSqFt float64  `json:"price_per_sqft,omitempty"` // neighborhood context, 0 when unknown
	Neighborhood string   `json:"neighborhood,omitempty"`
	Condition    string   `json:"condition,omitempty"`
	Upgrades     Upgrades `json:"upgrades"`
	Timeline     string   `json:"timeline"`
}

// ValueEstimate represents a value range and a suggested list strategy
type ValueEstimate struct {
	LowEstimate       float64 `json:"low_estimate"`
	MidEstimate       float64 `json:"mid_estimate"`
	HighEstimate      float64 `json:"high_estimate"`
	SuggestedPrice    float64 `json:"suggested_price"`
	SuggestedStrategy string  `json:"suggested_strategy"`
	Confidence        string  `json:"confidence"`
	PricePerSqFt      float64 `json:"price_per_sqft"`
}
