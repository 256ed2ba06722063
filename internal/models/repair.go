package models

// Repair priorities
const (
	PriorityMustFix    = "must-fix"
	PriorityHighROI    = "high-roi"
	PriorityNiceToHave = "nice-to-have"
)

// RepairInput holds the reported condition label per category.
// Empty, "good" and "none" mean nothing to fix.
type RepairInput struct {
	Roof       string `json:"roof,omitempty"`
	HVAC       string `json:"hvac,omitempty"`
	Paint      string `json:"paint,omitempty"`
	Flooring   string `json:"flooring,omitempty"`
	Kitchen    string `json:"kitchen,omitempty"`
	Bathrooms  string `json:"bathrooms,omitempty"`
	Foundation string `json:"foundation,omitempty"`
}

// RepairItem represents the estimated cost of one repair category
type RepairItem struct {
	Category  string  `json:"category"`
	Condition string  `json:"condition"`
	LowCost   float64 `json:"low_cost"`
	HighCost  float64 `json:"high_cost"`
	Priority  string  `json:"priority"`
	ROIImpact string  `json:"roi_impact"`
}

// RepairEstimate represents all repair items and their totals
type RepairEstimate struct {
	Items        []RepairItem `json:"items"`
	TotalLow     float64      `json:"total_low"`
	TotalHigh    float64      `json:"total_high"`
	MustFixTotal float64      `json:"must_fix_total"`
	HighROITotal float64      `json:"high_roi_total"`
}
