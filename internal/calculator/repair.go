package calculator

import (
	"github.com/Dan9191/realty-service/internal/models"
)

// Repair categories, in the order items are reported.
const (
	CategoryRoof       = "roof"
	CategoryHVAC       = "hvac"
	CategoryPaint      = "paint"
	CategoryFlooring   = "flooring"
	CategoryKitchen    = "kitchen"
	CategoryBathrooms  = "bathrooms"
	CategoryFoundation = "foundation"
)

type repairCost struct {
	low, high float64
	priority  string
	roi       string
}

// repairCosts holds Northeast Houston market-rate ranges per category and
// condition. Baseline conditions ("good", "none") are not listed.
var repairCosts = map[string]map[string]repairCost{
	CategoryRoof: {
		"repair":  {800, 2500, models.PriorityHighROI, "Clears inspection objections and keeps the roof insurable"},
		"replace": {9000, 16000, models.PriorityMustFix, "Buyers and insurers flag an old roof; expect it to surface in every inspection"},
	},
	CategoryHVAC: {
		"service": {200, 600, models.PriorityHighROI, "Cheap tune-up that heads off inspection repair requests"},
		"replace": {6500, 12000, models.PriorityMustFix, "A failing system in Houston heat stalls showings and financing"},
	},
	CategoryPaint: {
		"interior": {2500, 6000, models.PriorityHighROI, "Fresh neutral paint returns more than it costs in listing photos"},
		"exterior": {3500, 8000, models.PriorityHighROI, "Improves curb appeal and first impressions"},
		"both":     {6000, 14000, models.PriorityHighROI, "Full refresh, strongest effect on photos and showings"},
	},
	CategoryFlooring: {
		"partial": {2000, 5000, models.PriorityHighROI, "Replaces worn high-traffic areas buyers notice first"},
		"full":    {8000, 18000, models.PriorityHighROI, "Updated flooring lifts perceived value across the whole house"},
	},
	CategoryKitchen: {
		"minor": {3000, 10000, models.PriorityHighROI, "Hardware, fixtures and paint recoup most of their cost"},
		"major": {25000, 60000, models.PriorityNiceToHave, "Full remodels rarely pay back before a sale"},
	},
	CategoryBathrooms: {
		"minor": {1500, 5000, models.PriorityHighROI, "Fixtures, vanity and caulk updates show well for little spend"},
		"major": {10000, 25000, models.PriorityNiceToHave, "Full remodels rarely pay back before a sale"},
	},
	CategoryFoundation: {
		"minor": {2500, 6000, models.PriorityMustFix, "Lenders and buyers expect foundation movement to be addressed"},
		"major": {10000, 30000, models.PriorityMustFix, "Structural issues can block financing entirely"},
	},
}

var repairOrder = []string{
	CategoryRoof,
	CategoryHVAC,
	CategoryPaint,
	CategoryFlooring,
	CategoryKitchen,
	CategoryBathrooms,
	CategoryFoundation,
}

func isBaselineCondition(label string) bool {
	return label == "" || label == "good" || label == "none"
}

// EstimateRepairs looks up a cost range for each category that needs work.
// Priority totals use only the low end of each range.
func EstimateRepairs(in models.RepairInput) (models.RepairEstimate, error) {
	reported := map[string]string{
		CategoryRoof:       in.Roof,
		CategoryHVAC:       in.HVAC,
		CategoryPaint:      in.Paint,
		CategoryFlooring:   in.Flooring,
		CategoryKitchen:    in.Kitchen,
		CategoryBathrooms:  in.Bathrooms,
		CategoryFoundation: in.Foundation,
	}

	v := &validator{}
	est := models.RepairEstimate{Items: []models.RepairItem{}}
	for _, category := range repairOrder {
		condition := reported[category]
		if isBaselineCondition(condition) {
			continue
		}
		cost, ok := repairCosts[category][condition]
		if !ok {
			v.add(category, "unknown condition %q", condition)
			continue
		}
		est.Items = append(est.Items, models.RepairItem{
			Category:  category,
			Condition: condition,
			LowCost:   cost.low,
			HighCost:  cost.high,
			Priority:  cost.priority,
			ROIImpact: cost.roi,
		})
	}
	if err := v.err(); err != nil {
		return models.RepairEstimate{}, err
	}

	for _, item := range est.Items {
		est.TotalLow += item.LowCost
		est.TotalHigh += item.HighCost
		switch item.Priority {
		case models.PriorityMustFix:
			est.MustFixTotal += item.LowCost
		case models.PriorityHighROI:
			est.HighROITotal += item.LowCost
		}
	}
	return est, nil
}
