// Package neighborhoods holds the price context for the Northeast Houston
// areas the brokerage covers. Values are refreshed by hand from MLS closed
// sales; the home value tool falls back to a flat price when an area is not
// listed here.
package neighborhoods

import (
	"sort"

	"github.com/Dan9191/realty-service/internal/leads"
	"github.com/Dan9191/realty-service/internal/models"
)

var areas = []models.Neighborhood{
	{Name: "Atascocita", Zips: []string{"77346", "77396"}, PricePerSqFt: 148},
	{Name: "Kingwood", Zips: []string{"77339", "77345"}, PricePerSqFt: 165},
	{Name: "Humble", Zips: []string{"77338"}, PricePerSqFt: 138},
	{Name: "Summerwood", Zips: []string{"77044"}, PricePerSqFt: 142},
	{Name: "Fall Creek", Zips: []string{"77396"}, PricePerSqFt: 155},
	{Name: "Lake Houston", Zips: []string{"77336"}, PricePerSqFt: 171},
	{Name: "Huffman", Zips: []string{"77336"}, PricePerSqFt: 152},
	{Name: "Crosby", Zips: []string{"77532"}, PricePerSqFt: 140},
	{Name: "Eagle Springs", Zips: []string{"77346"}, PricePerSqFt: 150},
	{Name: "Porter", Zips: []string{"77365"}, PricePerSqFt: 136},
}

var bySlug = func() map[string]models.Neighborhood {
	m := make(map[string]models.Neighborhood, len(areas))
	for i := range areas {
		areas[i].Slug = leads.Slugify(areas[i].Name)
		m[areas[i].Slug] = areas[i]
	}
	return m
}()

// Lookup finds a neighborhood by display name or slug, case-insensitively.
func Lookup(name string) (models.Neighborhood, bool) {
	n, ok := bySlug[leads.Slugify(name)]
	return n, ok
}

// ByZip returns the first neighborhood that covers zip.
func ByZip(zip string) (models.Neighborhood, bool) {
	for _, n := range All() {
		for _, z := range n.Zips {
			if z == zip {
				return n, true
			}
		}
	}
	return models.Neighborhood{}, false
}

// All returns every neighborhood sorted by name.
func All() []models.Neighborhood {
	out := make([]models.Neighborhood, 0, len(bySlug))
	for _, n := range bySlug {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
