package discovery

import (
	"sort"

	"stayfinder/internal/domain"
)

// ranked pairs a surviving property with its computed distance in geo mode.
type ranked struct {
	prop       domain.Property
	distanceKm float64
}

// sortByDistance orders geo-mode survivors by ascending distance, ties broken
// by ascending id so identical requests always produce identical pages.
func sortByDistance(items []ranked) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].distanceKm != items[j].distanceKm {
			return items[i].distanceKm < items[j].distanceKm
		}
		return items[i].prop.ID < items[j].prop.ID
	})
}

// sortCatalog orders properties by the selected comparator. Every comparator
// breaks ties by ascending id.
func sortCatalog(props []domain.Property, s Sort) {
	var less func(a, b domain.Property) bool
	switch s {
	case SortPriceLow:
		less = func(a, b domain.Property) bool { return a.StartingPrice < b.StartingPrice }
	case SortPriceHigh:
		less = func(a, b domain.Property) bool { return a.StartingPrice > b.StartingPrice }
	case SortRating:
		less = func(a, b domain.Property) bool { return a.Rating > b.Rating }
	default: // popularity
		less = func(a, b domain.Property) bool { return a.TotalReviews > b.TotalReviews }
	}
	sort.Slice(props, func(i, j int) bool {
		a, b := props[i], props[j]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return a.ID < b.ID
	})
}
