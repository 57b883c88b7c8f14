package renderer

import (
	"slices"

	"github.com/etnz/dashboard"
)

func containsCategory(categories []dashboard.Category, c dashboard.Category) bool {
	return slices.Contains(categories, c)
}

// sortCategories sorts in display order, a nil order only knows the fixed categories.
func sortCategories(categories []dashboard.Category, order *dashboard.CategoryOrder) {
	slices.SortFunc(categories, order.Compare)
}
