package domain

import "strings"

const (
	// SubCategoryAll is the sentinel sub-category: "unfiltered" on the filter side,
	// "belongs to every sub-category" on the resource side.
	SubCategoryAll = "all"

	// CollectionAll selects every collection in a Filter.
	CollectionAll = "all"

	// DefaultCollectionID receives the resources of a deleted collection.
	DefaultCollectionID = "general"

	// allChipLabel is the display label of the sentinel chip.
	allChipLabel = "All"
)

// Collection is a top-level grouping of resources.
type Collection struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Icon        string `json:"icon" yaml:"icon"`
	Description string `json:"description" yaml:"description"`

	// SubCategories is ordered (it drives filter-chip order), distinct,
	// and never contains the reserved "all" label in any case.
	SubCategories []string `json:"subCategories" yaml:"subCategories"`
}

// IsReservedLabel reports whether label collides with the sentinel.
func IsReservedLabel(label string) bool {
	return strings.EqualFold(strings.TrimSpace(label), SubCategoryAll)
}

// HasSubCategory reports whether label is declared on c (case-sensitive).
func (c Collection) HasSubCategory(label string) bool {
	for _, s := range c.SubCategories {
		if s == label {
			return true
		}
	}
	return false
}

// SubCategoryChips returns the filter chips of a collection: its labels
// followed by the "All" chip.
func SubCategoryChips(c Collection) []string {
	chips := make([]string, 0, len(c.SubCategories)+1)
	chips = append(chips, c.SubCategories...)
	return append(chips, allChipLabel)
}

// DefaultSubCategory is the filter selected when a collection is opened:
// its first label, or the sentinel when it declares none.
func DefaultSubCategory(c Collection) string {
	if len(c.SubCategories) > 0 {
		return c.SubCategories[0]
	}
	return SubCategoryAll
}
