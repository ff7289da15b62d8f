package domain

import "strings"

// Filter is the visitor's current view: which collection and sub-category
// chip are active, the search box, and whether only bookmarks are shown.
type Filter struct {
	Collection    string // collection ID or CollectionAll
	SubCategory   string // label or SubCategoryAll
	Search        string // free text, matched against title and description
	BookmarksOnly bool
}

// NewFilter builds a Filter from raw inputs.
// Empty collection and sub-category default to their sentinels; the search
// text is trimmed and lower-cased once here.
// Examples:
//   - NewFilter("", "", " Markov ", false) -> all/all/"markov"
//   - NewFilter("modelling", "PSA", "", false) -> modelling/PSA/""
func NewFilter(collection, subCategory, search string, bookmarksOnly bool) Filter {
	if collection == "" {
		collection = CollectionAll
	}
	if subCategory == "" || IsReservedLabel(subCategory) {
		subCategory = SubCategoryAll
	}
	return Filter{
		Collection:    collection,
		SubCategory:   subCategory,
		Search:        strings.ToLower(strings.TrimSpace(search)),
		BookmarksOnly: bookmarksOnly,
	}
}

// Visible returns the resources matching f, in storage order.
// There is no ranking: a resource either matches every active predicate or
// it is dropped.
func Visible(resources []Resource, f Filter, bookmarks BookmarkSet) []Resource {
	out := make([]Resource, 0, len(resources))

	if f.BookmarksOnly {
		saved := bookmarks.lookup()
		for _, r := range resources {
			if _, ok := saved[r.ID]; ok {
				out = append(out, r)
			}
		}
		return out
	}

	search := strings.ToLower(f.Search)
	for _, r := range resources {
		if !matchesCollection(r, f.Collection) {
			continue
		}
		if !matchesSubCategory(r, f.SubCategory) {
			continue
		}
		if !matchesSearch(r, search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesCollection(r Resource, collection string) bool {
	return collection == "" || collection == CollectionAll || r.Category == collection
}

func matchesSubCategory(r Resource, sub string) bool {
	if sub == "" || sub == SubCategoryAll {
		return true
	}
	return strings.EqualFold(r.SubCategory, sub)
}

func matchesSearch(r Resource, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Title), search) ||
		strings.Contains(strings.ToLower(r.Description), search)
}
