package domain

// BookmarkSet holds the resource IDs saved by the current profile, in the
// order they were added. It is personal data: version bumps and catalogue
// resets never touch it.
type BookmarkSet []string

// Contains reports whether id is bookmarked.
func (b BookmarkSet) Contains(id string) bool {
	for _, v := range b {
		if v == id {
			return true
		}
	}
	return false
}

// Toggle returns a new set with id added (at the end) or removed, and
// whether it was added.
func (b BookmarkSet) Toggle(id string) (BookmarkSet, bool) {
	if b.Contains(id) {
		out := make(BookmarkSet, 0, len(b)-1)
		for _, v := range b {
			if v != id {
				out = append(out, v)
			}
		}
		return out, false
	}
	out := make(BookmarkSet, 0, len(b)+1)
	out = append(out, b...)
	return append(out, id), true
}

func (b BookmarkSet) lookup() map[string]struct{} {
	m := make(map[string]struct{}, len(b))
	for _, v := range b {
		m[v] = struct{}{}
	}
	return m
}

// ViewMode is the grid/list display preference.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// ParseViewMode accepts "grid" or "list".
func ParseViewMode(s string) (ViewMode, bool) {
	switch ViewMode(s) {
	case ViewGrid, ViewList:
		return ViewMode(s), true
	default:
		return "", false
	}
}
