package catalog

import (
	"fmt"

	"github.com/MrSnakeDoc/curator/internal/domain"
)

// AddSubCategory appends label to collection id.
// A label already on the collection (case-sensitive) leaves it unchanged.
func (e *Editor) AddSubCategory(wc domain.WorkingCopy, collectionID, label string) (domain.WorkingCopy, error) {
	idx := wc.CollectionIndex(collectionID)
	if idx < 0 {
		return wc, fmt.Errorf("%w: %s", ErrCollectionNotFound, collectionID)
	}

	clean := domain.Sanitize(label)
	if clean == "" {
		return wc, ErrEmptyLabel
	}
	if domain.IsReservedLabel(clean) {
		return wc, ErrReservedSubCategory
	}
	if wc.Collections[idx].HasSubCategory(clean) {
		return wc, nil
	}

	out := wc.Clone()
	out.Collections[idx].SubCategories = append(out.Collections[idx].SubCategories, clean)
	return out, nil
}

// RemoveSubCategory drops the label at index. Resources of that collection
// carrying the label fall back to the sentinel.
func (e *Editor) RemoveSubCategory(wc domain.WorkingCopy, collectionID string, index int) (domain.WorkingCopy, error) {
	idx := wc.CollectionIndex(collectionID)
	if idx < 0 {
		return wc, fmt.Errorf("%w: %s", ErrCollectionNotFound, collectionID)
	}
	subs := wc.Collections[idx].SubCategories
	if index < 0 || index >= len(subs) {
		return wc, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	removed := subs[index]

	out := wc.Clone()
	col := &out.Collections[idx]
	col.SubCategories = append(col.SubCategories[:index], col.SubCategories[index+1:]...)
	for i := range out.Resources {
		r := &out.Resources[i]
		if r.Category == collectionID && r.SubCategory == removed {
			r.SubCategory = domain.SubCategoryAll
		}
	}
	return out, nil
}

// RenameSubCategory replaces the label at index in place. A label held by
// another index (case-sensitive) is rejected.
//
// Resources already tagged with the old label keep it; they then behave
// like the sentinel until re-tagged.
func (e *Editor) RenameSubCategory(wc domain.WorkingCopy, collectionID string, index int, newLabel string) (domain.WorkingCopy, error) {
	idx := wc.CollectionIndex(collectionID)
	if idx < 0 {
		return wc, fmt.Errorf("%w: %s", ErrCollectionNotFound, collectionID)
	}
	if index < 0 || index >= len(wc.Collections[idx].SubCategories) {
		return wc, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	clean := domain.Sanitize(newLabel)
	if clean == "" {
		return wc, ErrEmptyLabel
	}
	if domain.IsReservedLabel(clean) {
		return wc, ErrReservedSubCategory
	}
	for i, s := range wc.Collections[idx].SubCategories {
		if i != index && s == clean {
			return wc, fmt.Errorf("%w: %s", ErrDuplicateSubCategory, clean)
		}
	}

	out := wc.Clone()
	out.Collections[idx].SubCategories[index] = clean
	return out, nil
}

// MoveSubCategory swaps the label at index with its neighbour.
func (e *Editor) MoveSubCategory(wc domain.WorkingCopy, collectionID string, index int, dir Direction) (domain.WorkingCopy, error) {
	if dir != Up && dir != Down {
		return wc, ErrUnknownDirection
	}
	idx := wc.CollectionIndex(collectionID)
	if idx < 0 {
		return wc, fmt.Errorf("%w: %s", ErrCollectionNotFound, collectionID)
	}
	target, ok := swapTarget(index, len(wc.Collections[idx].SubCategories), dir)
	if !ok {
		return wc, nil
	}

	out := wc.Clone()
	subs := out.Collections[idx].SubCategories
	subs[index], subs[target] = subs[target], subs[index]
	return out, nil
}
