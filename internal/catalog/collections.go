package catalog

import (
	"fmt"

	"github.com/MrSnakeDoc/curator/internal/domain"
)

// CollectionField names an editable collection attribute.
type CollectionField string

const (
	FieldName                  CollectionField = "name"
	FieldIcon                  CollectionField = "icon"
	FieldCollectionDescription CollectionField = "description"
)

// AddCollection appends a placeholder collection and returns its ID.
func (e *Editor) AddCollection(wc domain.WorkingCopy) (domain.WorkingCopy, string) {
	id := customCollectionPrefix + truncate(e.newID(), 5)

	out := wc.Clone()
	out.Collections = append(out.Collections, domain.Collection{
		ID:            id,
		Name:          newCollectionName,
		Icon:          newCollectionIcon,
		SubCategories: []string{newCollectionSubCategory},
	})
	return out, id
}

// UpdateCollectionField sets one field of collection id. Name and
// description are sanitized.
func (e *Editor) UpdateCollectionField(wc domain.WorkingCopy, id string, field CollectionField, value string) (domain.WorkingCopy, error) {
	idx := wc.CollectionIndex(id)
	if idx < 0 {
		return wc, fmt.Errorf("%w: %s", ErrCollectionNotFound, id)
	}

	out := wc.Clone()
	col := &out.Collections[idx]

	switch field {
	case FieldName:
		col.Name = domain.Sanitize(value)
	case FieldCollectionDescription:
		col.Description = domain.Sanitize(value)
	case FieldIcon:
		col.Icon = value
	default:
		return wc, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	return out, nil
}

// DeleteCollection removes collection id. Its resources move to the
// default collection with the sentinel sub-category, or to the first
// remaining collection when the default is the one being deleted.
func (e *Editor) DeleteCollection(wc domain.WorkingCopy, id string) (domain.WorkingCopy, error) {
	idx := wc.CollectionIndex(id)
	if idx < 0 {
		return wc, fmt.Errorf("%w: %s", ErrCollectionNotFound, id)
	}

	out := wc.Clone()
	out.Collections = append(out.Collections[:idx], out.Collections[idx+1:]...)
	target := domain.DefaultCollectionID
	if !out.HasCollection(target) {
		target = out.FirstCollectionID()
	}
	for i := range out.Resources {
		if out.Resources[i].Category == id {
			out.Resources[i].Category = target
			out.Resources[i].SubCategory = domain.SubCategoryAll
		}
	}
	return out, nil
}

// MoveCollection swaps the collection at index with its neighbour.
func (e *Editor) MoveCollection(wc domain.WorkingCopy, index int, dir Direction) (domain.WorkingCopy, error) {
	if dir != Up && dir != Down {
		return wc, ErrUnknownDirection
	}
	target, ok := swapTarget(index, len(wc.Collections), dir)
	if !ok {
		return wc, nil
	}

	out := wc.Clone()
	out.Collections[index], out.Collections[target] = out.Collections[target], out.Collections[index]
	return out, nil
}
