package catalog

import (
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/curator/internal/domain"
)

// ResourceField names an editable resource attribute. Values match the
// wire names of domain.Resource.
type ResourceField string

const (
	FieldTitle       ResourceField = "title"
	FieldDescription ResourceField = "description"
	FieldContributor ResourceField = "contributor"
	FieldURL         ResourceField = "url"
	FieldImageURL    ResourceField = "imageUrl"
	FieldCategory    ResourceField = "category"
	FieldSubCategory ResourceField = "subCategory"
	FieldAddedDate   ResourceField = "addedDate"
	FieldFileType    ResourceField = "fileType"
	FieldStatus      ResourceField = "status"
)

// AddResource prepends a placeholder resource and returns its ID.
func (e *Editor) AddResource(wc domain.WorkingCopy) (domain.WorkingCopy, string) {
	res := domain.Resource{
		ID:          e.newID(),
		Title:       newResourceTitle,
		Description: newResourceDescription,
		URL:         newResourceURL,
		Domain:      newResourceDomain,
		ImageURL:    DefaultImageURL,
		AddedDate:   e.Today(),
		Contributor: AdminContributor,
		Category:    wc.FirstCollectionID(),
		SubCategory: domain.SubCategoryAll,
	}

	out := wc.Clone()
	out.Resources = append([]domain.Resource{res}, out.Resources...)
	return out, res.ID
}

// UpdateResourceField sets one field of resource id.
// Free text fields are sanitized. Setting the URL also re-derives the
// domain; an unparsable URL keeps the previous domain.
//
// The category must name an existing collection, and changing it resets the
// sub-category to the sentinel. The sub-category must be the sentinel or a
// label of the resource's collection.
func (e *Editor) UpdateResourceField(wc domain.WorkingCopy, id string, field ResourceField, value string) (domain.WorkingCopy, error) {
	idx := wc.ResourceIndex(id)
	if idx < 0 {
		return wc, fmt.Errorf("%w: %s", ErrResourceNotFound, id)
	}

	out := wc.Clone()
	res := &out.Resources[idx]

	switch field {
	case FieldTitle:
		res.Title = domain.Sanitize(value)
	case FieldDescription:
		res.Description = domain.Sanitize(value)
	case FieldContributor:
		res.Contributor = domain.Sanitize(value)
	case FieldURL:
		res.URL = value
		if d, ok := domain.DeriveDomain(value); ok {
			res.Domain = d
		}
	case FieldImageURL:
		res.ImageURL = value
	case FieldCategory:
		if !wc.HasCollection(value) {
			return wc, fmt.Errorf("%w: %s", ErrCollectionNotFound, value)
		}
		if res.Category != value {
			res.Category = value
			res.SubCategory = domain.SubCategoryAll
		}
	case FieldSubCategory:
		sub, err := subCategoryOf(wc, res.Category, value)
		if err != nil {
			return wc, err
		}
		res.SubCategory = sub
	case FieldAddedDate:
		res.AddedDate = value
	case FieldFileType:
		res.FileType = value
	case FieldStatus:
		res.Status = domain.ResourceStatus(value)
	default:
		return wc, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	return out, nil
}

// subCategoryOf resolves value against the labels of collection id.
// Empty and any casing of the sentinel map to the sentinel.
func subCategoryOf(wc domain.WorkingCopy, id, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" || domain.IsReservedLabel(value) {
		return domain.SubCategoryAll, nil
	}
	if i := wc.CollectionIndex(id); i >= 0 && wc.Collections[i].HasSubCategory(value) {
		return value, nil
	}
	return "", fmt.Errorf("%w: %q on %s", ErrUnknownSubCategory, value, id)
}

// DeleteResource removes resource id. Asking the user first is the
// caller's job.
func (e *Editor) DeleteResource(wc domain.WorkingCopy, id string) (domain.WorkingCopy, error) {
	idx := wc.ResourceIndex(id)
	if idx < 0 {
		return wc, fmt.Errorf("%w: %s", ErrResourceNotFound, id)
	}

	out := wc.Clone()
	out.Resources = append(out.Resources[:idx], out.Resources[idx+1:]...)
	return out, nil
}

// MoveResource swaps the resource at index with its neighbour.
// Moving past either end is a no-op.
func (e *Editor) MoveResource(wc domain.WorkingCopy, index int, dir Direction) (domain.WorkingCopy, error) {
	if dir != Up && dir != Down {
		return wc, ErrUnknownDirection
	}
	target, ok := swapTarget(index, len(wc.Resources), dir)
	if !ok {
		return wc, nil
	}

	out := wc.Clone()
	out.Resources[index], out.Resources[target] = out.Resources[target], out.Resources[index]
	return out, nil
}
