package seed

import (
	"fmt"

	"github.com/MrSnakeDoc/curator/internal/domain"
)

// normalize fills the derivable fields a hand-written dataset may omit.
func normalize(wc *domain.WorkingCopy) {
	if wc.Collections == nil {
		wc.Collections = []domain.Collection{}
	}
	if wc.Resources == nil {
		wc.Resources = []domain.Resource{}
	}
	if wc.Taglines == nil {
		wc.Taglines = []string{}
	}

	for i := range wc.Collections {
		if wc.Collections[i].SubCategories == nil {
			wc.Collections[i].SubCategories = []string{}
		}
	}

	for i := range wc.Resources {
		r := &wc.Resources[i]
		if r.Domain == "" {
			if d, ok := domain.DeriveDomain(r.URL); ok {
				r.Domain = d
			} else {
				r.Domain = domain.UnknownDomain
			}
		}
		if r.SubCategory == "" {
			r.SubCategory = domain.SubCategoryAll
		}
	}
}

func validate(wc domain.WorkingCopy) error {
	if wc.Version <= 0 {
		return fmt.Errorf("%w: version must be > 0, got %d", ErrInvalidSeed, wc.Version)
	}

	collections := make(map[string]struct{}, len(wc.Collections))
	for i, c := range wc.Collections {
		if c.ID == "" {
			return fmt.Errorf("%w: collection #%d has no id", ErrInvalidSeed, i)
		}
		if _, dup := collections[c.ID]; dup {
			return fmt.Errorf("%w: duplicate collection id %q", ErrInvalidSeed, c.ID)
		}
		collections[c.ID] = struct{}{}

		labels := make(map[string]struct{}, len(c.SubCategories))
		for _, label := range c.SubCategories {
			if domain.IsReservedLabel(label) {
				return fmt.Errorf("%w: collection %q declares the reserved sub-category %q", ErrInvalidSeed, c.ID, label)
			}
			if _, dup := labels[label]; dup {
				return fmt.Errorf("%w: collection %q declares %q twice", ErrInvalidSeed, c.ID, label)
			}
			labels[label] = struct{}{}
		}
	}

	resources := make(map[string]struct{}, len(wc.Resources))
	for i, r := range wc.Resources {
		if r.ID == "" {
			return fmt.Errorf("%w: resource #%d has no id", ErrInvalidSeed, i)
		}
		if _, dup := resources[r.ID]; dup {
			return fmt.Errorf("%w: duplicate resource id %q", ErrInvalidSeed, r.ID)
		}
		resources[r.ID] = struct{}{}
	}

	return nil
}
