package domain

import "strings"

// WorkingCopy is the editable catalogue: collections, resources and tagline
// words, stamped with the seed version it was last externalised from.
//
// Values are treated as immutable by the editor: every operation clones
// before changing anything, so a WorkingCopy handed out stays valid.
type WorkingCopy struct {
	Version     int64        `json:"version" yaml:"version"`
	Collections []Collection `json:"collections" yaml:"collections"`
	Resources   []Resource   `json:"resources" yaml:"resources"`
	Taglines    []string     `json:"taglines" yaml:"taglines"`
}

// Clone returns a deep copy.
func (wc WorkingCopy) Clone() WorkingCopy {
	out := WorkingCopy{Version: wc.Version}
	if wc.Collections != nil {
		out.Collections = make([]Collection, len(wc.Collections))
		for i, c := range wc.Collections {
			c.SubCategories = cloneStrings(c.SubCategories)
			out.Collections[i] = c
		}
	}
	if wc.Resources != nil {
		out.Resources = make([]Resource, len(wc.Resources))
		copy(out.Resources, wc.Resources)
	}
	out.Taglines = cloneStrings(wc.Taglines)
	return out
}

// CollectionIndex returns the position of the collection with id, or -1.
func (wc WorkingCopy) CollectionIndex(id string) int {
	for i, c := range wc.Collections {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// HasCollection reports whether id names an existing collection.
func (wc WorkingCopy) HasCollection(id string) bool {
	return wc.CollectionIndex(id) >= 0
}

// ResourceIndex returns the position of the resource with id, or -1.
func (wc WorkingCopy) ResourceIndex(id string) int {
	for i, r := range wc.Resources {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// FirstCollectionID is the default category for new resources.
func (wc WorkingCopy) FirstCollectionID() string {
	if len(wc.Collections) > 0 {
		return wc.Collections[0].ID
	}
	return DefaultCollectionID
}

// URLSet returns the lower-cased URLs of every resource.
func (wc WorkingCopy) URLSet() map[string]struct{} {
	set := make(map[string]struct{}, len(wc.Resources))
	for _, r := range wc.Resources {
		set[strings.ToLower(r.URL)] = struct{}{}
	}
	return set
}

// IsEmpty reports whether the catalogue cannot be exported.
func (wc WorkingCopy) IsEmpty() bool {
	return len(wc.Collections) == 0 || len(wc.Resources) == 0
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
