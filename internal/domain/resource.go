package domain

// Resource is one catalogue entry: a curated link plus its metadata.
//
// Field names on the wire (json/yaml) are camelCase so that seed files,
// snapshots and cached slots share a single shape.
type Resource struct {
	// ─────────────────────────────
	// Identity
	// ─────────────────────────────

	// ID is an opaque token, unique across the working copy.
	ID string `json:"id" yaml:"id"`

	// ─────────────────────────────
	// Content (editable)
	// ─────────────────────────────

	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`

	// URL is stored as entered. It may lack a scheme ("example.org").
	URL string `json:"url" yaml:"url"`

	// Domain is the upper-cased host of URL, derived on every URL update.
	// Example: GITHUB.COM
	Domain string `json:"domain" yaml:"domain"`

	ImageURL string `json:"imageUrl" yaml:"imageUrl"`

	// AddedDate is a display string (DD/MM/YYYY), never parsed back.
	AddedDate   string `json:"addedDate" yaml:"addedDate"`
	Contributor string `json:"contributor" yaml:"contributor"`

	// ─────────────────────────────
	// Placement
	// ─────────────────────────────

	// Category references a Collection ID.
	Category string `json:"category" yaml:"category"`

	// SubCategory is one of the owning collection's labels or SubCategoryAll.
	// Labels that no longer exist on the collection behave like SubCategoryAll.
	SubCategory string `json:"subCategory,omitempty" yaml:"subCategory,omitempty"`

	// ─────────────────────────────
	// Optional metadata (round-tripped, not interpreted)
	// ─────────────────────────────

	FileType string         `json:"fileType,omitempty" yaml:"fileType,omitempty"`
	Status   ResourceStatus `json:"status,omitempty" yaml:"status,omitempty"`
}

// ResourceStatus is a badge shown next to a resource.
type ResourceStatus string

const (
	StatusVerified ResourceStatus = "verified"
	StatusWarning  ResourceStatus = "warning"
	StatusNew      ResourceStatus = "new"
)

// EffectiveSubCategory returns the sub-category, treating empty as SubCategoryAll.
func (r Resource) EffectiveSubCategory() string {
	if r.SubCategory == "" {
		return SubCategoryAll
	}
	return r.SubCategory
}
