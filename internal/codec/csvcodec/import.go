package csvcodec

import (
	"errors"
	"strings"

	"github.com/MrSnakeDoc/curator/internal/catalog"
	"github.com/MrSnakeDoc/curator/internal/domain"
)

// ErrNoDataRows is returned for an empty or header-only file.
var ErrNoDataRows = errors.New("csv has no data rows")

// Result counts the outcome of an import.
type Result struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// Import turns the data rows of a bulk CSV into resources prepended to wc
// in file order. The first row is a header and is ignored.
//
// A row is skipped (and counted) when it has fewer than 3 fields, a blank
// title or URL, or a URL already present case-insensitively, either in wc
// or earlier in the same file. The in-file check is stricter than matching
// against wc alone: a file listing one URL twice imports it once, so URLs
// stay distinct across the catalog after every import.
func Import(e *catalog.Editor, wc domain.WorkingCopy, text string) (domain.WorkingCopy, Result, error) {
	rows := Parse(text)
	if len(rows) < 2 {
		return wc, Result{}, ErrNoDataRows
	}

	var (
		res      Result
		imported []domain.Resource
		seen     = wc.URLSet()
		today    = e.Today()
		fallback = wc.FirstCollectionID()
	)

	for _, row := range rows[1:] {
		if len(row) < 3 {
			res.Skipped++
			continue
		}

		title := field(row, colTitle)
		rawURL := field(row, colURL)
		if title == "" || rawURL == "" {
			res.Skipped++
			continue
		}
		key := strings.ToLower(rawURL)
		if _, dup := seen[key]; dup {
			res.Skipped++
			continue
		}
		seen[key] = struct{}{}

		imported = append(imported, newResource(e, wc, row, title, rawURL, today, fallback))
	}

	res.Imported = len(imported)
	if res.Imported == 0 {
		return wc, res, nil
	}

	out := wc.Clone()
	out.Resources = append(imported, out.Resources...)
	return out, res, nil
}

func newResource(e *catalog.Editor, wc domain.WorkingCopy, row []string, title, rawURL, today, fallback string) domain.Resource {
	dom, ok := domain.DeriveDomain(rawURL)
	if !ok {
		dom = domain.UnknownDomain
	}

	contributor := field(row, colContributor)
	if contributor == "" {
		contributor = catalog.AdminContributor
	}

	category := field(row, colCategory)
	if !wc.HasCollection(category) {
		category = fallback
	}

	sub := field(row, colSubCategory)
	if sub == "" {
		sub = domain.SubCategoryAll
	}

	return domain.Resource{
		ID:          e.NewID(),
		Title:       title,
		Description: field(row, colDescription),
		URL:         rawURL,
		Domain:      dom,
		ImageURL:    catalog.ImportedImageURL,
		AddedDate:   today,
		Contributor: contributor,
		Category:    category,
		SubCategory: sub,
	}
}
