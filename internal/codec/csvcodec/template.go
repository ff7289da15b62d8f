package csvcodec

import (
	"github.com/MrSnakeDoc/curator/internal/catalog"
	"github.com/MrSnakeDoc/curator/internal/domain"
)

// TemplateFilename is the suggested download name of Template.
const TemplateFilename = "curator_template.csv"

// Template returns a header plus one example row showing the expected
// column order and values.
func Template() []byte {
	return Encode([][]string{{
		"Example Analysis",
		"Resource description.",
		"https://example.com",
		catalog.AdminContributor,
		domain.DefaultCollectionID,
		"Basics",
	}})
}
