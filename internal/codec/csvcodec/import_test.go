package csvcodec

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/curator/internal/catalog"
	"github.com/MrSnakeDoc/curator/internal/domain"
)

func testEditor() *catalog.Editor {
	n := 0
	return catalog.NewEditor(
		catalog.WithClock(func() time.Time { return time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC) }),
		catalog.WithIDSource(func() string {
			n++
			return fmt.Sprintf("imp%d", n)
		}),
	)
}

func current() domain.WorkingCopy {
	return domain.WorkingCopy{
		Version: 1,
		Collections: []domain.Collection{
			{ID: "modelling", SubCategories: []string{"Markov"}},
			{ID: "general", SubCategories: []string{}},
		},
		Resources: []domain.Resource{
			{ID: "old", Title: "Existing", URL: "https://GitHub.com/x", Category: "general", SubCategory: "all"},
		},
	}
}

func TestImport(t *testing.T) {
	csv := "Title,Description,URL,Contributor,Category,SubCategory\r\n" +
		`"Markov primer","Intro, with ""quotes""","rpubs.com/markov","Jane","modelling","Markov"` + "\r\n" +
		`"Dup of existing","","https://github.com/X","","general",""` + "\n" +
		`"Unknown category","d","https://example.org","","no-such","` + "\"\n" +
		`"","no title","https://notitle.example","","",""` + "\n" +
		"short,row\n" +
		`"Repeat in file","","RPUBS.COM/markov","","",""` + "\n"

	in := current()
	out, res, err := Import(testEditor(), in, csv)
	require.NoError(t, err)

	assert.Equal(t, Result{Imported: 2, Skipped: 4}, res)
	require.Len(t, out.Resources, 3)
	assert.Len(t, in.Resources, 1, "input must not change")

	first := out.Resources[0]
	assert.Equal(t, "imp1", first.ID)
	assert.Equal(t, "Markov primer", first.Title)
	assert.Equal(t, `Intro, with "quotes"`, first.Description)
	assert.Equal(t, "rpubs.com/markov", first.URL)
	assert.Equal(t, "RPUBS.COM", first.Domain)
	assert.Equal(t, "Jane", first.Contributor)
	assert.Equal(t, "modelling", first.Category)
	assert.Equal(t, "Markov", first.SubCategory)
	assert.Equal(t, "05/03/2026", first.AddedDate)
	assert.Equal(t, catalog.ImportedImageURL, first.ImageURL)

	second := out.Resources[1]
	assert.Equal(t, "modelling", second.Category, "unknown category falls back to the first collection")
	assert.Equal(t, domain.SubCategoryAll, second.SubCategory)
	assert.Equal(t, catalog.AdminContributor, second.Contributor)

	assert.Equal(t, "old", out.Resources[2].ID, "imports are prepended")
}

func TestImportUnknownDomain(t *testing.T) {
	csv := "Title,Description,URL\n\"Odd\",\"\",\"http://\"\n"

	out, res, err := Import(testEditor(), current(), csv)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, domain.UnknownDomain, out.Resources[0].Domain)
}

func TestImportNothingNew(t *testing.T) {
	in := current()
	csv := "Title,Description,URL\nExisting,,https://github.com/x\n"

	out, res, err := Import(testEditor(), in, csv)
	require.NoError(t, err)
	assert.Equal(t, Result{Imported: 0, Skipped: 1}, res)
	assert.Equal(t, in, out)
}

func TestImportNoDataRows(t *testing.T) {
	for _, csv := range []string{"", "\n\n", "Title,Description,URL\r\n"} {
		_, _, err := Import(testEditor(), current(), csv)
		assert.ErrorIs(t, err, ErrNoDataRows, "input %q", csv)
	}
}

func TestImportRepeatedURLInFileImportsOnce(t *testing.T) {
	csv := "Title,Description,URL\n" +
		"First,,https://docs.example.com/a\n" +
		"Second,,HTTPS://DOCS.EXAMPLE.COM/A\n"

	out, res, err := Import(testEditor(), current(), csv)
	require.NoError(t, err)
	assert.Equal(t, Result{Imported: 1, Skipped: 1}, res)
	assert.Equal(t, "First", out.Resources[0].Title)
	assert.Len(t, out.URLSet(), len(out.Resources), "urls stay distinct")
}
