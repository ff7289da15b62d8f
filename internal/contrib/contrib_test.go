package contrib

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/curator/internal/catalog"
	"github.com/MrSnakeDoc/curator/internal/codec/csvcodec"
	"github.com/MrSnakeDoc/curator/internal/domain"
)

func TestNewSuggestion(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		wantErr string
	}{
		{"valid", Draft{Title: "Go", URL: "https://go.dev"}, ""},
		{"bare domain", Draft{Title: "Go", URL: "go.dev"}, ""},
		{"missing title", Draft{URL: "https://go.dev"}, "title is required"},
		{"markup-only title", Draft{Title: "<b></b>", URL: "https://go.dev"}, "title is required"},
		{"missing url", Draft{Title: "Go"}, "url is required"},
		{"bad scheme", Draft{Title: "Go", URL: "ftp://go.dev"}, "url must be a valid http(s) link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSuggestion(tt.draft)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidSuggestion)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewSuggestionSanitizes(t *testing.T) {
	s, err := NewSuggestion(Draft{
		Title:       "  <script>x</script>Useful  ",
		URL:         " https://example.com ",
		Description: "<i>great</i> read",
		Contributor: "Ann<br>",
	})
	require.NoError(t, err)

	assert.Equal(t, "xUseful", s.Title)
	assert.Equal(t, "https://example.com", s.URL)
	assert.Equal(t, "great read", s.Description)
	assert.Equal(t, "Ann", s.Contributor)
	assert.Equal(t, domain.DefaultCollectionID, s.Category)
}

func TestListExport(t *testing.T) {
	l := NewList()
	l.Add(Suggestion{Title: "A", URL: "https://a.example", Contributor: "Ann", Category: "modelling", WantsCredit: true})
	l.Add(Suggestion{Title: "B", URL: "https://b.example", Contributor: "Bob", Category: "general"})

	data, name, err := l.Export(time.UnixMilli(1769663499949))
	require.NoError(t, err)
	assert.Equal(t, "curator_suggestions_1769663499949.csv", name)

	want := strings.Join([]string{
		"Title,Description,URL,Contributor,Category,SubCategory",
		`"A","","https://a.example","Ann","modelling","all"`,
		`"B","","https://b.example","Anonymous","general","all"`,
	}, "\n")
	assert.Equal(t, want, string(data))
	assert.Zero(t, l.Len(), "export clears the list")
}

func TestListExportEmpty(t *testing.T) {
	_, _, err := NewList().Export(time.Now())
	assert.ErrorIs(t, err, ErrNoSuggestions)
}

func TestListRemove(t *testing.T) {
	l := NewList()
	l.Add(Suggestion{Title: "A"})
	l.Add(Suggestion{Title: "B"})
	l.Add(Suggestion{Title: "C"})

	require.NoError(t, l.Remove(1))
	assert.ErrorIs(t, l.Remove(5), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Remove(-1), ErrIndexOutOfRange)

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].Title)
	assert.Equal(t, "C", items[1].Title)
}

func TestExportImportRoundTrip(t *testing.T) {
	const n = 5
	l := NewList()
	for i := 0; i < n; i++ {
		s, err := NewSuggestion(Draft{
			Title:       fmt.Sprintf(`Title %d, "quoted"`, i),
			URL:         fmt.Sprintf("https://example.com/%d?a=1,b=2", i),
			Description: "Line with, commas and \"quotes\"",
			Contributor: "Ann",
			Category:    "general",
			WantsCredit: i%2 == 0,
		})
		require.NoError(t, err)
		l.Add(s)
	}
	sent := l.Items()

	data, _, err := l.Export(time.Now())
	require.NoError(t, err)

	rows := csvcodec.Parse(string(data))
	require.Len(t, rows, n+1)
	for i, row := range rows[1:] {
		assert.Equal(t, sent[i].Title, row[0])
		assert.Equal(t, sent[i].Description, row[1])
		assert.Equal(t, sent[i].URL, row[2])
	}

	wc := domain.WorkingCopy{Collections: []domain.Collection{{ID: "general"}}}
	out, res, err := csvcodec.Import(catalog.NewEditor(), wc, string(data))
	require.NoError(t, err)
	assert.Equal(t, csvcodec.Result{Imported: n}, res)
	assert.Equal(t, sent[0].Title, out.Resources[0].Title)
}
