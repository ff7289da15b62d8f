package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/curator/internal/domain"
)

func newTestEditor() *Editor {
	n := 0
	return NewEditor(
		WithClock(func() time.Time { return time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC) }),
		WithIDSource(func() string {
			n++
			return fmt.Sprintf("id%07d", n)
		}),
	)
}

func fixture() domain.WorkingCopy {
	return domain.WorkingCopy{
		Version: 1769663499949,
		Collections: []domain.Collection{
			{ID: "modelling", Name: "Modelling", Icon: "⚖️", SubCategories: []string{"Decision Tree", "Markov", "PSA"}},
			{ID: "survival-analysis", Name: "Survival Analysis", SubCategories: []string{"KM-IPD", "Extrapolation"}},
			{ID: "general", Name: "General", SubCategories: []string{}},
		},
		Resources: []domain.Resource{
			{ID: "a", Title: "Tree tutorial", URL: "https://rpubs.com/x", Domain: "RPUBS.COM", Category: "modelling", SubCategory: "Decision Tree"},
			{ID: "b", Title: "Markov in R", URL: "https://github.com/y", Domain: "GITHUB.COM", Category: "modelling", SubCategory: "Markov"},
			{ID: "c", Title: "KM digitiser", URL: "https://example.org", Domain: "EXAMPLE.ORG", Category: "survival-analysis", SubCategory: "KM-IPD", FileType: "xlsx", Status: domain.StatusVerified},
		},
		Taglines: []string{"markov", "PSA"},
	}
}

func TestAddResource(t *testing.T) {
	e := newTestEditor()
	in := fixture()

	out, id := e.AddResource(in)

	require.Len(t, out.Resources, 4)
	assert.Len(t, in.Resources, 3, "input must not change")

	got := out.Resources[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "modelling", got.Category)
	assert.Equal(t, domain.SubCategoryAll, got.SubCategory)
	assert.Equal(t, "28/01/2026", got.AddedDate)
	assert.Equal(t, AdminContributor, got.Contributor)
}

func TestAddResourceWithoutCollections(t *testing.T) {
	out, _ := newTestEditor().AddResource(domain.WorkingCopy{})
	assert.Equal(t, domain.DefaultCollectionID, out.Resources[0].Category)
}

func TestUpdateResourceField(t *testing.T) {
	e := newTestEditor()

	t.Run("url recomputes domain", func(t *testing.T) {
		out, err := e.UpdateResourceField(fixture(), "a", FieldURL, "example.org")
		require.NoError(t, err)
		assert.Equal(t, "example.org", out.Resources[0].URL)
		assert.Equal(t, "EXAMPLE.ORG", out.Resources[0].Domain)
	})

	t.Run("unparsable url keeps previous domain", func(t *testing.T) {
		out, err := e.UpdateResourceField(fixture(), "a", FieldURL, "https://")
		require.NoError(t, err)
		assert.Equal(t, "https://", out.Resources[0].URL)
		assert.Equal(t, "RPUBS.COM", out.Resources[0].Domain)
	})

	t.Run("free text is sanitized", func(t *testing.T) {
		out, err := e.UpdateResourceField(fixture(), "b", FieldTitle, "  <b>Markov</b> models ")
		require.NoError(t, err)
		assert.Equal(t, "Markov models", out.Resources[1].Title)
	})

	t.Run("unknown resource", func(t *testing.T) {
		in := fixture()
		out, err := e.UpdateResourceField(in, "zzz", FieldTitle, "x")
		assert.ErrorIs(t, err, ErrResourceNotFound)
		assert.Empty(t, cmp.Diff(in, out))
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := e.UpdateResourceField(fixture(), "a", ResourceField("id"), "x")
		assert.ErrorIs(t, err, ErrUnknownField)
	})
}

func TestUpdateResourceCategory(t *testing.T) {
	e := newTestEditor()

	t.Run("change resets sub-category", func(t *testing.T) {
		out, err := e.UpdateResourceField(fixture(), "a", FieldCategory, "survival-analysis")
		require.NoError(t, err)
		assert.Equal(t, "survival-analysis", out.Resources[0].Category)
		assert.Equal(t, domain.SubCategoryAll, out.Resources[0].SubCategory)
	})

	t.Run("same category keeps sub-category", func(t *testing.T) {
		out, err := e.UpdateResourceField(fixture(), "a", FieldCategory, "modelling")
		require.NoError(t, err)
		assert.Equal(t, "Decision Tree", out.Resources[0].SubCategory)
	})

	t.Run("unknown collection", func(t *testing.T) {
		in := fixture()
		out, err := e.UpdateResourceField(in, "a", FieldCategory, "no-such-collection")
		assert.ErrorIs(t, err, ErrCollectionNotFound)
		assert.Empty(t, cmp.Diff(in, out))
	})
}

func TestUpdateResourceSubCategory(t *testing.T) {
	e := newTestEditor()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "label of the collection", value: "PSA", want: "PSA"},
		{name: "sentinel", value: "all", want: domain.SubCategoryAll},
		{name: "sentinel any case", value: " ALL ", want: domain.SubCategoryAll},
		{name: "empty means sentinel", value: "", want: domain.SubCategoryAll},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := e.UpdateResourceField(fixture(), "a", FieldSubCategory, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Resources[0].SubCategory)
		})
	}

	for _, bad := range []string{"Not A Label", "KM-IPD", "psa"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			in := fixture()
			out, err := e.UpdateResourceField(in, "a", FieldSubCategory, bad)
			assert.ErrorIs(t, err, ErrUnknownSubCategory)
			assert.Empty(t, cmp.Diff(in, out))
		})
	}
}

func TestDeleteResource(t *testing.T) {
	e := newTestEditor()
	out, err := e.DeleteResource(fixture(), "b")
	require.NoError(t, err)
	require.Len(t, out.Resources, 2)
	assert.Equal(t, "a", out.Resources[0].ID)
	assert.Equal(t, "c", out.Resources[1].ID)
}

func TestMoveBoundariesAreNoOps(t *testing.T) {
	e := newTestEditor()
	in := fixture()

	tests := []struct {
		name string
		move func() (domain.WorkingCopy, error)
	}{
		{"resource first up", func() (domain.WorkingCopy, error) { return e.MoveResource(in, 0, Up) }},
		{"resource last down", func() (domain.WorkingCopy, error) { return e.MoveResource(in, 2, Down) }},
		{"collection first up", func() (domain.WorkingCopy, error) { return e.MoveCollection(in, 0, Up) }},
		{"collection last down", func() (domain.WorkingCopy, error) { return e.MoveCollection(in, 2, Down) }},
		{"sub-category first left", func() (domain.WorkingCopy, error) { return e.MoveSubCategory(in, "modelling", 0, Up) }},
		{"sub-category last right", func() (domain.WorkingCopy, error) { return e.MoveSubCategory(in, "modelling", 2, Down) }},
		{"index out of range", func() (domain.WorkingCopy, error) { return e.MoveResource(in, 9, Up) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.move()
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(in, out))
		})
	}
}

func TestMoves(t *testing.T) {
	e := newTestEditor()

	out, err := e.MoveResource(fixture(), 0, Down)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, resourceIDs(out))

	out, err = e.MoveCollection(fixture(), 1, Up)
	require.NoError(t, err)
	assert.Equal(t, "survival-analysis", out.Collections[0].ID)

	out, err = e.MoveSubCategory(fixture(), "modelling", 1, Down)
	require.NoError(t, err)
	assert.Equal(t, []string{"Decision Tree", "PSA", "Markov"}, out.Collections[0].SubCategories)

	_, err = e.MoveResource(fixture(), 0, Direction("sideways"))
	assert.ErrorIs(t, err, ErrUnknownDirection)
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"up": Up, "LEFT": Up, "down": Down, " right ": Down} {
		got, err := ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDirection("diagonal")
	assert.ErrorIs(t, err, ErrUnknownDirection)
}

func resourceIDs(wc domain.WorkingCopy) []string {
	out := make([]string, 0, len(wc.Resources))
	for _, r := range wc.Resources {
		out = append(out, r.ID)
	}
	return out
}
