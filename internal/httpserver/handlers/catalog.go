package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/curator/internal/domain"
	"github.com/MrSnakeDoc/curator/internal/httpserver/deps"
	"github.com/MrSnakeDoc/curator/internal/logger"
)

type collectionView struct {
	domain.Collection
	Chips              []string `json:"chips"`
	DefaultSubCategory string   `json:"defaultSubCategory"`
}

type catalogResponse struct {
	Version     int64            `json:"version"`
	ViewMode    domain.ViewMode  `json:"viewMode"`
	Taglines    []string         `json:"taglines"`
	Collections []collectionView `json:"collections"`
}

// Catalog returns everything the landing page needs besides the resources.
func Catalog(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wc := d.Workspace.Snapshot()
		views := make([]collectionView, 0, len(wc.Collections))
		for _, c := range wc.Collections {
			views = append(views, collectionView{
				Collection:         c,
				Chips:              domain.SubCategoryChips(c),
				DefaultSubCategory: domain.DefaultSubCategory(c),
			})
		}
		writeJSON(w, http.StatusOK, catalogResponse{
			Version:     wc.Version,
			ViewMode:    d.Workspace.ViewMode(),
			Taglines:    wc.Taglines,
			Collections: views,
		})
	}
}

type resourceView struct {
	domain.Resource
	IsBookmarked bool `json:"isBookmarked"`
}

type resourcesResponse struct {
	Count     int            `json:"count"`
	Resources []resourceView `json:"resources"`
}

// Resources returns the visible list for the filter given in the query
// string: collection, sub, q and bookmarks.
func Resources(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		bookmarksOnly := false
		if raw := strings.TrimSpace(q.Get("bookmarks")); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "bookmarks must be a boolean")
				return
			}
			bookmarksOnly = v
		}

		f := domain.NewFilter(q.Get("collection"), q.Get("sub"), q.Get("q"), bookmarksOnly)
		visible := d.Workspace.Visible(f)
		saved := d.Workspace.Bookmarks()

		out := make([]resourceView, 0, len(visible))
		for _, res := range visible {
			out = append(out, resourceView{Resource: res, IsBookmarked: saved.Contains(res.ID)})
		}
		writeJSON(w, http.StatusOK, resourcesResponse{Count: len(out), Resources: out})
	}
}

type bookmarksResponse struct {
	Bookmarks  domain.BookmarkSet `json:"bookmarks"`
	Bookmarked *bool              `json:"bookmarked,omitempty"`
}

func Bookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, bookmarksResponse{Bookmarks: nonNil(d.Workspace.Bookmarks())})
	}
}

// ToggleBookmark adds the resource to the bookmarks, or removes it when it
// is already there.
func ToggleBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if d.Workspace.Snapshot().ResourceIndex(id) < 0 && !d.Workspace.Bookmarks().Contains(id) {
			writeError(w, http.StatusNotFound, "resource not found")
			return
		}

		set, added, err := d.Workspace.ToggleBookmark(r.Context(), id)
		if err != nil {
			fail(d, w, r, err)
			return
		}

		action := "removed"
		if added {
			action = "added"
		}
		if d.Metrics != nil {
			d.Metrics.Bookmarks.WithLabelValues(action).Inc()
		}
		d.Logger.Debug("bookmark toggled", logger.String("id", id), logger.String("action", action))

		writeJSON(w, http.StatusOK, bookmarksResponse{Bookmarks: nonNil(set), Bookmarked: &added})
	}
}

type viewModeRequest struct {
	Mode string `json:"mode"`
}

type viewModeResponse struct {
	Mode domain.ViewMode `json:"mode"`
}

func ViewMode(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, viewModeResponse{Mode: d.Workspace.ViewMode()})
	}
}

func SetViewMode(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req viewModeRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		mode, ok := domain.ParseViewMode(strings.ToLower(strings.TrimSpace(req.Mode)))
		if !ok {
			writeError(w, http.StatusBadRequest, `mode must be "grid" or "list"`)
			return
		}
		if err := d.Workspace.SetViewMode(r.Context(), mode); err != nil {
			fail(d, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, viewModeResponse{Mode: mode})
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
