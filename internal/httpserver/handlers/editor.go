package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/curator/internal/catalog"
	"github.com/MrSnakeDoc/curator/internal/domain"
	"github.com/MrSnakeDoc/curator/internal/httpserver/deps"
)

type fieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type moveRequest struct {
	Index     int    `json:"index"`
	Direction string `json:"direction"`
}

type labelRequest struct {
	Label string `json:"label"`
}

type wordRequest struct {
	Word string `json:"word"`
}

type createdResponse struct {
	ID string `json:"id"`
}

func decodeMove(w http.ResponseWriter, r *http.Request) (int, catalog.Direction, bool) {
	var req moveRequest
	if !decodeJSON(w, r, &req) {
		return 0, "", false
	}
	dir, err := catalog.ParseDirection(req.Direction)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return 0, "", false
	}
	return req.Index, dir, true
}

// ─────────────────────────────
// Resources
// ─────────────────────────────

func AddResource(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id string
		wc, ok := apply(d, w, r, "add_resource", func(wc domain.WorkingCopy) (domain.WorkingCopy, error) {
			next, newID := d.Editor.AddResource(wc)
			id = newID
			return next, nil
		})
		if !ok {
			return
		}
		writeJSON(w, http.StatusCreated, wc.Resources[wc.ResourceIndex(id)])
	}
}

func UpdateResource(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req fieldRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		wc, ok := apply(d, w, r, "update_resource", func(wc domain.WorkingCopy) (domain.WorkingCopy, error) {
			return d.Editor.UpdateResourceField(wc, id, catalog.ResourceField(req.Field), req.Value)
		})
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, wc.Resources[wc.ResourceIndex(id)])
	}
}

func DeleteResource(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, ok := apply(d, w, r, "delete_resource", func(wc domain.WorkingCopy) (domain.WorkingCopy, error) {
			return d.Editor.DeleteResource(wc, id)
		}); !ok {
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// MoveResource swaps a resource with its neighbour. Moves at either end
// succeed without changing the order.
func MoveResource(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, dir, ok := decodeMove(w, r)
		if !ok {
			return
		}
		wc, ok := apply(d, w, r, "move_resource", func(wc domain.WorkingCopy) (domain.WorkingCopy, error) {
			return d.Editor.MoveResource(wc, index, dir)
		})
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, resourceIDs(wc))
	}
}

func resourceIDs(wc domain.WorkingCopy) map[string][]string {
	ids := make([]string, 0, len(wc.Resources))
	for _, res := range wc.Resources {
		ids = append(ids, res.ID)
	}
	return map[string][]string{"order": ids}
}

// ─────────────────────────────
// Collections
// ─────────────────────────────

func AddCollection(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id string
		wc, ok := apply(d, w, r, "add_collection", func(wc domain.WorkingCopy) (domain.WorkingCopy, error) {
			next, newID := d.Editor.AddCollection(wc)
			id = newID
			return next, nil
		})
		if !ok {
			return
		}
		writeJSON(w, http.StatusCreated, wc.Collections[wc.CollectionIndex(id)])
	}
}

func UpdateCollection(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req fieldRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		wc, ok := apply(d, w, r, "update_collection", func(wc domain.WorkingCopy) (domain.WorkingCopy, error) {
			return d.Editor.UpdateCollectionField(wc, id, catalog.CollectionField(req.Field), req.Value)
		})
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, wc.Collections[wc.CollectionIndex(id)])
	}
}

// DeleteCollection removes a collection; its resources move to the
// general collection.
func DeleteCollection(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, ok := apply(d, w, r, "delete_collection", func(wc domain.WorkingCopy) (domain.WorkingCopy, error) {
			return d.Editor.DeleteCollection(wc, id)
		}); !ok {
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func MoveCollection(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, dir, ok := decodeMove(w, r)
		if !ok {
			return
		}
		wc, ok := apply(d, w, r, "move_collection", func(wc domain.WorkingCopy) (domain.WorkingCopy, error) {
			return d.Editor.MoveCollection(wc, index, dir)
		})
		if !ok {
			return
		}
		ids := make([]string, 0, len(wc.Collections))
		for _, c := range wc.Collections {
			ids = append(ids, c.ID)
		}
		writeJSON(w, http.StatusOK, map[string][]string{"order": ids})
	}
}

// ─────────────────────────────
// Sub-categories
// ─────────────────────────────

func subCategoriesOf(w http.ResponseWriter, wc domain.WorkingCopy, collectionID string) {
	labels := wc.Collections[wc.CollectionIndex(collectionID)].SubCategories
	writeJSON(w, http.StatusOK, map[string][]string{"subCategories": nonNil(labels)})
}

func AddSubCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req labelRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		wc, ok := apply(d, w, r, "add_subcategory", func(wc domain.WorkingCopy) (domain.WorkingCopy, error) {
			return d.Editor.AddSubCategory(wc, id, req.Label)
		})
		if !ok {
			return
		}
		subCategoriesOf(w, wc, id)
	}
}

// RenameSubCategory relabels one entry. Resources keep the old label.
func RenameSubCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		index, ok := indexParam(w, r, "index")
		if !ok {
			return
		}
		var req labelRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		wc, ok := apply(d, w, r, "rename_subcategory", func(wc domain.WorkingCopy) (domain.WorkingCopy, error) {
			return d.Editor.RenameSubCategory(wc, id, index, req.Label)
		})
		if !ok {
			return
		}
		subCategoriesOf(w, wc, id)
	}
}

// RemoveSubCategory drops a label; resources that used it fall back to all.
func RemoveSubCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		index, ok := indexParam(w, r, "index")
		if !ok {
			return
		}
		wc, ok := apply(d, w, r, "remove_subcategory", func(wc domain.WorkingCopy) (domain.WorkingCopy, error) {
			return d.Editor.RemoveSubCategory(wc, id, index)
		})
		if !ok {
			return
		}
		subCategoriesOf(w, wc, id)
	}
}

func MoveSubCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		index, dir, ok := decodeMove(w, r)
		if !ok {
			return
		}
		wc, ok := apply(d, w, r, "move_subcategory", func(wc domain.WorkingCopy) (domain.WorkingCopy, error) {
			return d.Editor.MoveSubCategory(wc, id, index, dir)
		})
		if !ok {
			return
		}
		subCategoriesOf(w, wc, id)
	}
}

// ─────────────────────────────
// Taglines
// ─────────────────────────────

func AddTagline(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req wordRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		wc, ok := apply(d, w, r, "add_tagline", func(wc domain.WorkingCopy) (domain.WorkingCopy, error) {
			return d.Editor.AddTaglineWord(wc, req.Word)
		})
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, map[string][]string{"taglines": nonNil(wc.Taglines)})
	}
}

// RemoveTagline drops a word. The last word cannot be removed.
func RemoveTagline(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := indexParam(w, r, "index")
		if !ok {
			return
		}
		wc, ok := apply(d, w, r, "remove_tagline", func(wc domain.WorkingCopy) (domain.WorkingCopy, error) {
			return d.Editor.RemoveTaglineWord(wc, index)
		})
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, map[string][]string{"taglines": nonNil(wc.Taglines)})
	}
}
