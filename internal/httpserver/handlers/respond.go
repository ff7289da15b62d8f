package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/curator/internal/catalog"
	"github.com/MrSnakeDoc/curator/internal/codec/csvcodec"
	"github.com/MrSnakeDoc/curator/internal/codec/snapshot"
	"github.com/MrSnakeDoc/curator/internal/contrib"
	"github.com/MrSnakeDoc/curator/internal/httpserver/deps"
	"github.com/MrSnakeDoc/curator/internal/logger"
)

const maxJSONBody = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// statusFor maps domain errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrResourceNotFound),
		errors.Is(err, catalog.ErrCollectionNotFound),
		errors.Is(err, catalog.ErrIndexOutOfRange),
		errors.Is(err, contrib.ErrIndexOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrUnknownField),
		errors.Is(err, catalog.ErrUnknownDirection):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrEmptyLabel),
		errors.Is(err, catalog.ErrReservedSubCategory),
		errors.Is(err, catalog.ErrLastTagline),
		errors.Is(err, catalog.ErrDuplicateSubCategory),
		errors.Is(err, catalog.ErrUnknownSubCategory),
		errors.Is(err, contrib.ErrInvalidSuggestion),
		errors.Is(err, csvcodec.ErrNoDataRows):
		return http.StatusUnprocessableEntity
	case errors.Is(err, snapshot.ErrEmptyCatalog),
		errors.Is(err, contrib.ErrNoSuggestions):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err with its mapped status. Server errors are logged and
// their detail is not sent to the client.
func fail(d deps.Deps, w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		d.Logger.Error("request failed",
			logger.String("path", r.URL.Path),
			logger.Error(err))
		writeError(w, status, http.StatusText(status))
		return
	}
	writeError(w, status, err.Error())
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func indexParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	i, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, name+" must be an integer")
		return 0, false
	}
	return i, true
}
