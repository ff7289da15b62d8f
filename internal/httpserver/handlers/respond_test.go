package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MrSnakeDoc/curator/internal/catalog"
	"github.com/MrSnakeDoc/curator/internal/codec/csvcodec"
	"github.com/MrSnakeDoc/curator/internal/codec/snapshot"
	"github.com/MrSnakeDoc/curator/internal/contrib"
	"github.com/MrSnakeDoc/curator/internal/metrics"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: x", catalog.ErrResourceNotFound), http.StatusNotFound},
		{catalog.ErrCollectionNotFound, http.StatusNotFound},
		{contrib.ErrIndexOutOfRange, http.StatusNotFound},
		{catalog.ErrUnknownField, http.StatusBadRequest},
		{catalog.ErrUnknownDirection, http.StatusBadRequest},
		{catalog.ErrReservedSubCategory, http.StatusUnprocessableEntity},
		{catalog.ErrLastTagline, http.StatusUnprocessableEntity},
		{catalog.ErrDuplicateSubCategory, http.StatusUnprocessableEntity},
		{fmt.Errorf("wrap: %w", catalog.ErrUnknownSubCategory), http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: title is required", contrib.ErrInvalidSuggestion), http.StatusUnprocessableEntity},
		{csvcodec.ErrNoDataRows, http.StatusUnprocessableEntity},
		{snapshot.ErrEmptyCatalog, http.StatusConflict},
		{contrib.ErrNoSuggestions, http.StatusConflict},
		{errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestOutcome(t *testing.T) {
	if got := outcome(nil); got != metrics.OutcomeOK {
		t.Errorf("outcome(nil) = %q", got)
	}
	if got := outcome(catalog.ErrEmptyLabel); got != metrics.OutcomeRejected {
		t.Errorf("outcome(rejection) = %q", got)
	}
	if got := outcome(errors.New("boom")); got != metrics.OutcomeError {
		t.Errorf("outcome(failure) = %q", got)
	}
}
