package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/curator/internal/contrib"
	"github.com/MrSnakeDoc/curator/internal/httpserver/deps"
	"github.com/MrSnakeDoc/curator/internal/logger"
	"github.com/MrSnakeDoc/curator/internal/metrics"
)

type contributionsResponse struct {
	Count         int                  `json:"count"`
	Contributions []contrib.Suggestion `json:"contributions"`
}

func ListContributions(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := d.Suggestions.Items()
		writeJSON(w, http.StatusOK, contributionsResponse{Count: len(items), Contributions: items})
	}
}

// AddContribution validates a suggestion and queues it for export.
func AddContribution(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft contrib.Draft
		if !decodeJSON(w, r, &draft) {
			return
		}

		s, err := contrib.NewSuggestion(draft)
		if err != nil {
			fail(d, w, r, err)
			return
		}

		n := d.Suggestions.Add(s)
		if d.Metrics != nil {
			d.Metrics.Contributions.Inc()
		}
		d.Logger.Info("suggestion added",
			logger.String("url", s.URL),
			logger.Int("pending", n))

		writeJSON(w, http.StatusCreated, s)
	}
}

func RemoveContribution(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := indexParam(w, r, "index")
		if !ok {
			return
		}
		if err := d.Suggestions.Remove(index); err != nil {
			fail(d, w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ExportContributions downloads the pending suggestions as CSV. The list
// is emptied once exported.
func ExportContributions(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, filename, err := d.Suggestions.Export(d.Now())
		if err != nil {
			recordExport(d, "contributions", err)
			fail(d, w, r, err)
			return
		}
		recordExport(d, "contributions", nil)
		writeAttachment(w, "text/csv; charset=utf-8", filename, data)
	}
}

func recordExport(d deps.Deps, kind string, err error) {
	if d.Metrics == nil {
		return
	}
	d.Metrics.Exports.WithLabelValues(kind, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case statusFor(err) < http.StatusInternalServerError:
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}
