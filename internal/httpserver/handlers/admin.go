package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MrSnakeDoc/curator/internal/codec/csvcodec"
	"github.com/MrSnakeDoc/curator/internal/codec/snapshot"
	"github.com/MrSnakeDoc/curator/internal/domain"
	"github.com/MrSnakeDoc/curator/internal/httpserver/deps"
	"github.com/MrSnakeDoc/curator/internal/logger"
	"github.com/MrSnakeDoc/curator/internal/metrics"
	"github.com/MrSnakeDoc/curator/internal/utils"
	"github.com/MrSnakeDoc/curator/internal/workspace"
)

const defaultMaxUpload = 5 << 20

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login exchanges the admin password for a bearer token.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if !d.Auth.Verify(req.Password) {
			recordLogin(d, metrics.OutcomeRejected)
			d.Logger.Warn("admin login rejected", logger.String("remote", r.RemoteAddr))
			writeError(w, http.StatusUnauthorized, "invalid password")
			return
		}

		token, exp, err := d.Tokens.Issue()
		if err != nil {
			recordLogin(d, metrics.OutcomeError)
			fail(d, w, r, err)
			return
		}
		recordLogin(d, metrics.OutcomeOK)
		d.Logger.Info("admin logged in", logger.String("remote", r.RemoteAddr))

		writeJSON(w, http.StatusOK, loginResponse{Token: token, ExpiresAt: exp})
	}
}

func recordLogin(d deps.Deps, outcome string) {
	if d.Metrics != nil {
		d.Metrics.Logins.WithLabelValues(outcome).Inc()
	}
}

type statusResponse struct {
	workspace.Status
	Version         int64 `json:"version"`
	CollectionCount int   `json:"collectionCount"`
	ResourceCount   int   `json:"resourceCount"`
	TaglineCount    int   `json:"taglineCount"`
	Pending         int   `json:"pendingContributions"`
}

// Status reports the reconciliation outcome and the size of the working copy.
func Status(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wc := d.Workspace.Snapshot()
		writeJSON(w, http.StatusOK, statusResponse{
			Status:          d.Workspace.Status(),
			Version:         wc.Version,
			CollectionCount: len(wc.Collections),
			ResourceCount:   len(wc.Resources),
			TaglineCount:    len(wc.Taglines),
			Pending:         d.Suggestions.Len(),
		})
	}
}

// Reset discards the cached catalogue and reloads the seed. Bookmarks and
// the view preference survive.
func Reset(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Workspace.Reset(r.Context()); err != nil {
			recordMutation(d, "reset", err)
			fail(d, w, r, err)
			return
		}
		recordMutation(d, "reset", nil)
		writeJSON(w, http.StatusOK, d.Workspace.Status())
	}
}

type importResponse struct {
	csvcodec.Result
	ResourceCount int `json:"resourceCount"`
}

// Import reads a bulk CSV from the multipart "file" field and prepends its
// new rows to the catalogue.
func Import(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, ok := readUpload(d, w, r)
		if !ok {
			return
		}

		var res csvcodec.Result
		wc, err := d.Workspace.Mutate(r.Context(), func(wc domain.WorkingCopy) (domain.WorkingCopy, error) {
			next, result, err := csvcodec.Import(d.Editor, wc, text)
			res = result
			return next, err
		})
		recordMutation(d, "import", err)
		if err != nil {
			fail(d, w, r, err)
			return
		}

		if d.Metrics != nil {
			d.Metrics.ImportedRows.Add(float64(res.Imported))
			d.Metrics.SkippedRows.Add(float64(res.Skipped))
		}
		d.Logger.Info("csv imported",
			logger.Int("imported", res.Imported),
			logger.Int("skipped", res.Skipped))

		writeJSON(w, http.StatusOK, importResponse{Result: res, ResourceCount: len(wc.Resources)})
	}
}

func readUpload(d deps.Deps, w http.ResponseWriter, r *http.Request) (string, bool) {
	limit := d.MaxUploadBytes
	if limit <= 0 {
		limit = defaultMaxUpload
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(limit); err != nil {
		writeError(w, http.StatusBadRequest, "invalid upload: "+err.Error())
		return "", false
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, `missing multipart field "file"`)
		return "", false
	}
	defer utils.Close(file)

	var b strings.Builder
	if _, err := io.Copy(&b, file); err != nil {
		writeError(w, http.StatusBadRequest, "cannot read upload: "+err.Error())
		return "", false
	}
	return b.String(), true
}

// Export downloads the working copy as a seed file stamped with a fresh
// version.
func Export(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, version, err := snapshot.Export(d.Workspace.Snapshot(), d.Now())
		recordExport(d, "snapshot", err)
		if err != nil {
			fail(d, w, r, err)
			return
		}
		d.Logger.Info("snapshot exported", logger.Int64("version", version))
		w.Header().Set("X-Catalog-Version", strconv.FormatInt(version, 10))
		writeAttachment(w, "application/yaml", snapshot.Filename, data)
	}
}

func Template(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeAttachment(w, "text/csv; charset=utf-8", csvcodec.TemplateFilename, csvcodec.Template())
	}
}

// apply runs fn through the workspace and answers with the mapped error
// status on failure. op labels the mutation metric.
func apply(d deps.Deps, w http.ResponseWriter, r *http.Request, op string, fn workspace.MutateFunc) (domain.WorkingCopy, bool) {
	wc, err := d.Workspace.Mutate(r.Context(), fn)
	recordMutation(d, op, err)
	if err != nil {
		if statusFor(err) >= http.StatusInternalServerError {
			d.Logger.Error("mutation not persisted", logger.String("op", op), logger.Error(err))
		}
		fail(d, w, r, err)
		return wc, false
	}
	return wc, true
}

func recordMutation(d deps.Deps, op string, err error) {
	if d.Metrics != nil {
		d.Metrics.Mutations.WithLabelValues(op, outcome(err)).Inc()
	}
}
