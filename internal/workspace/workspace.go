// Package workspace owns the working copy of a running process: it seeds
// it, serialises edits to it and persists it after every change.
package workspace

import (
	"context"
	"fmt"
	"sync"

	"github.com/MrSnakeDoc/curator/internal/domain"
	"github.com/MrSnakeDoc/curator/internal/logger"
	"github.com/MrSnakeDoc/curator/internal/store"
)

// MutateFunc is an editor operation. It must not modify its argument.
type MutateFunc func(domain.WorkingCopy) (domain.WorkingCopy, error)

// Workspace is safe for concurrent use. Every operation runs under one lock,
// so an edit and its persistence complete before the next operation starts.
type Workspace struct {
	mu sync.Mutex

	local *store.Local
	seed  domain.WorkingCopy
	log   logger.Logger

	wc        domain.WorkingCopy
	bookmarks domain.BookmarkSet
	view      domain.ViewMode
	status    Status
}

// Open reconciles seed with the local store and persists the result.
// A failed initial write is logged: the in-memory copy stays usable.
func Open(ctx context.Context, local *store.Local, seed domain.WorkingCopy, log logger.Logger) (*Workspace, error) {
	if seed.Version <= 0 {
		return nil, fmt.Errorf("seed version must be > 0, got %d", seed.Version)
	}

	w := &Workspace{
		local: local,
		seed:  seed.Clone(),
		log:   log,
	}
	w.load(ctx)
	return w, nil
}

func (w *Workspace) load(ctx context.Context) {
	w.wc, w.status = reconcile(ctx, w.local, w.seed, w.log)

	if v, ok := w.local.LoadBookmarks(ctx); ok {
		w.bookmarks = v
	} else {
		w.bookmarks = domain.BookmarkSet{}
	}
	if v, ok := w.local.LoadViewMode(ctx); ok {
		w.view = v
	} else {
		w.view = domain.ViewGrid
	}

	if err := w.local.SaveWorkingCopy(ctx, w.wc, w.seed.Version); err != nil {
		w.log.Error("failed to persist initial working copy", logger.Error(err))
	}
}

// Snapshot returns a copy of the current working copy.
func (w *Workspace) Snapshot() domain.WorkingCopy {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.wc.Clone()
}

// Status returns the reconciliation outcome of the last open or reset.
func (w *Workspace) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// SeedVersion is the version of the bundled dataset.
func (w *Workspace) SeedVersion() int64 {
	return w.seed.Version
}

// Mutate applies fn and persists the result with the seed version.
// A rejected operation leaves the working copy untouched and writes nothing.
// When persistence fails the new copy is kept in memory and the error is
// returned, so the caller can surface it.
func (w *Workspace) Mutate(ctx context.Context, fn MutateFunc) (domain.WorkingCopy, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	next, err := fn(w.wc)
	if err != nil {
		return w.wc.Clone(), err
	}
	next.Version = w.seed.Version
	w.wc = next

	if err := w.local.SaveWorkingCopy(ctx, w.wc, w.seed.Version); err != nil {
		return w.wc.Clone(), fmt.Errorf("working copy updated but not persisted: %w", err)
	}
	return w.wc.Clone(), nil
}

// Visible applies f to the current resources.
func (w *Workspace) Visible(f domain.Filter) []domain.Resource {
	w.mu.Lock()
	defer w.mu.Unlock()
	return domain.Visible(w.wc.Resources, f, w.bookmarks)
}

// Bookmarks returns the bookmark set.
func (w *Workspace) Bookmarks() domain.BookmarkSet {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append(domain.BookmarkSet{}, w.bookmarks...)
}

// ToggleBookmark adds or removes id and persists the set. It reports
// whether id is bookmarked afterwards. Ids are not checked against the
// catalogue: a dangling bookmark simply matches nothing.
func (w *Workspace) ToggleBookmark(ctx context.Context, id string) (domain.BookmarkSet, bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	next, added := w.bookmarks.Toggle(id)
	w.bookmarks = next
	if err := w.local.SaveBookmarks(ctx, next); err != nil {
		return append(domain.BookmarkSet{}, next...), added, err
	}
	return append(domain.BookmarkSet{}, next...), added, nil
}

// ViewMode returns the display preference.
func (w *Workspace) ViewMode() domain.ViewMode {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.view
}

// SetViewMode persists the display preference.
func (w *Workspace) SetViewMode(ctx context.Context, mode domain.ViewMode) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.view = mode
	return w.local.SaveViewMode(ctx, mode)
}

// Reset drops the cached catalogue and the stored version, then reloads:
// the working copy comes back from the seed. Bookmarks and the view
// preference are kept.
func (w *Workspace) Reset(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.local.ClearCatalog(ctx); err != nil {
		return err
	}
	w.load(ctx)

	w.log.Info("working copy reset to seed",
		logger.Int64("seed_version", w.seed.Version),
		logger.Int("resources", len(w.wc.Resources)))
	return nil
}
