package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MrSnakeDoc/curator/internal/domain"
	"github.com/MrSnakeDoc/curator/internal/logger"
)

// Local is the typed view over a Backend.
//
// Loads fail soft: a missing, unreadable or malformed slot is reported as
// absent (and logged), never as an error, so callers can substitute the
// seed value.
type Local struct {
	backend Backend
	logger  logger.Logger
}

// NewLocal wraps backend.
func NewLocal(backend Backend, log logger.Logger) *Local {
	return &Local{backend: backend, logger: log}
}

// Backend exposes the underlying backend (health checks, shutdown).
func (l *Local) Backend() Backend {
	return l.backend
}

func (l *Local) raw(ctx context.Context, slot Slot) (string, bool) {
	value, ok, err := l.backend.Get(ctx, slot)
	if err != nil {
		l.logger.Warn("failed to read slot, treating as absent",
			logger.String("slot", string(slot)),
			logger.Error(err))
		return "", false
	}
	return value, ok
}

func loadJSON[T any](ctx context.Context, l *Local, slot Slot) (T, bool) {
	var zero T
	value, ok := l.raw(ctx, slot)
	if !ok {
		return zero, false
	}

	var v *T
	if err := json.Unmarshal([]byte(value), &v); err != nil {
		l.logger.Warn("malformed slot, treating as absent",
			logger.String("slot", string(slot)),
			logger.Error(err))
		return zero, false
	}
	if v == nil {
		return zero, false
	}
	return *v, true
}

// LoadCollections returns the cached collections.
func (l *Local) LoadCollections(ctx context.Context) ([]domain.Collection, bool) {
	return loadJSON[[]domain.Collection](ctx, l, SlotCollections)
}

// LoadResources returns the cached resources.
func (l *Local) LoadResources(ctx context.Context) ([]domain.Resource, bool) {
	return loadJSON[[]domain.Resource](ctx, l, SlotResources)
}

// LoadTaglines returns the cached tagline words.
func (l *Local) LoadTaglines(ctx context.Context) ([]string, bool) {
	return loadJSON[[]string](ctx, l, SlotTaglines)
}

// LoadBookmarks returns the saved bookmark set.
func (l *Local) LoadBookmarks(ctx context.Context) (domain.BookmarkSet, bool) {
	return loadJSON[domain.BookmarkSet](ctx, l, SlotBookmarks)
}

// LoadViewMode returns the saved display preference.
func (l *Local) LoadViewMode(ctx context.Context) (domain.ViewMode, bool) {
	value, ok := l.raw(ctx, SlotViewMode)
	if !ok {
		return "", false
	}
	return domain.ParseViewMode(value)
}

// LoadVersion returns the stored version, 0 when absent or unparsable.
func (l *Local) LoadVersion(ctx context.Context) int64 {
	value, ok := l.raw(ctx, SlotVersion)
	if !ok {
		return 0
	}
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		l.logger.Warn("unparsable stored version, using 0",
			logger.String("value", value))
		return 0
	}
	return v
}

// SaveWorkingCopy writes collections, resources, taglines and version
// together. version is the seed version of the running build, whatever the
// origin of wc.
func (l *Local) SaveWorkingCopy(ctx context.Context, wc domain.WorkingCopy, version int64) error {
	values := make(map[Slot]string, 4)

	for slot, v := range map[Slot]any{
		SlotCollections: nonNil(wc.Collections),
		SlotResources:   nonNil(wc.Resources),
		SlotTaglines:    nonNil(wc.Taglines),
	} {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", slot, err)
		}
		values[slot] = string(data)
	}
	values[SlotVersion] = strconv.FormatInt(version, 10)

	if err := l.backend.SetMany(ctx, values); err != nil {
		return fmt.Errorf("failed to save working copy: %w", err)
	}
	return nil
}

// SaveBookmarks writes the bookmark set.
func (l *Local) SaveBookmarks(ctx context.Context, set domain.BookmarkSet) error {
	data, err := json.Marshal(nonNil([]string(set)))
	if err != nil {
		return fmt.Errorf("failed to marshal bookmarks: %w", err)
	}
	if err := l.backend.SetMany(ctx, map[Slot]string{SlotBookmarks: string(data)}); err != nil {
		return fmt.Errorf("failed to save bookmarks: %w", err)
	}
	return nil
}

// SaveViewMode writes the display preference.
func (l *Local) SaveViewMode(ctx context.Context, mode domain.ViewMode) error {
	if err := l.backend.SetMany(ctx, map[Slot]string{SlotViewMode: string(mode)}); err != nil {
		return fmt.Errorf("failed to save view mode: %w", err)
	}
	return nil
}

// ClearCatalog drops the cached catalogue and the stored version.
func (l *Local) ClearCatalog(ctx context.Context) error {
	if err := l.backend.Delete(ctx, CatalogSlots...); err != nil {
		return fmt.Errorf("failed to clear catalog slots: %w", err)
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
