package store

import (
	"context"
	"errors"
)

// Slot is a logical storage entry. Names are persisted and must stay
// stable across releases.
type Slot string

const (
	SlotCollections Slot = "collections"
	SlotResources   Slot = "resources"
	SlotTaglines    Slot = "tagline"
	SlotBookmarks   Slot = "bookmarks"
	SlotViewMode    Slot = "view_mode"
	SlotVersion     Slot = "repo_version"
)

// CatalogSlots are discarded by a reset; bookmarks and view mode are personal
// and survive it.
var CatalogSlots = []Slot{SlotCollections, SlotResources, SlotTaglines, SlotVersion}

// ErrClosed is returned by backends used after Close.
var ErrClosed = errors.New("store closed")

// Backend persists text values per slot for one profile.
//
// SetMany writes several slots in one call. Implementations are not
// required to make it atomic: a crash midway may leave some slots written
// and others stale.
type Backend interface {
	Get(ctx context.Context, slot Slot) (value string, ok bool, err error)
	SetMany(ctx context.Context, values map[Slot]string) error
	Delete(ctx context.Context, slots ...Slot) error
	Ping(ctx context.Context) error
	Close() error
}
