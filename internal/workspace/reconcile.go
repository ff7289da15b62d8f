package workspace

import (
	"context"

	"github.com/MrSnakeDoc/curator/internal/domain"
	"github.com/MrSnakeDoc/curator/internal/logger"
	"github.com/MrSnakeDoc/curator/internal/store"
)

// Origin tells where a working-copy slot was initialised from.
type Origin string

const (
	OriginSeed  Origin = "seed"
	OriginCache Origin = "cache"
)

// Status is the reconciliation outcome observed when the workspace opened.
type Status struct {
	SeedVersion   int64 `json:"seedVersion"`
	StoredVersion int64 `json:"storedVersion"`
	OutOfSync     bool  `json:"outOfSync"`

	Collections Origin `json:"collections"`
	Resources   Origin `json:"resources"`
	Taglines    Origin `json:"taglines"`
}

// UseSeed reports whether the bundled dataset must replace the cached copy:
// only a strictly newer seed wins.
func UseSeed(seedVersion, storedVersion int64) bool {
	return seedVersion > storedVersion
}

// reconcile builds the initial working copy. When the seed is newer the
// cache is ignored entirely; otherwise each slot falls back to the seed on
// its own when absent or malformed.
func reconcile(ctx context.Context, local *store.Local, seed domain.WorkingCopy, log logger.Logger) (domain.WorkingCopy, Status) {
	stored := local.LoadVersion(ctx)
	st := Status{
		SeedVersion:   seed.Version,
		StoredVersion: stored,
		OutOfSync:     UseSeed(seed.Version, stored),
		Collections:   OriginSeed,
		Resources:     OriginSeed,
		Taglines:      OriginSeed,
	}

	wc := seed.Clone()
	if st.OutOfSync {
		log.Info("seed is newer than the cache, starting from seed",
			logger.Int64("seed_version", seed.Version),
			logger.Int64("stored_version", stored))
		return wc, st
	}

	if v, ok := local.LoadCollections(ctx); ok {
		wc.Collections = v
		st.Collections = OriginCache
	}
	if v, ok := local.LoadResources(ctx); ok {
		wc.Resources = v
		st.Resources = OriginCache
	}
	if v, ok := local.LoadTaglines(ctx); ok {
		wc.Taglines = v
		st.Taglines = OriginCache
	}

	log.Info("working copy restored",
		logger.Int64("stored_version", stored),
		logger.String("collections", string(st.Collections)),
		logger.String("resources", string(st.Resources)),
		logger.String("taglines", string(st.Taglines)))
	return wc, st
}
