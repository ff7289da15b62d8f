package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/curator/internal/config"
	"github.com/MrSnakeDoc/curator/internal/domain"
	"github.com/MrSnakeDoc/curator/internal/logger"
	"github.com/MrSnakeDoc/curator/internal/seed"
	"github.com/MrSnakeDoc/curator/internal/workspace"
)

func baseConfig() *config.Config {
	return &config.Config{
		Profile: "test",
		Store:   config.StoreMemory,
	}
}

func TestBootstrapMemoryUsesEmbeddedSeed(t *testing.T) {
	rt, err := Bootstrap(context.Background(), baseConfig(), logger.Nop())
	require.NoError(t, err)
	defer rt.Close()

	assert.Equal(t, "embedded", rt.Seed.Source())
	wc := rt.Workspace.Snapshot()
	assert.Equal(t, seed.Default().Version, wc.Version)
	assert.Len(t, wc.Resources, 9)
	assert.Equal(t, workspace.OriginSeed, rt.Workspace.Status().Resources)
}

func TestBootstrapSQLiteKeepsEditsAcrossRuns(t *testing.T) {
	cfg := baseConfig()
	cfg.Store = config.StoreSQLite
	cfg.SQLitePath = filepath.Join(t.TempDir(), "curator.db")
	ctx := context.Background()

	rt, err := Bootstrap(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	_, err = rt.Workspace.Mutate(ctx, func(wc domain.WorkingCopy) (domain.WorkingCopy, error) {
		wc = wc.Clone()
		wc.Resources = wc.Resources[:1]
		return wc, nil
	})
	require.NoError(t, err)
	rt.Close()

	rt, err = Bootstrap(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer rt.Close()

	assert.Len(t, rt.Workspace.Snapshot().Resources, 1)
	assert.Equal(t, workspace.OriginCache, rt.Workspace.Status().Resources)
}

func TestBootstrapRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := baseConfig()
	cfg.Store = config.StoreRedis
	cfg.RedisAddr = mr.Addr()
	cfg.RedisConnectTimeout = 2 * time.Second
	cfg.RedisRetryInterval = 100 * time.Millisecond
	cfg.RedisMaxWait = 500 * time.Millisecond
	cfg.RedisPingTimeout = time.Second

	rt, err := Bootstrap(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer rt.Close()

	assert.True(t, mr.Exists("curator:test:repo_version"))
}

func TestBootstrapSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`version: 7
collections:
  - id: general
    name: General
    subCategories: []
resources:
  - id: r1
    title: One
    url: https://one.example
    category: general
taglines: [one]
`), 0o600))

	cfg := baseConfig()
	cfg.SeedFile = path

	rt, err := Bootstrap(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer rt.Close()

	assert.Equal(t, path, rt.Seed.Source())
	assert.Equal(t, int64(7), rt.Workspace.SeedVersion())
	assert.Equal(t, "ONE.EXAMPLE", rt.Workspace.Snapshot().Resources[0].Domain)
}

func TestBootstrapRejectsBrokenSeed(t *testing.T) {
	cfg := baseConfig()
	cfg.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := Bootstrap(context.Background(), cfg, logger.Nop())
	require.Error(t, err)
}

func TestOpenBackendUnknownStore(t *testing.T) {
	cfg := baseConfig()
	cfg.Store = "etcd"

	_, err := OpenBackend(context.Background(), cfg, logger.Nop())
	require.Error(t, err)
}
