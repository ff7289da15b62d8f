package app

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/curator/internal/config"
	"github.com/MrSnakeDoc/curator/internal/logger"
	"github.com/MrSnakeDoc/curator/internal/seed"
	"github.com/MrSnakeDoc/curator/internal/store"
	"github.com/MrSnakeDoc/curator/internal/store/memory"
	redisstore "github.com/MrSnakeDoc/curator/internal/store/redis"
	"github.com/MrSnakeDoc/curator/internal/store/sqlite"
	"github.com/MrSnakeDoc/curator/internal/utils"
	"github.com/MrSnakeDoc/curator/internal/workspace"
)

// Runtime is the part of the process shared by the server and the
// one-shot CLI commands: the seed, the local store and the open workspace.
type Runtime struct {
	Logger    logger.Logger
	Seed      *seed.Loader
	Backend   store.Backend
	Local     *store.Local
	Workspace *workspace.Workspace
}

// Bootstrap loads the seed, opens the configured backend and reconciles the
// working copy.
func Bootstrap(ctx context.Context, cfg *config.Config, log logger.Logger) (*Runtime, error) {
	loader := seed.NewLoader(cfg.SeedFile)
	seedCopy, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed from %s: %w", loader.Source(), err)
	}
	log.Info("seed loaded",
		logger.String("source", loader.Source()),
		logger.Int64("version", seedCopy.Version),
		logger.Int("collections", len(seedCopy.Collections)),
		logger.Int("resources", len(seedCopy.Resources)))

	backend, err := OpenBackend(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	local := store.NewLocal(backend, log)
	ws, err := workspace.Open(ctx, local, seedCopy, log)
	if err != nil {
		utils.MustClose(backend, log, "store")
		return nil, err
	}

	return &Runtime{
		Logger:    log,
		Seed:      loader,
		Backend:   backend,
		Local:     local,
		Workspace: ws,
	}, nil
}

// OpenBackend connects the store selected by CURATOR_STORE.
func OpenBackend(ctx context.Context, cfg *config.Config, log logger.Logger) (store.Backend, error) {
	log = log.With(logger.String("store", cfg.Store), logger.String("profile", cfg.Profile))

	switch cfg.Store {
	case config.StoreMemory:
		log.Warn("memory store selected: edits are lost when the process exits")
		return memory.New(), nil

	case config.StoreSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLitePath, cfg.Profile)
		if err != nil {
			return nil, err
		}
		log.Info("sqlite store opened", logger.String("path", cfg.SQLitePath))
		return s, nil

	case config.StoreRedis:
		log.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redisstore.Connect(ctx, redisstore.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
		}, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return redisstore.NewStore(client, cfg.Profile), nil

	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// Close releases the backend.
func (rt *Runtime) Close() {
	utils.MustClose(rt.Backend, rt.Logger, "store")
}
