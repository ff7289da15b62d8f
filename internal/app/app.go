package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/curator/internal/auth"
	"github.com/MrSnakeDoc/curator/internal/catalog"
	"github.com/MrSnakeDoc/curator/internal/config"
	"github.com/MrSnakeDoc/curator/internal/contrib"
	"github.com/MrSnakeDoc/curator/internal/httpserver"
	"github.com/MrSnakeDoc/curator/internal/httpserver/deps"
	"github.com/MrSnakeDoc/curator/internal/logger"
	"github.com/MrSnakeDoc/curator/internal/metrics"
	"github.com/MrSnakeDoc/curator/internal/version"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	rt     *Runtime
	server *httpserver.Server
}

// New wires the HTTP server on top of a bootstrapped runtime.
func New(ctx context.Context, cfg *config.Config, loggerClient logger.Logger) (*App, error) {
	rt, err := Bootstrap(ctx, cfg, loggerClient)
	if err != nil {
		return nil, err
	}

	tokens, err := auth.NewTokenIssuer(cfg.AdminTokenTTL)
	if err != nil {
		rt.Close()
		return nil, err
	}
	if cfg.AdminPassword == config.DefaultAdminPassword {
		loggerClient.Warn("admin password is the built-in default, set CURATOR_ADMIN_PASSWORD")
	}

	st := rt.Workspace.Status()
	loggerClient.Info("working copy ready",
		logger.Int64("seed_version", st.SeedVersion),
		logger.Int64("stored_version", st.StoredVersion),
		logger.Bool("out_of_sync", st.OutOfSync),
		logger.String("resources_from", string(st.Resources)))

	// Dependencies passed to routes.
	d := deps.Deps{
		Logger:              loggerClient,
		StartTime:           time.Now(),
		Build:               version.Get(),
		TimeNow:             time.Now,
		Workspace:           rt.Workspace,
		Editor:              catalog.NewEditor(),
		Suggestions:         contrib.NewList(),
		Store:               rt.Backend,
		Metrics:             metrics.New(),
		Auth:                auth.NewSharedSecret(cfg.AdminPassword),
		Tokens:              tokens,
		AllowedOrigins:      cfg.AllowedOrigins,
		AllowedHosts:        cfg.AllowedHosts,
		AdminCIDRs:          cfg.AdminCIDRs,
		TrustProxy:          cfg.TrustProxy,
		MaxUploadBytes:      cfg.MaxUploadBytes,
		ContribBurst:        cfg.ContribBurst,
		ContribRefillPerMin: cfg.ContribRefillPerMin,
	}

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		rt:     rt,
		server: httpserver.New(cfg, loggerClient, d),
	}, nil
}

// Run serves until ctx is cancelled or the server fails, then shuts down.
func (a *App) Run(ctx context.Context) error {
	info := version.Get()
	a.logger.Infof("🚀 Starting Curator %s on %s", info.Version, a.cfg.ListenPort)
	a.logger.Infof("Curator %s", info.String())

	defer a.rt.Close()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.logger.Info("✅ Curator stopped cleanly")
	return nil
}
