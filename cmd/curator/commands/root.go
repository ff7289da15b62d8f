package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/curator/internal/app"
	"github.com/MrSnakeDoc/curator/internal/config"
	"github.com/MrSnakeDoc/curator/internal/logger"
	"github.com/MrSnakeDoc/curator/internal/version"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "curator",
		Short: "Curator - versioned catalogue of curated links",
		Long: `Curator serves a curated-link directory from a versioned seed dataset.

Edits made through the admin API are kept in a local store (memory, redis
or sqlite, see CURATOR_STORE) until a newer seed is deployed. The export
command turns the working copy into that newer seed.`,
		Version: version.Get().String(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(
		newServeCmd(),
		newExportCmd(),
		newImportCmd(),
		newTemplateCmd(),
		newResetCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// bootstrap loads the configuration and opens the working copy for the
// one-shot commands.
func bootstrap(ctx context.Context) (*app.Runtime, error) {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	return app.Bootstrap(ctx, cfg, log)
}
