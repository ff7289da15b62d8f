package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard local edits and reload the seed dataset",
		Long: `Drop the cached catalogue of the configured profile. Bookmarks and the
view preference are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := rt.Workspace.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "working copy reset to seed version %d\n", rt.Workspace.SeedVersion())
			return nil
		},
	}
}
