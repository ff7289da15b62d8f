package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/curator/internal/codec/snapshot"
)

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the working copy as a new seed dataset",
		Long: `Export the working copy as a seed file stamped with a fresh version.

Deploying the file as CURATOR_SEED_FILE (or replacing the embedded dataset)
makes every store reconcile to it on the next start.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			data, version, err := snapshot.Export(rt.Workspace.Snapshot(), time.Now())
			if err != nil {
				return err
			}
			if err := writeOutput(cmd, output, data); err != nil {
				return err
			}
			if output != "-" {
				fmt.Fprintf(cmd.OutOrStdout(), "exported version %d to %s\n", version, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", snapshot.Filename, `Destination file ("-" for stdout)`)
	return cmd
}
