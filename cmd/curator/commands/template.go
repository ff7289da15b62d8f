package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/curator/internal/codec/csvcodec"
)

func newTemplateCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write an example bulk-import CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOutput(cmd, output, csvcodec.Template())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", `Destination file ("-" for stdout)`)
	return cmd
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
