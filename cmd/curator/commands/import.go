package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/curator/internal/catalog"
	"github.com/MrSnakeDoc/curator/internal/codec/csvcodec"
	"github.com/MrSnakeDoc/curator/internal/domain"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE.csv",
		Short: "Prepend the rows of a bulk CSV to the working copy",
		Long: `Import resources from a CSV with the columns
Title,Description,URL,Contributor,Category,SubCategory.

Rows with a missing title or URL, or a URL already in the catalogue, are
skipped. Use the template command for an example file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			rt, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			editor := catalog.NewEditor()
			var res csvcodec.Result
			_, err = rt.Workspace.Mutate(cmd.Context(), func(wc domain.WorkingCopy) (domain.WorkingCopy, error) {
				next, result, err := csvcodec.Import(editor, wc, string(data))
				res = result
				return next, err
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d, skipped %d\n", res.Imported, res.Skipped)
			return nil
		},
	}
}
