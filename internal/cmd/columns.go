package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	clierrors "github.com/salmonumbrella/snds-cli/internal/errors"
	"github.com/salmonumbrella/snds-cli/internal/output"
	"github.com/salmonumbrella/snds-cli/internal/snds"
)

func newColumnsCmd() *cobra.Command {
	var (
		dirFlag  string
		dateFlag string
	)

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Show the header columns of a data export",
		Long: `Show the header columns of the data export for a date, marking the
columns the default display guess would pick.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			dir := resolveDir(dirFlag, ConfigFromContext(ctx))
			tag := dateFlag
			if tag == "" {
				tag = time.Now().Format("2006-01-02")
			}

			path, err := snds.Resolve(dir, snds.DataPrefix, tag)
			if err != nil {
				return clierrors.WrapUserError(err, "no data export for "+tag,
					"Run `snds dates` to see which date tags have exports")
			}
			header, _, err := snds.ReadHeaderKeyed(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			guessed := make(map[string]bool)
			for _, c := range snds.GuessColumns(header, snds.DefaultWishlist) {
				guessed[c] = true
			}

			stdout := stdoutFromContext(ctx)
			format := output.FormatFromContext(ctx)
			if format != output.FormatText {
				type column struct {
					Name    string `json:"name" yaml:"name"`
					Guessed bool   `json:"guessed" yaml:"guessed"`
				}
				cols := make([]column, 0, len(header))
				for _, name := range header {
					cols = append(cols, column{Name: name, Guessed: guessed[name]})
				}
				return output.NewPrinter(stdout, format).Print(ctx, cols)
			}

			for _, name := range header {
				marker := " "
				if guessed[name] {
					marker = "*"
				}
				_, _ = fmt.Fprintf(stdout, "%s %s\n", marker, name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dirFlag, "dir", "", "Data directory (default: `data` next to the executable)")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Date tag used in filenames, format YYYY-MM-DD (default: today)")
	return cmd
}
