package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	clierrors "github.com/salmonumbrella/snds-cli/internal/errors"
	"github.com/salmonumbrella/snds-cli/internal/output"
	"github.com/salmonumbrella/snds-cli/internal/snds"
)

func newDatesCmd() *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:     "dates",
		Aliases: []string{"ls"},
		Short:   "List the date tags with exports in the data directory",
		Long: `List every date tag that has at least one SNDS export in the data
directory, and which export categories exist for it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			dir := resolveDir(dirFlag, ConfigFromContext(ctx))

			infos, err := snds.ListDates(dir)
			if err != nil {
				return clierrors.DirNotFoundError(dir)
			}

			stdout := stdoutFromContext(ctx)
			format := output.FormatFromContext(ctx)
			if format != output.FormatText {
				return output.NewPrinter(stdout, format).Print(ctx, infos)
			}

			if len(infos) == 0 {
				_, _ = fmt.Fprintf(stdout, "No SNDS exports found in %s\n", dir)
				return nil
			}
			for _, info := range infos {
				_, _ = fmt.Fprintf(stdout, "%s  data=%s ipstatus=%s\n",
					info.Tag, yesNo(info.HasData), yesNo(info.HasIPStatus))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dirFlag, "dir", "", "Data directory (default: `data` next to the executable)")
	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
