package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/snds-cli/internal/config"
	clierrors "github.com/salmonumbrella/snds-cli/internal/errors"
	"github.com/salmonumbrella/snds-cli/internal/output"
	"github.com/salmonumbrella/snds-cli/internal/snds"
	"github.com/salmonumbrella/snds-cli/internal/ui"
)

type category string

const (
	categoryData     category = "data"
	categoryIPStatus category = "ipstatus"
)

func newShowCmd() *cobra.Command {
	var (
		dirFlag     string
		dateFlag    string
		typeFlag    string
		columnsFlag string
		limitFlag   int
	)

	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"s"},
		Short:   "Render SNDS exports for a date as fixed-width tables",
		Long: `Render the SNDS exports for a date tag as fixed-width tables.

Two export categories exist: "data" (the traffic/complaint report, read by
header and displayed with guessed or user-selected columns) and "ipstatus"
(whose header naming is unreliable, so its first 8 columns are shown
positionally). With --type both, a missing file for one category is reported
to stderr and the other category is still processed.

Examples:
  snds show
  snds show --date 2025-11-01
  snds show --type data --columns "IP,Traffic,ComplaintRate"
  snds show --dir /srv/snds --limit 0
  snds show -o json --query '.sections[].row_count'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := ConfigFromContext(ctx)

			dir := resolveDir(dirFlag, cfg)
			tag := dateFlag
			if tag == "" {
				tag = time.Now().Format("2006-01-02")
			} else if _, perr := time.Parse("2006-01-02", tag); perr != nil && !QuietFromContext(ctx) {
				ui.FromContext(ctx).Warning("date %q is not YYYY-MM-DD; using it as a literal filename tag", tag)
			}

			limit := limitFlag
			if !cmd.Flags().Changed("limit") && cfg != nil {
				if l, ok := cfg.GetLimit(); ok {
					limit = l
				}
			}

			categories, err := parseTypeFlag(typeFlag)
			if err != nil {
				return err
			}

			// The data directory must exist before any category is processed.
			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				return clierrors.DirNotFoundError(dir)
			}

			var userColumns []string
			if columnsFlag != "" {
				userColumns = snds.ParseColumnList(columnsFlag)
			}

			stdout := stdoutFromContext(ctx)
			stderr := stderrFromContext(ctx)
			format := output.FormatFromContext(ctx)
			slog.Debug("rendering exports", "dir", dir, "date", tag, "limit", limit, "format", string(format))

			report := output.Report{Date: tag, Dir: dir}
			for _, cat := range categories {
				var res sectionResult
				switch cat {
				case categoryData:
					res = buildDataSection(dir, tag, userColumns)
				case categoryIPStatus:
					res = buildIPStatusSection(dir, tag)
				}

				// Missing or unreadable files never abort the run; the
				// other category still renders and the exit code stays 0.
				if res.err != nil {
					_, _ = fmt.Fprintf(stderr, "ERROR: %v\n", res.err)
				}

				if format == output.FormatText {
					renderSectionText(stdout, res, limit)
				} else {
					report.Sections = append(report.Sections, res.toSection(limit))
				}
			}

			if format != output.FormatText {
				printer := output.NewPrinter(stdout, format)
				return printer.Print(ctx, report)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dirFlag, "dir", "", "Data directory (default: `data` next to the executable)")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Date tag used in filenames, format YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&typeFlag, "type", "both", "Which SNDS export to show: data|ipstatus|both")
	cmd.Flags().StringVar(&columnsFlag, "columns", "", "Comma-separated list of columns to display (data export only)")
	cmd.Flags().IntVar(&limitFlag, "limit", 30, "Max rows to display (0 = no limit)")

	return cmd
}

func parseTypeFlag(s string) ([]category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "data":
		return []category{categoryData}, nil
	case "ipstatus":
		return []category{categoryIPStatus}, nil
	case "both", "":
		return []category{categoryData, categoryIPStatus}, nil
	default:
		return nil, clierrors.NewUserError(
			fmt.Sprintf("invalid --type %q", s),
			"Use one of: data, ipstatus, both",
		)
	}
}

// resolveDir picks the data directory: explicit flag, then config default,
// then `data` next to the executable.
func resolveDir(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil && cfg.Dir != "" {
		return cfg.Dir
	}
	return defaultDataDir()
}

func defaultDataDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "data"
	}
	return filepath.Join(filepath.Dir(exe), "data")
}

// sectionResult carries one processed export category, shared between the
// fixed-width text renderer and the structured report.
type sectionResult struct {
	category category
	file     string
	rowCount int
	columns  []string
	rows     []snds.Row
	empty    bool // raw file had no records at all (ipstatus)
	err      error
}

func buildDataSection(dir, tag string, userColumns []string) sectionResult {
	res := sectionResult{category: categoryData}

	path, err := snds.Resolve(dir, snds.DataPrefix, tag)
	if err != nil {
		res.err = err
		return res
	}
	res.file = filepath.Base(path)

	header, rows, err := snds.ReadHeaderKeyed(path)
	if err != nil {
		res.err = fmt.Errorf("read %s: %w", path, err)
		return res
	}

	res.rows = rows
	res.rowCount = len(rows)
	if len(rows) == 0 {
		return res
	}

	if len(userColumns) > 0 {
		// User columns win unconditionally, even when absent from the data.
		res.columns = userColumns
	} else {
		res.columns = snds.GuessColumns(header, snds.DefaultWishlist)
	}
	return res
}

func buildIPStatusSection(dir, tag string) sectionResult {
	res := sectionResult{category: categoryIPStatus}

	path, err := snds.Resolve(dir, snds.IPStatusPrefix, tag)
	if err != nil {
		res.err = err
		return res
	}
	res.file = filepath.Base(path)

	records, err := snds.ReadRaw(path)
	if err != nil {
		res.err = fmt.Errorf("read %s: %w", path, err)
		return res
	}
	if len(records) == 0 {
		res.empty = true
		return res
	}

	// Header naming varies between export generations; keep the first 8
	// columns positionally instead of guessing by name.
	header := records[0]
	n := len(header)
	if n > 8 {
		n = 8
	}
	res.columns = header[:n]

	rows := make([]snds.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(snds.Row, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	res.rows = rows
	res.rowCount = len(rows)
	return res
}

// renderSectionText writes one section in the fixed-width terminal layout.
// The row count in the header is always the full parsed count, independent
// of the display limit.
func renderSectionText(stdout io.Writer, res sectionResult, limit int) {
	if res.err != nil {
		return
	}

	label := strings.ToUpper(string(res.category))
	_, _ = fmt.Fprintf(stdout, "\n=== %s: %s (%d rows) ===\n", label, res.file, res.rowCount)

	switch {
	case res.category == categoryData && res.rowCount == 0:
		_, _ = fmt.Fprintln(stdout, "(No rows)")
	case res.category == categoryIPStatus && res.empty:
		_, _ = fmt.Fprintln(stdout, "(Empty file)")
	default:
		_, _ = fmt.Fprintln(stdout, snds.Tabulate(res.rows, res.columns, limit))
	}
}

// toSection converts the result for structured output. Rows are truncated
// to the display limit while row_count keeps the full parsed count.
func (res sectionResult) toSection(limit int) output.Section {
	s := output.Section{
		Category: string(res.category),
		File:     res.file,
		RowCount: res.rowCount,
		Columns:  res.columns,
	}
	if res.err != nil {
		s.Error = res.err.Error()
		return s
	}

	shown := res.rows
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	s.Rows = make([]map[string]string, 0, len(shown))
	for _, r := range shown {
		s.Rows = append(s.Rows, map[string]string(r))
	}
	return s
}
