package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/salmonumbrella/snds-cli/internal/config"
	"github.com/salmonumbrella/snds-cli/internal/errors"
	"github.com/salmonumbrella/snds-cli/internal/logging"
	"github.com/salmonumbrella/snds-cli/internal/output"
	"github.com/salmonumbrella/snds-cli/internal/ui"
)

func newRootCmd(app *App) *cobra.Command {
	// Global flags
	var (
		debugMode    bool
		outputFlag   string
		queryFlag    string
		jsonPathFlag string
		colorFlag    string
		quietFlag    bool
		compactJSON  bool
	)

	rootCmd := &cobra.Command{
		Use:   "snds",
		Short: "Show Microsoft SNDS CSV exports as readable tables",
		Long: `snds renders Microsoft SNDS (Smart Network Data Services) daily CSV
exports as fixed-width tables in the terminal.

Exports are located by date tag in a local data directory, read from plain
or gzip-compressed CSV, and rendered with automatically guessed or
user-selected columns.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Cobra must not emit its own error/usage text; errors are printed centrally.
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			logging.Setup(debugMode, app.Stderr)

			// Load config file (skip for config commands to avoid recursion)
			var cfg *config.Config
			if !isConfigCommand(cmd) {
				loadedCfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				cfg = loadedCfg
			} else {
				cfg = &config.Config{}
			}

			formatValue := outputFlag
			if !cmd.Flags().Changed("output") && cfg.GetOutput() != "" {
				formatValue = cfg.GetOutput()
			}
			format, err := output.ParseFormat(formatValue)
			if err != nil {
				return errors.NewUserError(err.Error(), "Use one of: text, json, ndjson, yaml")
			}

			if queryFlag != "" && jsonPathFlag != "" {
				return errors.NewUserError(
					"--query and --jsonpath are mutually exclusive",
					"Pick either the jq filter or the JSONPath extraction",
				)
			}
			if (queryFlag != "" || jsonPathFlag != "") && format != output.FormatJSON && format != output.FormatNDJSON {
				return errors.NewUserError(
					"--query/--jsonpath require JSON output",
					"Add --output json (or ndjson for --query)",
				)
			}

			colorValue := colorFlag
			if !cmd.Flags().Changed("color") && cfg.GetColor() != "" {
				colorValue = cfg.GetColor()
			}
			mode := parseColorMode(colorValue)
			if mode == ui.ColorAuto && !isTerminal(app.Stderr) {
				mode = ui.ColorNever
			}

			ctx := cmd.Context()
			ctx = WithConfig(ctx, cfg)
			ctx = WithQuiet(ctx, quietFlag)
			ctx = output.WithFormat(ctx, format)
			ctx = output.WithQuery(ctx, queryFlag)
			ctx = output.WithJSONPath(ctx, jsonPathFlag)
			ctx = output.WithCompactJSON(ctx, compactJSON)
			ctx = ui.WithUI(ctx, ui.NewWithWriter(app.Stderr, mode))
			cmd.SetContext(ctx)
			// The root keeps the enriched context too, so central error
			// printing sees the selected output format.
			cmd.Root().SetContext(ctx)

			return nil
		},
	}

	rootCmd.Version = app.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("snds %s (commit: %s, built: %s)\n", app.Version, app.Commit, app.BuildTime))

	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "text", "Output format: text|json|ndjson|yaml")
	rootCmd.PersistentFlags().StringVarP(&queryFlag, "query", "q", "", "JQ expression to filter JSON output")
	rootCmd.PersistentFlags().StringVar(&jsonPathFlag, "jsonpath", "", "Extract a value using JSONPath (e.g. $.sections[0].row_count)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "Color mode for messages: auto|always|never")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&compactJSON, "compact-json", false, "Output compact JSON (single-line) instead of pretty JSON")

	// Flag aliases for discoverability
	flagAlias(rootCmd.PersistentFlags(), "output", "out")
	flagAlias(rootCmd.PersistentFlags(), "query", "jq")

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newDatesCmd())
	rootCmd.AddCommand(newColumnsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// isConfigCommand reports whether cmd is `config` or one of its children.
func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	return false
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func parseColorMode(value string) ui.ColorMode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "always":
		return ui.ColorAlways
	case "never":
		return ui.ColorNever
	default:
		return ui.ColorAuto
	}
}
