package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/salmonumbrella/snds-cli/internal/config"
	"github.com/salmonumbrella/snds-cli/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg"},
		Short:   "Manage CLI configuration",
		Long:    `Manage the snds-cli configuration file at ~/.config/snds-cli/config.yaml`,
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigPathCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current configuration from ~/.config/snds-cli/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := stdoutFromContext(cmd.Context())
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to format config: %w", err)
			}

			if len(data) == 0 || string(data) == "{}\n" {
				path, _ := config.DefaultConfigPath()
				_, _ = fmt.Fprintf(out, "No configuration file found at %s\n", path)
				_, _ = fmt.Fprintln(out, "\nTo create a config file, use:")
				_, _ = fmt.Fprintln(out, "  snds config set dir /srv/snds")
				return nil
			}

			_, _ = fmt.Fprint(out, string(data))
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Print a single configuration value.

Supported keys: dir, limit, output, color`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := stdoutFromContext(cmd.Context())
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			switch args[0] {
			case "dir":
				_, _ = fmt.Fprintln(out, cfg.Dir)
			case "limit":
				if n, ok := cfg.GetLimit(); ok {
					_, _ = fmt.Fprintln(out, n)
				} else {
					_, _ = fmt.Fprintln(out)
				}
			case "output":
				_, _ = fmt.Fprintln(out, cfg.Output)
			case "color":
				_, _ = fmt.Fprintln(out, cfg.Color)
			default:
				return fmt.Errorf("unknown config key %q\n\nSupported keys: dir, limit, output, color", args[0])
			}
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in ~/.config/snds-cli/config.yaml

Supported keys:
  dir    - Default data directory holding SNDS exports
  limit  - Default max rows to display (0 = no limit)
  output - Default output format (text, json, ndjson/jsonl, yaml)
  color  - Default color mode (auto, always, never)

Examples:
  snds config set dir /srv/snds
  snds config set limit 50
  snds config set output json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := stdoutFromContext(cmd.Context())
			key := args[0]
			value := args[1]

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			switch key {
			case "dir":
				cfg.Dir = value
			case "limit":
				n, err := strconv.Atoi(value)
				if err != nil || n < 0 {
					return fmt.Errorf("invalid limit %q, must be a non-negative integer", value)
				}
				cfg.Limit = &n
			case "output":
				format, err := output.ParseFormat(value)
				if err != nil {
					validFormats := []string{"text", "json", "ndjson", "jsonl", "yaml"}
					return fmt.Errorf("invalid output format %q, must be one of: %s", value, strings.Join(validFormats, ", "))
				}
				cfg.Output = string(format)
				value = cfg.Output
			case "color":
				validModes := []string{"auto", "always", "never"}
				if !contains(validModes, value) {
					return fmt.Errorf("invalid color mode %q, must be one of: %s", value, strings.Join(validModes, ", "))
				}
				cfg.Color = value
			default:
				return fmt.Errorf("unknown config key %q\n\nSupported keys: dir, limit, output, color", key)
			}

			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			path, _ := config.DefaultConfigPath()
			_, _ = fmt.Fprintf(out, "Set %s = %s in %s\n", key, value, path)
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Long:  `Display the path to the configuration file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := stdoutFromContext(cmd.Context())
			path, err := config.DefaultConfigPath()
			if err != nil {
				return fmt.Errorf("failed to determine config path: %w", err)
			}

			_, _ = fmt.Fprintln(out, path)

			if _, err := os.Stat(path); err == nil {
				_, _ = fmt.Fprintln(out, "(file exists)")
			} else if os.IsNotExist(err) {
				_, _ = fmt.Fprintln(out, "(file does not exist)")
			}

			return nil
		},
	}
}

// contains checks if a string slice contains a value
func contains(slice []string, value string) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}
	return false
}
