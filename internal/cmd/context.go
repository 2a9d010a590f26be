package cmd

import (
	"context"
	"io"
	"os"

	"github.com/salmonumbrella/snds-cli/internal/config"
)

type (
	stdoutKey struct{}
	stderrKey struct{}
	configKey struct{}
	quietKey  struct{}
)

// WithIO injects stdout and stderr writers into context for testable I/O.
func WithIO(ctx context.Context, stdout, stderr io.Writer) context.Context {
	ctx = context.WithValue(ctx, stdoutKey{}, stdout)
	return context.WithValue(ctx, stderrKey{}, stderr)
}

func stdoutFromContext(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(stdoutKey{}).(io.Writer); ok {
		return w
	}
	return os.Stdout
}

func stderrFromContext(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(stderrKey{}).(io.Writer); ok {
		return w
	}
	return os.Stderr
}

// WithConfig stores loaded CLI config in context for downstream helpers.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFromContext retrieves CLI config from context.
func ConfigFromContext(ctx context.Context) *config.Config {
	if v, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return v
	}
	return nil
}

// WithQuiet stores the quiet preference in context.
func WithQuiet(ctx context.Context, quiet bool) context.Context {
	return context.WithValue(ctx, quietKey{}, quiet)
}

// QuietFromContext reports whether non-essential output is suppressed.
func QuietFromContext(ctx context.Context) bool {
	if v, ok := ctx.Value(quietKey{}).(bool); ok {
		return v
	}
	return false
}
