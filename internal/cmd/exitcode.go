package cmd

import (
	"context"
	"errors"

	clierrors "github.com/salmonumbrella/snds-cli/internal/errors"
)

const (
	ExitOK       = 0
	ExitSystem   = 1
	ExitUser     = 2
	ExitCanceled = 130
)

// ExitCode maps a command error to a stable process exit code for automation.
// Missing data directories and other input mistakes are user errors (2);
// anything unexpected is a system error (1).
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	if clierrors.IsValidationError(err) || clierrors.IsUserError(err) {
		return ExitUser
	}
	return ExitSystem
}
