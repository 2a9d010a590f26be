package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	clierrors "github.com/salmonumbrella/snds-cli/internal/errors"
	"github.com/salmonumbrella/snds-cli/internal/output"
)

// printCommandError writes err to stderr, matching the selected output
// format so structured consumers get structured errors.
func printCommandError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	stderr := stderrFromContext(ctx)

	switch output.FormatFromContext(ctx) {
	case output.FormatJSON, output.FormatNDJSON:
		enc := json.NewEncoder(stderr)
		enc.SetEscapeHTML(false)
		_ = enc.Encode(buildErrorEnvelope(err))
		return
	case output.FormatYAML:
		enc := yaml.NewEncoder(stderr)
		enc.SetIndent(2)
		_ = enc.Encode(buildErrorEnvelope(err))
		_ = enc.Close()
		return
	}

	_, _ = fmt.Fprintln(stderr, err)
	if suggestion := clierrors.UserSuggestion(err); suggestion != "" {
		_, _ = fmt.Fprintf(stderr, "Hint: %s\n", suggestion)
	}
}

func buildErrorEnvelope(err error) map[string]interface{} {
	errMap := map[string]interface{}{
		"message": err.Error(),
	}

	category := "system"
	if clierrors.IsUserError(err) || clierrors.IsValidationError(err) {
		category = "user"
	}
	errMap["category"] = category

	if suggestion := clierrors.UserSuggestion(err); suggestion != "" {
		errMap["suggestion"] = suggestion
	}

	return map[string]interface{}{"error": errMap}
}
