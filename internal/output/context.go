package output

import "context"

type (
	formatKey      struct{}
	queryKey       struct{}
	jsonPathKey    struct{}
	compactJSONKey struct{}
)

// WithFormat stores the selected output format in the context.
func WithFormat(ctx context.Context, f Format) context.Context {
	return context.WithValue(ctx, formatKey{}, f)
}

// FormatFromContext retrieves the output format from context (FormatText if unset).
func FormatFromContext(ctx context.Context) Format {
	if f, ok := ctx.Value(formatKey{}).(Format); ok {
		return f
	}
	return FormatText
}

// WithQuery stores a jq filter expression in the context.
func WithQuery(ctx context.Context, query string) context.Context {
	return context.WithValue(ctx, queryKey{}, query)
}

// QueryFromContext retrieves the jq filter expression from context.
func QueryFromContext(ctx context.Context) string {
	if q, ok := ctx.Value(queryKey{}).(string); ok {
		return q
	}
	return ""
}

// WithJSONPath stores a JSONPath expression in the context.
func WithJSONPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, jsonPathKey{}, path)
}

// JSONPathFromContext retrieves the JSONPath expression from context.
func JSONPathFromContext(ctx context.Context) string {
	if p, ok := ctx.Value(jsonPathKey{}).(string); ok {
		return p
	}
	return ""
}

// WithCompactJSON stores the compact-JSON preference in the context.
func WithCompactJSON(ctx context.Context, compact bool) context.Context {
	return context.WithValue(ctx, compactJSONKey{}, compact)
}

// CompactJSONFromContext reports whether compact JSON output was requested.
func CompactJSONFromContext(ctx context.Context) bool {
	if c, ok := ctx.Value(compactJSONKey{}).(bool); ok {
		return c
	}
	return false
}
