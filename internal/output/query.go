package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/itchyny/gojq"

	clierrors "github.com/salmonumbrella/snds-cli/internal/errors"
)

// runQuery normalizes data to map/slice form, runs a gojq query, and writes
// results as JSON. When prettyPrint is true, output is indented.
func (p *Printer) runQuery(query string, data interface{}, prettyPrint bool) error {
	normalized, err := normalizeToInterface(data)
	if err != nil {
		return fmt.Errorf("query error: %w", err)
	}

	parsed, err := gojq.Parse(query)
	if err != nil {
		return invalidQueryErr(err)
	}

	code, err := gojq.Compile(parsed)
	if err != nil {
		return invalidQueryErr(err)
	}

	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	if prettyPrint {
		enc.SetIndent("", "  ")
	}

	iter := code.Run(normalized)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if queryErr, isErr := v.(error); isErr {
			return fmt.Errorf("query error: %s", queryErr.Error())
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}

	return nil
}

// applyJSONPath extracts a value from data using a JSONPath expression.
func applyJSONPath(data interface{}, path string) (interface{}, error) {
	normalized := strings.TrimSpace(path)
	if normalized == "" {
		return data, nil
	}
	if !strings.HasPrefix(normalized, "$") {
		normalized = "$." + strings.TrimPrefix(normalized, ".")
	}

	normalizedData, err := normalizeToInterface(data)
	if err != nil {
		return nil, err
	}
	value, err := jsonpath.Get(normalized, normalizedData)
	if err != nil {
		return nil, clierrors.WrapUserError(err, "invalid --jsonpath value", "Example: --jsonpath '$.sections[0].row_count'")
	}
	return value, nil
}

// normalizeToInterface round-trips data through JSON so gojq and jsonpath
// operate on plain maps and slices rather than typed structs.
func normalizeToInterface(data interface{}) (interface{}, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var normalized interface{}
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

func invalidQueryErr(err error) error {
	return clierrors.WrapUserError(err, "invalid --query expression", "Example: --query '.sections[].row_count'")
}
