package snds

import "strings"

// GuessColumns picks display columns from the available header names.
// Each wanted entry is matched in order: exact (case-sensitive) first, then
// case-insensitive via a lowered-name lookup; entries with no match are
// skipped. If nothing matches at all, the first 8 available columns are
// returned in header order.
func GuessColumns(available, wanted []string) []string {
	if len(available) == 0 {
		return nil
	}

	exact := make(map[string]struct{}, len(available))
	lower := make(map[string]string, len(available))
	for _, name := range available {
		exact[name] = struct{}{}
		lower[strings.ToLower(name)] = name
	}

	var result []string
	for _, w := range wanted {
		if _, ok := exact[w]; ok {
			result = append(result, w)
			continue
		}
		if name, ok := lower[strings.ToLower(w)]; ok {
			result = append(result, name)
		}
	}

	if len(result) == 0 {
		n := len(available)
		if n > 8 {
			n = 8
		}
		result = append(result, available[:n]...)
	}
	return result
}

// ParseColumnList splits a comma-separated, user-supplied column list.
// Entries are whitespace-trimmed and empties dropped. The result is used
// verbatim: names absent from the data simply render as empty cells, which
// lets users pre-specify columns for files not yet inspected.
func ParseColumnList(s string) []string {
	var cols []string
	for _, part := range strings.Split(s, ",") {
		if c := strings.TrimSpace(part); c != "" {
			cols = append(cols, c)
		}
	}
	return cols
}
