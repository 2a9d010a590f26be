package snds

import "strings"

// Tabulate renders rows as fixed-width aligned text. Each column's width is
// the max of the header length and the widest value across the limited row
// set; cells are left-justified and space-padded, columns are separated by
// two spaces, and a dash line width-matched per column follows the header.
// limit 0 means unlimited; limit N shows only the first N rows, and widths
// are computed over that limited set.
func Tabulate(rows []Row, columns []string, limit int) string {
	shown := rows
	if limit > 0 && len(rows) > limit {
		shown = rows[:limit]
	}

	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
		for _, r := range shown {
			if n := len(r[col]); n > widths[i] {
				widths[i] = n
			}
		}
	}

	formatLine := func(values []string) string {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = ljust(v, widths[i])
		}
		return strings.Join(parts, "  ")
	}

	dashes := make([]string, len(columns))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}

	lines := make([]string, 0, len(shown)+2)
	lines = append(lines, formatLine(columns), formatLine(dashes))
	for _, r := range shown {
		values := make([]string, len(columns))
		for i, col := range columns {
			values[i] = r[col]
		}
		lines = append(lines, formatLine(values))
	}
	return strings.Join(lines, "\n")
}

func ljust(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
