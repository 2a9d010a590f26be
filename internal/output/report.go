// Package output handles structured output formatting for snds-cli.
package output

// Section is one rendered export category in a structured report.
type Section struct {
	Category string              `json:"category" yaml:"category"`
	File     string              `json:"file,omitempty" yaml:"file,omitempty"`
	RowCount int                 `json:"row_count" yaml:"row_count"`
	Columns  []string            `json:"columns,omitempty" yaml:"columns,omitempty"`
	Rows     []map[string]string `json:"rows" yaml:"rows"`
	Error    string              `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the structured equivalent of the fixed-width terminal output:
// one section per processed export category.
type Report struct {
	Date     string    `json:"date" yaml:"date"`
	Dir      string    `json:"dir" yaml:"dir"`
	Sections []Section `json:"sections" yaml:"sections"`
}
