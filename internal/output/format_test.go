package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func sampleReport() Report {
	return Report{
		Date: "2025-11-01",
		Dir:  "/srv/snds",
		Sections: []Section{
			{
				Category: "data",
				File:     "snds-data-2025-11-01.csv",
				RowCount: 2,
				Columns:  []string{"IP", "Traffic"},
				Rows: []map[string]string{
					{"IP": "192.0.2.1", "Traffic": "1200"},
					{"IP": "192.0.2.2", "Traffic": "87"},
				},
			},
			{
				Category: "ipstatus",
				Error:    "could not find snds-ipStatus-2025-11-01.csv(.gz) in /srv/snds",
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatText},
		{in: "text", want: FormatText},
		{in: "json", want: FormatJSON},
		{in: "JSON", want: FormatJSON},
		{in: " yaml ", want: FormatYAML},
		{in: "ndjson", want: FormatNDJSON},
		{in: "jsonl", want: FormatNDJSON},
		{in: "table", wantErr: true},
		{in: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)

	if err := p.Print(context.Background(), sampleReport()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if decoded.Sections[0].RowCount != 2 {
		t.Errorf("row_count = %d, want 2", decoded.Sections[0].RowCount)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("default JSON output should be indented")
	}
}

func TestPrintCompactJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)
	ctx := WithCompactJSON(context.Background(), true)

	if err := p.Print(ctx, sampleReport()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if got := strings.Count(strings.TrimSpace(buf.String()), "\n"); got != 0 {
		t.Errorf("compact JSON should be a single line, got %d newlines", got)
	}
}

func TestPrintJSONWithQuery(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)
	ctx := WithQuery(context.Background(), ".sections[0].row_count")

	if err := p.Print(ctx, sampleReport()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "2" {
		t.Errorf("query output = %q, want %q", got, "2")
	}
}

func TestPrintJSONWithInvalidQuery(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)
	ctx := WithQuery(context.Background(), ".sections[")

	if err := p.Print(ctx, sampleReport()); err == nil {
		t.Error("Print() with invalid query expected error, got nil")
	}
}

func TestPrintNDJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatNDJSON)

	sections := sampleReport().Sections
	if err := p.Print(context.Background(), sections); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2:\n%s", len(lines), buf.String())
	}
	for i, line := range lines {
		var s Section
		if err := json.Unmarshal([]byte(line), &s); err != nil {
			t.Errorf("line %d is not valid JSON: %v", i, err)
		}
	}
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatYAML)

	if err := p.Print(context.Background(), sampleReport()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	var decoded Report
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	if decoded.Date != "2025-11-01" {
		t.Errorf("date = %q, want %q", decoded.Date, "2025-11-01")
	}
}

func TestPrintJSONPath(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)
	ctx := WithJSONPath(context.Background(), "$.sections[0].file")

	if err := p.Print(ctx, sampleReport()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `"snds-data-2025-11-01.csv"` {
		t.Errorf("jsonpath output = %q", got)
	}
}

func TestPrintJSONPathInvalid(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)
	ctx := WithJSONPath(context.Background(), "$.sections[99].file")

	if err := p.Print(ctx, sampleReport()); err == nil {
		t.Error("Print() with out-of-range jsonpath expected error, got nil")
	}
}

func TestPrintTextUnsupported(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatText)

	if err := p.Print(context.Background(), sampleReport()); err == nil {
		t.Error("Print() with text format should be rejected; commands render text themselves")
	}
}
