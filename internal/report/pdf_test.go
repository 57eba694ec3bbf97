package report

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestBuildPDFLines(t *testing.T) {
	rows := []Row{
		{"date": "2025-01-02", "amount": 12.5, "category": "Food"},
		{"date": "2025-01-03", "amount": float64(80), "category": ""},
	}
	lines := BuildPDFLines(rows, []string{"date", "amount", "category"})

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "2025-01-02 | 12.5 | Food" {
		t.Errorf("line 1 = %q", lines[0])
	}
	if lines[1] != "2025-01-03 | 80 | " {
		t.Errorf("line 2 = %q", lines[1])
	}
}

func TestBuildPDFLinesTruncation(t *testing.T) {
	rows := make([]Row, maxPDFRows+10)
	for i := range rows {
		rows[i] = Row{"n": fmt.Sprintf("%d", i)}
	}
	lines := BuildPDFLines(rows, []string{"n"})

	if len(lines) != maxPDFRows+1 {
		t.Fatalf("got %d lines, want %d rows + marker", len(lines), maxPDFRows)
	}
	if lines[len(lines)-1] != truncationMarker {
		t.Errorf("last line = %q, want truncation marker", lines[len(lines)-1])
	}
	if lines[maxPDFRows-1] != fmt.Sprintf("%d", maxPDFRows-1) {
		t.Errorf("last data line = %q", lines[maxPDFRows-1])
	}
}

func TestPDFCellDotPath(t *testing.T) {
	row := Row{
		"summary": map[string]any{"net": 42.5, "nested": map[string]any{"deep": "v"}},
		"flat":    "x",
	}

	if got := pdfCell(row, "summary.net"); got != "42.5" {
		t.Errorf("summary.net = %q", got)
	}
	if got := pdfCell(row, "summary.nested.deep"); got != "v" {
		t.Errorf("summary.nested.deep = %q", got)
	}
	if got := pdfCell(row, "flat"); got != "x" {
		t.Errorf("flat = %q", got)
	}
	if got := pdfCell(row, "missing"); got != "" {
		t.Errorf("missing key = %q, want empty", got)
	}
	if got := pdfCell(row, "flat.deeper"); got != "" {
		t.Errorf("path through scalar = %q, want empty", got)
	}
}

func TestPDFCellNestedJSON(t *testing.T) {
	row := Row{"byCategory": map[string]any{"Rent": float64(-500)}}
	if got := pdfCell(row, "byCategory"); !strings.Contains(got, `"Rent":-500`) {
		t.Errorf("nested value = %q, want JSON object", got)
	}
}

func TestFileName(t *testing.T) {
	now := time.UnixMilli(1735689600123)
	got := FileName(TypeTransactions, PeriodThisMonth, FormatCSV, now)
	want := "transactions-this_month-1735689600123.csv"
	if got != want {
		t.Errorf("FileName = %q, want %q", got, want)
	}
}

func TestPeriodLabel(t *testing.T) {
	if got := PeriodLabel(PeriodYTD, "", ""); got != "ytd" {
		t.Errorf("ytd label = %q", got)
	}
	if got := PeriodLabel(PeriodCustom, "2025-01-01", "2025-02-01"); got != "2025-01-01 → 2025-02-01" {
		t.Errorf("custom label = %q", got)
	}
}
