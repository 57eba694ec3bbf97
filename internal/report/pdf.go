package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
)

// maxPDFRows caps rendered rows; a truncation marker line is appended when
// the row set is larger.
const maxPDFRows = 2000

const truncationMarker = "… (truncated) …"

// WritePDF renders a paginated A4 document: a title, a period line, a
// pipe-joined header and one pipe-joined line per row. The file is flushed
// and closed before return.
func WritePDF(path, title, periodLabel string, rows []Row, columns []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(40, 40, 40)
	doc.SetAutoPageBreak(true, 40)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 18)
	doc.MultiCell(0, 22, tr(title), "", "L", false)
	doc.SetFont("Helvetica", "", 10)
	doc.MultiCell(0, 14, tr("Period: "+periodLabel), "", "L", false)
	doc.Ln(8)

	doc.SetFont("Helvetica", "B", 12)
	doc.MultiCell(0, 16, tr(strings.Join(columns, " | ")), "", "L", false)
	doc.SetFont("Helvetica", "", 10)

	for _, line := range BuildPDFLines(rows, columns) {
		doc.MultiCell(0, 13, tr(line), "", "L", false)
	}

	return doc.OutputFileAndClose(path)
}

// BuildPDFLines produces the pipe-joined body lines, applying the row cap.
// It is separated from rendering so the layout contract is testable.
func BuildPDFLines(rows []Row, columns []string) []string {
	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		if i >= maxPDFRows {
			lines = append(lines, truncationMarker)
			break
		}
		cells := make([]string, len(columns))
		for j, col := range columns {
			cells[j] = pdfCell(row, col)
		}
		lines = append(lines, strings.Join(cells, " | "))
	}
	return lines
}

// pdfCell resolves a dot-path column against a row. Missing values render
// empty; nested values are stringified as JSON.
func pdfCell(row Row, column string) string {
	var val any = row
	for _, part := range strings.Split(column, ".") {
		m, ok := val.(map[string]any)
		if !ok {
			return ""
		}
		val, ok = m[part]
		if !ok {
			return ""
		}
	}
	switch val.(type) {
	case map[string]any, []any, map[string]float64:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	default:
		return formatCell(val)
	}
}
