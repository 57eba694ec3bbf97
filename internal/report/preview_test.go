package report

import (
	"fmt"
	"strings"
	"testing"
)

func TestRenderCSVPreviewTable(t *testing.T) {
	csvText := "date,amount\n2025-01-02,100\n2025-01-03,-40"
	html := RenderCSVPreview("transactions-this_month-1.csv", "this_month", csvText)

	if !strings.Contains(html, "<th>date</th><th>amount</th>") {
		t.Error("first parsed row should render as the table header")
	}
	if !strings.Contains(html, "<td>2025-01-02</td><td>100</td>") {
		t.Error("data rows should render as table cells")
	}
	if strings.Contains(html, "truncated (") {
		t.Error("small table should not carry a truncation note")
	}
}

func TestRenderCSVPreviewEscapesHTML(t *testing.T) {
	csvText := "desc\n<script>alert(1)</script>"
	html := RenderCSVPreview("x<y>.csv", "this_month", csvText)

	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Fatal("cell content must be escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("escaped cell content missing")
	}
	if !strings.Contains(html, "x&lt;y&gt;.csv") {
		t.Error("file name must be escaped")
	}
}

func TestRenderCSVPreviewEmpty(t *testing.T) {
	html := RenderCSVPreview("empty.csv", "ytd", "")
	if !strings.Contains(html, "<em>No data</em>") {
		t.Error("empty CSV should render the No data placeholder")
	}
}

func TestRenderCSVPreviewHeaderOnly(t *testing.T) {
	// An empty report still encodes a header line; the preview must show
	// that header plus the No data indicator.
	csvText := EncodeCSV(nil, CSVFields(TypeTransactions, nil))
	html := RenderCSVPreview("transactions-this_month-1.csv", "this_month", csvText)

	if !strings.Contains(html, "<th>date</th>") {
		t.Error("header row should render even with no data rows")
	}
	if !strings.Contains(html, "<em>No data</em>") {
		t.Error("header-only CSV should render the No data placeholder")
	}
	if strings.Contains(html, "<tbody><tr><td>date</td>") {
		t.Error("header must not repeat as a data row")
	}
}

func TestRenderCSVPreviewCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("n\n")
	total := maxPreviewRows + 50
	for i := 0; i < total; i++ {
		fmt.Fprintf(&b, "%d\n", i)
	}
	html := RenderCSVPreview("big.csv", "ytd", b.String())

	if !strings.Contains(html, fmt.Sprintf("first %d rows", maxPreviewRows)) {
		t.Error("meta line should report the capped row count")
	}
	if !strings.Contains(html, fmt.Sprintf("truncated (%d total rows)", total+1)) {
		t.Error("truncation note should report the full parsed row count")
	}
	if strings.Contains(html, fmt.Sprintf("<td>%d</td>", maxPreviewRows)) {
		t.Error("rows past the cap must not render")
	}
}

func TestRenderPDFPreviewIframe(t *testing.T) {
	html := RenderPDFPreview("tax-ytd-1.pdf", "ytd", "http://localhost:5000/reports/tax-ytd-1.pdf")
	if !strings.Contains(html, `<iframe src="http://localhost:5000/reports/tax-ytd-1.pdf"`) {
		t.Error("iframe should point at the static file URL")
	}
	if !strings.Contains(html, "tax-ytd-1.pdf") {
		t.Error("meta line should carry the file name")
	}
}

func TestRenderPreviewFallback(t *testing.T) {
	html := RenderPreviewFallback("http://localhost:5000/reports/x.bin")
	if !strings.Contains(html, `href="http://localhost:5000/reports/x.bin"`) {
		t.Error("fallback should link to the download URL")
	}
}
