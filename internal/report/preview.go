package report

import (
	"fmt"
	"html"
	"strings"
)

// maxPreviewRows caps the number of parsed CSV rows rendered in a preview.
const maxPreviewRows = 500

// RenderCSVPreview re-parses just-read CSV text and renders it as an HTML
// table: first parsed row as the header, cells escaped, capped at
// maxPreviewRows with a note when truncated.
func RenderCSVPreview(name, period, csvText string) string {
	rows := ParseCSV(csvText)
	previewRows := rows
	if len(previewRows) > maxPreviewRows {
		previewRows = previewRows[:maxPreviewRows]
	}

	var b strings.Builder
	b.WriteString(`<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width,initial-scale=1" />
  <title>CSV Preview - ` + html.EscapeString(name) + `</title>
  <style>
    body { font-family: system-ui, -apple-system, "Segoe UI", Roboto, "Helvetica Neue", Arial; margin:10px; color:#111; }
    table { border-collapse: collapse; width: 100%; max-width:100%; }
    th, td { border: 1px solid #ddd; padding: 6px 8px; font-size: 13px; text-align: left; }
    thead th { background: #f3f4f6; position: sticky; top:0; z-index:2; }
    tbody tr:nth-child(even) { background: #fbfbfb; }
    .meta { margin-bottom: 12px; color: #444; }
    .truncated { margin-top:8px; color:#666; font-size:13px; }
  </style>
</head>
<body>
`)
	fmt.Fprintf(&b, `  <div class="meta"><strong>%s</strong> — %s — CSV preview (first %d rows)</div>`,
		html.EscapeString(name), html.EscapeString(period), len(previewRows))
	b.WriteString("\n  <div style=\"overflow:auto; max-height:75vh;\">\n    <table>")

	if len(previewRows) > 0 {
		b.WriteString("<thead><tr>")
		for _, h := range previewRows[0] {
			b.WriteString("<th>" + html.EscapeString(h) + "</th>")
		}
		b.WriteString("</tr></thead>")
	}
	// A header-only file still shows the No data indicator.
	if len(previewRows) > 1 {
		b.WriteString("<tbody>")
		for _, r := range previewRows[1:] {
			b.WriteString("<tr>")
			for _, cell := range r {
				b.WriteString("<td>" + html.EscapeString(cell) + "</td>")
			}
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody>")
	} else {
		b.WriteString("<tbody><tr><td><em>No data</em></td></tr></tbody>")
	}

	b.WriteString("</table></div>")
	if len(rows) > len(previewRows) {
		fmt.Fprintf(&b, `<div class="truncated">…preview truncated (%d total rows). Download to view all.</div>`, len(rows))
	}
	b.WriteString("</body></html>")
	return b.String()
}

// RenderPDFPreview wraps the already-rendered file in an inline frame
// pointing at its static URL; the binary is never re-parsed.
func RenderPDFPreview(name, period, staticURL string) string {
	return fmt.Sprintf(`<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width,initial-scale=1" />
  <title>PDF Preview - %s</title>
  <style>
    html,body { height:100%%; margin:0; }
    .container { height:100vh; display:flex; flex-direction:column; }
    iframe { flex:1; border:none; width:100%%; height:100%%; }
    .meta { padding:8px; background:#f5f7fb; font-family: system-ui, -apple-system, "Segoe UI", Roboto, Arial; }
  </style>
</head>
<body>
  <div class="container">
    <div class="meta"><strong>%s</strong> — %s</div>
    <iframe src="%s" title="pdf-preview"></iframe>
  </div>
</body>
</html>`, html.EscapeString(name), html.EscapeString(name), html.EscapeString(period), staticURL)
}

// RenderPreviewFallback is the minimal body for formats with no inline view.
func RenderPreviewFallback(downloadURL string) string {
	return fmt.Sprintf(`<p>Preview not available. <a href="%s" target="_blank">Download</a></p>`, downloadURL)
}
