package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// EncodeCSV renders one header line plus one line per row. Fields containing
// the delimiter, the quote character, or a line break are quoted with
// internal quotes doubled (RFC 4180).
func EncodeCSV(rows []Row, fields []string) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCSVField(f))
	}
	for _, row := range rows {
		b.WriteByte('\n')
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeCSVField(formatCell(row[f])))
		}
	}
	return b.String()
}

// WriteCSVFile encodes rows and writes them under path, creating the target
// directory if absent. The file is fully written before return.
func WriteCSVFile(path string, rows []Row, fields []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(EncodeCSV(rows, fields)), 0o644)
}

func escapeCSVField(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// formatCell stringifies a row value: numbers without exponent notation,
// nested structures as JSON, missing values as the empty string.
func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// ParseCSV is the permissive reader used for previews. It is a small state
// machine over two states (inside/outside quotes): a doubled quote inside a
// quoted field emits one quote, delimiters and line breaks are literal while
// quoted, and CRLF counts as a single row break.
func ParseCSV(text string) [][]string {
	var rows [][]string
	var row []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch == '"' {
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
			continue
		}
		if ch == ',' && !inQuotes {
			row = append(row, cur.String())
			cur.Reset()
			continue
		}
		if (ch == '\n' || ch == '\r') && !inQuotes {
			if cur.Len() > 0 || len(row) > 0 {
				row = append(row, cur.String())
				rows = append(rows, row)
				row = nil
				cur.Reset()
			}
			if ch == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			continue
		}
		cur.WriteByte(ch)
	}
	if cur.Len() > 0 || len(row) > 0 {
		row = append(row, cur.String())
		rows = append(rows, row)
	}
	return rows
}
