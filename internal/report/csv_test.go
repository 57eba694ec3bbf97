package report

import (
	"strings"
	"testing"
)

func TestEncodeCSVHeaderAndRows(t *testing.T) {
	rows := []Row{
		{"date": "2025-01-02", "amount": float64(1500), "category": "Rent"},
		{"date": "2025-01-05", "amount": 42.5, "category": "Groceries"},
	}
	got := EncodeCSV(rows, []string{"date", "amount", "category"})

	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), got)
	}
	if lines[0] != "date,amount,category" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "2025-01-02,1500,Rent" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "2025-01-05,42.5,Groceries" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestEncodeCSVMissingFieldEmpty(t *testing.T) {
	rows := []Row{{"a": "x"}}
	got := EncodeCSV(rows, []string{"a", "b"})
	if !strings.HasSuffix(got, "\nx,") {
		t.Errorf("missing field should render empty: %q", got)
	}
}

func TestCSVRoundTripSpecialCharacters(t *testing.T) {
	rows := []Row{
		{"desc": "hello, world", "note": "plain"},
		{"desc": `she said "hi"`, "note": "multi\nline"},
		{"desc": "trailing\r", "note": ""},
	}
	fields := []string{"desc", "note"}
	encoded := EncodeCSV(rows, fields)
	parsed := ParseCSV(encoded)

	if len(parsed) != 4 {
		t.Fatalf("parsed %d rows, want 4 (header + 3)", len(parsed))
	}
	if parsed[0][0] != "desc" || parsed[0][1] != "note" {
		t.Errorf("header = %v", parsed[0])
	}
	for i, row := range rows {
		got := parsed[i+1]
		if got[0] != row["desc"] || got[1] != row["note"] {
			t.Errorf("row %d = %v, want [%q %q]", i, got, row["desc"], row["note"])
		}
	}
}

func TestParseCSVDoubledQuotes(t *testing.T) {
	rows := ParseCSV(`a,"b""c",d`)
	if len(rows) != 1 || len(rows[0]) != 3 {
		t.Fatalf("rows = %v", rows)
	}
	if rows[0][1] != `b"c` {
		t.Errorf("cell = %q, want b\"c", rows[0][1])
	}
}

func TestParseCSVCRLFSingleBreak(t *testing.T) {
	rows := ParseCSV("a,b\r\nc,d\r\n")
	if len(rows) != 2 {
		t.Fatalf("parsed %d rows, want 2: %v", len(rows), rows)
	}
	if rows[1][0] != "c" || rows[1][1] != "d" {
		t.Errorf("row 2 = %v", rows[1])
	}
}

func TestParseCSVQuotedLineBreak(t *testing.T) {
	rows := ParseCSV("\"a\nb\",c")
	if len(rows) != 1 {
		t.Fatalf("quoted newline split the row: %v", rows)
	}
	if rows[0][0] != "a\nb" {
		t.Errorf("cell = %q", rows[0][0])
	}
}

func TestParseCSVEmptyInput(t *testing.T) {
	if rows := ParseCSV(""); len(rows) != 0 {
		t.Errorf("empty input produced rows: %v", rows)
	}
}

func TestFormatCell(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"s", "s"},
		{true, "true"},
		{7, "7"},
		{int64(9), "9"},
		{float64(1000000), "1000000"},
		{3.14, "3.14"},
		{map[string]any{"k": 1}, `{"k":1}`},
	}
	for _, tc := range cases {
		if got := formatCell(tc.in); got != tc.want {
			t.Errorf("formatCell(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
