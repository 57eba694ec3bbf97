package report

import (
	"fmt"
	"time"
)

// Type identifies one of the closed set of report variants. Each type has an
// entry in typeSpecs; adding a variant means adding one entry there.
type Type string

const (
	TypeTransactions    Type = "transactions"
	TypeBudgets         Type = "budgets"
	TypeTax             Type = "tax"
	TypeIncomeStatement Type = "income_statement"
	TypeBalanceSheet    Type = "balance_sheet"
)

// Format is the output encoding of a generated report file.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// Period is a symbolic name resolved to a concrete date range.
type Period string

const (
	PeriodThisMonth   Period = "this_month"
	PeriodLastMonth   Period = "last_month"
	PeriodThisQuarter Period = "this_quarter"
	PeriodLastQuarter Period = "last_quarter"
	PeriodYTD         Period = "ytd"
	PeriodCustom      Period = "custom"
)

// FileName derives the storage key for a generated report, unique per
// invocation at millisecond resolution.
func FileName(typ Type, period Period, format Format, now time.Time) string {
	return fmt.Sprintf("%s-%s-%d.%s", typ, period, now.UnixMilli(), format)
}

// PeriodLabel is the human-readable period line used in rendered output.
func PeriodLabel(period Period, from, to string) string {
	if period == PeriodCustom {
		return fmt.Sprintf("%s → %s", from, to)
	}
	return string(period)
}
