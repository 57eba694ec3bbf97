package report

import (
	"context"
	"math"
	"sort"
	"time"

	"taxpal/internal/models"
)

// Row is one report line, keyed by field name. Rows stay loosely typed so the
// encoders can select fields per report type and fall back to the key set of
// the first row.
type Row = map[string]any

// Result is the shaped output of a fetch: raw matching rows plus the summary
// snapshot persisted with the report record.
type Result struct {
	Rows    []Row
	Summary map[string]any
}

// DataSource is the slice of the document store the report pipeline reads.
// Queries are deliberately not user-scoped, matching the rest of the pipeline.
type DataSource interface {
	// TransactionsInRange returns transactions whose date OR creation time
	// falls within the range, newest-creation-first.
	TransactionsInRange(ctx context.Context, r Range) ([]models.Transaction, error)
	// BudgetsInRange returns budgets under the same widened predicate.
	BudgetsInRange(ctx context.Context, r Range) ([]models.Budget, error)
	// AllBudgets returns every budget with no date filter.
	AllBudgets(ctx context.Context) ([]models.Budget, error)
}

type fetchFunc func(ctx context.Context, src DataSource, r Range) (*Result, error)

// typeSpec is the single registration point for a report variant: how to
// fetch and summarize its data, which fields the CSV encoder emits, which
// columns the PDF encoder emits, and how rows are normalized before
// rendering.
type typeSpec struct {
	fetch      fetchFunc
	csvFields  []string
	pdfColumns []string
	// filterDeleted drops soft-deleted rows before rendering.
	filterDeleted bool
	// summaryOnly collapses the rendered row set to the summary object.
	summaryOnly bool
}

var typeSpecs = map[Type]typeSpec{
	TypeTransactions: {
		fetch:         fetchTransactions,
		csvFields:     []string{"date", "amount", "type", "category", "description", "account"},
		pdfColumns:    []string{"date", "amount", "type", "category", "description"},
		filterDeleted: true,
	},
	TypeBudgets: {
		fetch:      fetchBudgets,
		csvFields:  []string{"title", "limit", "spent", "category"},
		pdfColumns: []string{"title", "limit", "spent", "category"},
	},
	TypeTax: {
		fetch:         fetchTax,
		csvFields:     []string{"date", "amount", "type", "category", "description"},
		pdfColumns:    []string{"date", "amount", "type", "category", "description"},
		filterDeleted: true,
	},
	TypeIncomeStatement: {
		fetch:         fetchIncomeStatement,
		csvFields:     []string{"date", "amount", "type", "category", "description"},
		pdfColumns:    []string{"date", "amount", "type", "category", "description"},
		filterDeleted: true,
	},
	TypeBalanceSheet: {
		fetch:       fetchBalanceSheet,
		summaryOnly: true,
	},
}

// Fetch queries the store for a report type over a resolved range and shapes
// rows plus a summary. An unknown type yields an empty result, not an error.
func Fetch(ctx context.Context, src DataSource, typ Type, r Range) (*Result, error) {
	spec, ok := typeSpecs[typ]
	if !ok {
		return &Result{Rows: []Row{}, Summary: map[string]any{}}, nil
	}
	return spec.fetch(ctx, src, r)
}

// Normalize prepares fetched rows for rendering: soft-deleted rows are
// filtered for transaction-shaped types and balance_sheet collapses to the
// single summary row.
func Normalize(typ Type, res *Result) []Row {
	spec, ok := typeSpecs[typ]
	if !ok {
		return res.Rows
	}
	if spec.summaryOnly {
		return []Row{res.Summary}
	}
	if !spec.filterDeleted {
		return res.Rows
	}
	rows := make([]Row, 0, len(res.Rows))
	for _, row := range res.Rows {
		if deleted, _ := row["isDeleted"].(bool); deleted {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// CSVFields returns the hardcoded field list for the type, or the sorted key
// set of the first row when none is defined.
func CSVFields(typ Type, rows []Row) []string {
	if spec, ok := typeSpecs[typ]; ok && len(spec.csvFields) > 0 {
		return spec.csvFields
	}
	return firstRowKeys(rows)
}

// PDFColumns is the PDF analogue of CSVFields.
func PDFColumns(typ Type, rows []Row) []string {
	if spec, ok := typeSpecs[typ]; ok && len(spec.pdfColumns) > 0 {
		return spec.pdfColumns
	}
	return firstRowKeys(rows)
}

func firstRowKeys(rows []Row) []string {
	if len(rows) == 0 {
		return []string{}
	}
	keys := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func fetchTransactions(ctx context.Context, src DataSource, r Range) (*Result, error) {
	txs, err := src.TransactionsInRange(ctx, r)
	if err != nil {
		return nil, err
	}
	return &Result{
		Rows:    transactionRows(txs),
		Summary: map[string]any{"count": len(txs)},
	}, nil
}

func fetchBudgets(ctx context.Context, src DataSource, r Range) (*Result, error) {
	budgets, err := src.BudgetsInRange(ctx, r)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(budgets))
	for _, b := range budgets {
		rows = append(rows, Row{
			"id":          b.ID.String(),
			"category":    b.Category,
			"amount":      b.Amount,
			"spent":       b.Spent,
			"date":        b.Date.Format(dateLayout),
			"description": b.Description,
			"createdAt":   b.CreatedAt.Format(time.RFC3339),
		})
	}
	return &Result{
		Rows:    rows,
		Summary: map[string]any{"count": len(budgets)},
	}, nil
}

func fetchTax(ctx context.Context, src DataSource, r Range) (*Result, error) {
	txs, err := src.TransactionsInRange(ctx, r)
	if err != nil {
		return nil, err
	}
	var totalIncome, totalExpense float64
	for _, t := range txs {
		if isIncome(t) {
			totalIncome += math.Abs(t.Amount)
		} else {
			totalExpense += math.Abs(t.Amount)
		}
	}
	return &Result{
		Rows: transactionRows(txs),
		Summary: map[string]any{
			"totalIncome":  totalIncome,
			"totalExpense": totalExpense,
			"taxable":      math.Max(0, totalIncome-totalExpense),
		},
	}, nil
}

func fetchIncomeStatement(ctx context.Context, src DataSource, r Range) (*Result, error) {
	txs, err := src.TransactionsInRange(ctx, r)
	if err != nil {
		return nil, err
	}
	var revenue, expenses float64
	byCategory := map[string]float64{}
	for _, t := range txs {
		if isIncome(t) {
			revenue += math.Abs(t.Amount)
		} else {
			expenses += math.Abs(t.Amount)
		}
		cat := t.Category
		if cat == "" {
			cat = "Uncategorized"
		}
		byCategory[cat] += t.Amount
	}
	return &Result{
		Rows: transactionRows(txs),
		Summary: map[string]any{
			"revenue":    revenue,
			"expenses":   expenses,
			"net":        revenue - expenses,
			"byCategory": byCategory,
		},
	}, nil
}

func fetchBalanceSheet(ctx context.Context, src DataSource, r Range) (*Result, error) {
	txs, err := src.TransactionsInRange(ctx, r)
	if err != nil {
		return nil, err
	}
	var cash float64
	for _, t := range txs {
		if isIncome(t) {
			cash += math.Abs(t.Amount)
		} else {
			cash -= math.Abs(t.Amount)
		}
	}
	// Budgets are loaded with no date filter; they feed the balance snapshot
	// only and are never rendered as rows.
	if _, err := src.AllBudgets(ctx); err != nil {
		return nil, err
	}
	return &Result{
		Summary: map[string]any{
			"cash": cash,
			// Liabilities are intentionally hardcoded to zero.
			"liabilities": float64(0),
			"assets":      cash,
		},
	}, nil
}

// isIncome classifies a transaction: the declared type wins only when the
// amount is non-positive; a positive amount is income regardless of type.
func isIncome(t models.Transaction) bool {
	return t.Type == models.TransactionIncome || t.Amount > 0
}

func transactionRows(txs []models.Transaction) []Row {
	rows := make([]Row, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, Row{
			"id":          t.ID.String(),
			"date":        t.Date.Format(dateLayout),
			"amount":      t.Amount,
			"type":        string(t.Type),
			"category":    t.Category,
			"currency":    t.Currency,
			"description": t.Description,
			"note":        t.Note,
			"isDeleted":   t.IsDeleted,
			"createdAt":   t.CreatedAt.Format(time.RFC3339),
		})
	}
	return rows
}
