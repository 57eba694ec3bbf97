package report

import (
	"context"
	"testing"
	"time"

	"taxpal/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	transactions []models.Transaction
	budgets      []models.Budget
	allBudgets   []models.Budget

	allBudgetsCalls int
}

func (s *stubSource) TransactionsInRange(ctx context.Context, r Range) ([]models.Transaction, error) {
	return s.transactions, nil
}

func (s *stubSource) BudgetsInRange(ctx context.Context, r Range) ([]models.Budget, error) {
	return s.budgets, nil
}

func (s *stubSource) AllBudgets(ctx context.Context) ([]models.Budget, error) {
	s.allBudgetsCalls++
	return s.allBudgets, nil
}

func tx(typ models.TransactionType, amount float64, category string, deleted bool) models.Transaction {
	return models.Transaction{
		ID:        uuid.New(),
		Type:      typ,
		Category:  category,
		Amount:    amount,
		Date:      time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local),
		IsDeleted: deleted,
	}
}

func TestFetchTransactionsCountsBeforeFiltering(t *testing.T) {
	src := &stubSource{transactions: []models.Transaction{
		tx(models.TransactionIncome, 100, "Salary", false),
		tx(models.TransactionExpense, -40, "Rent", true),
	}}

	res, err := Fetch(context.Background(), src, TypeTransactions, Range{})
	require.NoError(t, err)

	// The summary counts every matching row; soft-deleted rows drop out only
	// at normalization.
	assert.Equal(t, 2, res.Summary["count"])

	rows := Normalize(TypeTransactions, res)
	require.Len(t, rows, 1)
	assert.Equal(t, "Salary", rows[0]["category"])
}

func TestFetchTaxSummary(t *testing.T) {
	src := &stubSource{transactions: []models.Transaction{
		tx(models.TransactionIncome, 1000, "Salary", false),
		tx(models.TransactionExpense, -300, "Rent", false),
		tx(models.TransactionExpense, -900, "Equipment", false),
	}}

	res, err := Fetch(context.Background(), src, TypeTax, Range{})
	require.NoError(t, err)

	assert.Equal(t, float64(1000), res.Summary["totalIncome"])
	assert.Equal(t, float64(1200), res.Summary["totalExpense"])
	// Taxable income clamps at zero.
	assert.Equal(t, float64(0), res.Summary["taxable"])
}

func TestFetchClassificationPositiveAmountIsIncome(t *testing.T) {
	// A positive amount counts as income even when typed expense.
	src := &stubSource{transactions: []models.Transaction{
		tx(models.TransactionExpense, 50, "Refund", false),
	}}

	res, err := Fetch(context.Background(), src, TypeTax, Range{})
	require.NoError(t, err)
	assert.Equal(t, float64(50), res.Summary["totalIncome"])
	assert.Equal(t, float64(0), res.Summary["totalExpense"])
}

func TestFetchIncomeStatement(t *testing.T) {
	src := &stubSource{transactions: []models.Transaction{
		tx(models.TransactionIncome, 2000, "Salary", false),
		tx(models.TransactionExpense, -500, "Rent", false),
		tx(models.TransactionExpense, -100, "", false),
	}}

	res, err := Fetch(context.Background(), src, TypeIncomeStatement, Range{})
	require.NoError(t, err)

	assert.Equal(t, float64(2000), res.Summary["revenue"])
	assert.Equal(t, float64(600), res.Summary["expenses"])
	assert.Equal(t, float64(1400), res.Summary["net"])

	byCategory, ok := res.Summary["byCategory"].(map[string]float64)
	require.True(t, ok)
	assert.Equal(t, float64(2000), byCategory["Salary"])
	assert.Equal(t, float64(-500), byCategory["Rent"])
	assert.Equal(t, float64(-100), byCategory["Uncategorized"])
}

func TestFetchBalanceSheet(t *testing.T) {
	src := &stubSource{
		transactions: []models.Transaction{
			tx(models.TransactionIncome, 500, "Salary", false),
			tx(models.TransactionExpense, -200, "Rent", false),
		},
		allBudgets: []models.Budget{{ID: uuid.New(), Category: "Rent", Amount: 1000}},
	}

	res, err := Fetch(context.Background(), src, TypeBalanceSheet, Range{})
	require.NoError(t, err)

	assert.Equal(t, float64(300), res.Summary["cash"])
	assert.Equal(t, float64(0), res.Summary["liabilities"])
	assert.Equal(t, res.Summary["cash"], res.Summary["assets"])
	assert.Empty(t, res.Rows)
	assert.Equal(t, 1, src.allBudgetsCalls)

	rows := Normalize(TypeBalanceSheet, res)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(300), rows[0]["cash"])
}

func TestFetchBudgets(t *testing.T) {
	src := &stubSource{budgets: []models.Budget{
		{ID: uuid.New(), Category: "Groceries", Amount: 500, Spent: 120, Date: time.Now()},
	}}

	res, err := Fetch(context.Background(), src, TypeBudgets, Range{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Summary["count"])

	rows := Normalize(TypeBudgets, res)
	require.Len(t, rows, 1)
	assert.Equal(t, "Groceries", rows[0]["category"])
	assert.Equal(t, float64(120), rows[0]["spent"])
}

func TestFetchUnknownTypeEmptyResult(t *testing.T) {
	res, err := Fetch(context.Background(), &stubSource{}, Type("cashflow"), Range{})
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
	assert.Empty(t, res.Summary)
}

func TestFetchEmptySource(t *testing.T) {
	for _, typ := range []Type{TypeTransactions, TypeBudgets, TypeTax, TypeIncomeStatement} {
		res, err := Fetch(context.Background(), &stubSource{}, typ, Range{})
		require.NoError(t, err, string(typ))
		assert.Empty(t, res.Rows, string(typ))
		assert.Empty(t, Normalize(typ, res), string(typ))
	}
}

func TestCSVFieldsFallbackSorted(t *testing.T) {
	rows := []Row{{"b": 1, "a": 2, "c": 3}}
	assert.Equal(t, []string{"a", "b", "c"}, CSVFields(TypeBalanceSheet, rows))
	assert.Equal(t, []string{"a", "b", "c"}, PDFColumns(TypeBalanceSheet, rows))
	assert.Empty(t, CSVFields(TypeBalanceSheet, nil))
}

func TestCSVFieldsHardcodedPerType(t *testing.T) {
	assert.Equal(t,
		[]string{"date", "amount", "type", "category", "description", "account"},
		CSVFields(TypeTransactions, nil))
	assert.Equal(t,
		[]string{"title", "limit", "spent", "category"},
		CSVFields(TypeBudgets, nil))
}
