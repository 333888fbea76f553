package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fintrack-dev/fintrack/internal/model"
)

var now = time.Date(2025, 12, 24, 18, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func txnAt(kind model.Kind, amount string, occurredAt time.Time) model.Transaction {
	return model.Transaction{
		ID:         "t",
		Kind:       kind,
		Amount:     dec(amount),
		Category:   model.CategoryOther,
		SourceText: "x",
		OccurredAt: occurredAt,
	}
}

func TestAnalyze(t *testing.T) {
	txns := []model.Transaction{
		txnAt(model.KindDebit, "100.00", now.Add(-2*time.Hour)),     // today
		txnAt(model.KindCredit, "500.00", now.AddDate(0, 0, -3)),    // this week + month
		txnAt(model.KindRecharge, "299.00", now.AddDate(0, 0, -10)), // this month only
		txnAt(model.KindDebit, "50.00", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		txnAt(model.KindDebit, "999.00", time.Time{}), // undated, skipped
	}

	a := Analyze(txns, now)

	assert.True(t, a.Today.Spent.Equal(dec("100.00")), "today spent %s", a.Today.Spent)
	assert.True(t, a.Today.Credited.IsZero())

	assert.True(t, a.Week.Spent.Equal(dec("100.00")))
	assert.True(t, a.Week.Credited.Equal(dec("500.00")))

	// Recharge counts as spend.
	assert.True(t, a.Month.Spent.Equal(dec("399.00")), "month spent %s", a.Month.Spent)
	assert.True(t, a.Month.Credited.Equal(dec("500.00")))
}

func TestTotals_IncludesUndated(t *testing.T) {
	txns := []model.Transaction{
		txnAt(model.KindDebit, "100.00", now),
		txnAt(model.KindDebit, "999.00", time.Time{}),
		txnAt(model.KindCredit, "50.00", time.Time{}),
	}

	p := Totals(txns)
	assert.True(t, p.Spent.Equal(dec("1099.00")))
	assert.True(t, p.Credited.Equal(dec("50.00")))
}

func TestFilterByDate(t *testing.T) {
	today := txnAt(model.KindDebit, "1", now.Add(-time.Hour))
	thisWeek := txnAt(model.KindDebit, "2", now.AddDate(0, 0, -5))
	thisMonth := txnAt(model.KindDebit, "3", now.AddDate(0, 0, -15))
	undated := txnAt(model.KindDebit, "4", time.Time{})
	txns := []model.Transaction{today, thisWeek, thisMonth, undated}

	assert.Len(t, FilterByDate(txns, DateAll, now), 4)
	assert.Len(t, FilterByDate(txns, DateToday, now), 1)
	assert.Len(t, FilterByDate(txns, DateWeek, now), 2)
	assert.Len(t, FilterByDate(txns, DateMonth, now), 3)
}

func TestFilterByKind(t *testing.T) {
	txns := []model.Transaction{
		txnAt(model.KindDebit, "1", now),
		txnAt(model.KindCredit, "2", now),
		txnAt(model.KindRecharge, "3", now),
	}

	assert.Len(t, FilterByKind(txns, model.KindDebit), 1)
	assert.Len(t, FilterByKind(txns, ""), 3)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "NPR 1250.00", FormatAmount("NPR", dec("1250")))
	assert.Equal(t, "NPR 99.50", FormatAmount("NPR", dec("99.5")))
}
