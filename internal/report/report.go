package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// DateFilter selects a time window for display.
type DateFilter string

const (
	DateAll   DateFilter = "All"
	DateToday DateFilter = "Today"
	DateWeek  DateFilter = "Week"
	DateMonth DateFilter = "Month"
)

// PeriodTotals is money moved within one window.
type PeriodTotals struct {
	Spent    decimal.Decimal
	Credited decimal.Decimal
}

// Analysis is spent-vs-credited totals for the standard display windows.
type Analysis struct {
	Today PeriodTotals
	Week  PeriodTotals
	Month PeriodTotals
}

// Analyze computes spent and credited totals for today, the trailing 7 days,
// and the current calendar month. Undated transactions are skipped: they
// cannot be placed in any window. Debits and recharges both count as spend.
func Analyze(txns []model.Transaction, now time.Time) Analysis {
	var a Analysis
	for _, txn := range txns {
		if !txn.Dated() {
			continue
		}

		var add func(*PeriodTotals)
		if txn.Kind == model.KindCredit {
			add = func(p *PeriodTotals) { p.Credited = p.Credited.Add(txn.Amount) }
		} else {
			add = func(p *PeriodTotals) { p.Spent = p.Spent.Add(txn.Amount) }
		}

		if sameDay(txn.OccurredAt, now) {
			add(&a.Today)
		}
		if inTrailingWeek(txn.OccurredAt, now) {
			add(&a.Week)
		}
		if sameMonth(txn.OccurredAt, now) {
			add(&a.Month)
		}
	}
	return a
}

// Totals sums spent and credited over all transactions, dated or not.
func Totals(txns []model.Transaction) PeriodTotals {
	var p PeriodTotals
	for _, txn := range txns {
		if txn.Kind == model.KindCredit {
			p.Credited = p.Credited.Add(txn.Amount)
		} else {
			p.Spent = p.Spent.Add(txn.Amount)
		}
	}
	return p
}

// FilterByDate keeps transactions inside the filter window. DateAll keeps
// everything including undated records; the other windows drop undated ones.
func FilterByDate(txns []model.Transaction, filter DateFilter, now time.Time) []model.Transaction {
	if filter == DateAll {
		return txns
	}

	var out []model.Transaction
	for _, txn := range txns {
		if !txn.Dated() {
			continue
		}
		keep := false
		switch filter {
		case DateToday:
			keep = sameDay(txn.OccurredAt, now)
		case DateWeek:
			keep = inTrailingWeek(txn.OccurredAt, now)
		case DateMonth:
			keep = sameMonth(txn.OccurredAt, now)
		}
		if keep {
			out = append(out, txn)
		}
	}
	return out
}

// FilterByKind keeps transactions of one kind. An empty kind keeps all.
func FilterByKind(txns []model.Transaction, kind model.Kind) []model.Transaction {
	if kind == "" {
		return txns
	}
	var out []model.Transaction
	for _, txn := range txns {
		if txn.Kind == kind {
			out = append(out, txn)
		}
	}
	return out
}

// FormatAmount renders an amount for display, e.g. "NPR 1250.00".
func FormatAmount(currency string, amount decimal.Decimal) string {
	return currency + " " + amount.StringFixed(2)
}

func sameDay(t, now time.Time) bool {
	return t.Year() == now.Year() && t.YearDay() == now.YearDay()
}

func inTrailingWeek(t, now time.Time) bool {
	weekAgo := now.AddDate(0, 0, -7)
	return !t.Before(weekAgo) && !t.After(now)
}

func sameMonth(t, now time.Time) bool {
	return t.Year() == now.Year() && t.Month() == now.Month()
}
