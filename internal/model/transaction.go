package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the direction of a classified transaction.
type Kind string

const (
	KindDebit    Kind = "Debit"
	KindCredit   Kind = "Credit"
	KindRecharge Kind = "Recharge"
)

// Valid reports whether k is one of the three transaction kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindDebit, KindCredit, KindRecharge:
		return true
	}
	return false
}

// Category is the coarse spending category assigned to a transaction.
type Category string

const (
	CategoryWalletLoad     Category = "Wallet Load"
	CategoryMobileRecharge Category = "Mobile Recharge"
	CategoryDeposit        Category = "Deposit"
	CategoryWithdrawal     Category = "Withdrawal"
	CategoryOther          Category = "Other"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryWalletLoad, CategoryMobileRecharge, CategoryDeposit, CategoryWithdrawal, CategoryOther:
		return true
	}
	return false
}

// Transaction is one structured financial record extracted from a single
// message. Amount is always strictly positive; direction lives in Kind.
// A zero OccurredAt means the source message carried no timestamp.
type Transaction struct {
	ID         string
	Kind       Kind
	Amount     decimal.Decimal
	Category   Category
	SourceText string
	Sender     string
	OccurredAt time.Time
}

// Dated reports whether the transaction has a usable timestamp. Undated
// transactions are excluded from date-bucketed views but still count toward
// unfiltered totals.
func (t Transaction) Dated() bool {
	return !t.OccurredAt.IsZero()
}
