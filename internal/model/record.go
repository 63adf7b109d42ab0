package model

import (
	"github.com/shopspring/decimal"
)

// Kind classifies a record.
type Kind string

const (
	KindExpense    Kind = "expense"
	KindIncome     Kind = "income"
	KindSaving     Kind = "saving"
	KindInvestment Kind = "investment"
)

// Kinds lists every record kind in display order.
var Kinds = []Kind{KindExpense, KindIncome, KindSaving, KindInvestment}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindExpense, KindIncome, KindSaving, KindInvestment:
		return true
	}
	return false
}

// Record is one expense, income, saving or investment entry.
//
// Expenses, incomes and savings carry Amount. Investments carry Shares and
// PricePerShare instead. Missing values are left invalid rather than zero so
// that "not set" survives a round trip through storage.
type Record struct {
	ID            string
	Kind          Kind
	DateString    string // "YYYY-MM-DD", kept verbatim
	Description   string
	Category      string
	Amount        decimal.NullDecimal
	Shares        decimal.NullDecimal
	PricePerShare decimal.NullDecimal
}

// FixedAmount wraps d as a set amount.
func FixedAmount(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NewNullDecimal(d)
}

// HasAmount reports whether the record carries a plain amount.
func (r Record) HasAmount() bool { return r.Amount.Valid }

// HasShares reports whether the record carries both shares and price per share.
func (r Record) HasShares() bool { return r.Shares.Valid && r.PricePerShare.Valid }
