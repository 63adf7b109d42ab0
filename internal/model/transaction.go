package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction represents a parsed bank CSV row.
type BankTransaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = expense, positive = income
	Reference   string
	Type        string // bank transaction type (ACH_DEBIT, etc.)
}

// Kind maps the sign of the transaction to a record kind.
func (t BankTransaction) Kind() Kind {
	if t.Amount.IsNegative() {
		return KindExpense
	}
	return KindIncome
}
