package importer

import (
	"io"

	"github.com/cleared-dev/tally/internal/model"
)

// ChaseParser parses Chase checking account CSV exports:
//
//	Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #
type ChaseParser struct{}

const (
	chaseFormat     = "chase"
	chaseDateFormat = "01/02/2006"
	chaseNumFields  = 7

	chaseColDate   = "posting date"
	chaseColDesc   = "description"
	chaseColAmount = "amount"
	chaseColType   = "type"
	chaseColCheck  = "check or slip #"
)

// Format returns the parser name.
func (p *ChaseParser) Format() string { return chaseFormat }

// Parse reads a Chase CSV and returns BankTransactions. Checks are
// referenced by their check number.
func (p *ChaseParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	t, err := readTable(r, chaseFormat, chaseNumFields, chaseColDate, chaseColDesc, chaseColAmount, chaseColType)
	if err != nil {
		return nil, err
	}

	var txns []model.BankTransaction
	err = t.each(func(rw row) error {
		date, err := rw.date(chaseColDate, chaseDateFormat)
		if err != nil {
			return err
		}
		amt, err := rw.decimal(chaseColAmount)
		if err != nil {
			return err
		}

		desc := rw.get(chaseColDesc)
		ref := reference(chaseFormat, date, desc)
		if check := rw.get(chaseColCheck); check != "" {
			ref = chaseFormat + "_check_" + check
		}

		txns = append(txns, model.BankTransaction{
			Date:        date,
			Description: desc,
			Amount:      amt,
			Reference:   ref,
			Type:        rw.get(chaseColType),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txns, nil
}
