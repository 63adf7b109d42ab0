package importer

import (
	"io"

	"github.com/cleared-dev/tally/internal/model"
)

// GenericParser reads a minimal "date,description,amount" CSV with ISO dates.
// Extra columns are ignored; the header row is required. Negative amounts
// are debits.
type GenericParser struct{}

const (
	genericFormat     = "generic"
	genericDateFormat = "2006-01-02"
)

// Format returns the parser name.
func (p *GenericParser) Format() string { return genericFormat }

// Parse reads the CSV and returns BankTransactions.
func (p *GenericParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	t, err := readTable(r, genericFormat, -1, "date", "description", "amount")
	if err != nil {
		return nil, err
	}

	var txns []model.BankTransaction
	err = t.each(func(rw row) error {
		date, err := rw.date("date", genericDateFormat)
		if err != nil {
			return err
		}
		amt, err := rw.decimal("amount")
		if err != nil {
			return err
		}
		desc := rw.get("description")
		txns = append(txns, model.BankTransaction{
			Date:        date,
			Description: desc,
			Amount:      amt,
			Reference:   reference(genericFormat, date, desc),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txns, nil
}
