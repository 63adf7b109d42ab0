package importer

import (
	"strings"

	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/records"
)

// Rule assigns Category to transactions whose description contains Match
// (case-insensitive).
type Rule struct {
	Match    string
	Category string
}

// ToRecords converts bank transactions into record insert params. Debits
// become expenses and credits become incomes, both with positive amounts.
// The first matching rule picks the category.
func ToRecords(txns []model.BankTransaction, rules []Rule) []records.AddParams {
	params := make([]records.AddParams, 0, len(txns))
	for _, t := range txns {
		params = append(params, records.AddParams{
			Kind:        t.Kind(),
			DateString:  t.Date.Format("2006-01-02"),
			Description: t.Description,
			Category:    categorize(t.Description, rules),
			Amount:      model.FixedAmount(t.Amount.Abs()),
		})
	}
	return params
}

func categorize(desc string, rules []Rule) string {
	d := strings.ToLower(desc)
	for _, r := range rules {
		if r.Match != "" && strings.Contains(d, strings.ToLower(r.Match)) {
			return r.Category
		}
	}
	return ""
}
