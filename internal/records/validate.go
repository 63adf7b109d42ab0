package records

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/calendar"
	"github.com/cleared-dev/tally/internal/id"
	"github.com/cleared-dev/tally/internal/model"
)

// Rule identifies which check a ValidationError came from.
type Rule string

const (
	RuleKind      Rule = "kind"
	RuleDate      Rule = "date"
	RuleValue     Rule = "value"
	RuleDecimals  Rule = "decimals"
	RuleCategory  Rule = "category"
	RuleUniqueIDs Rule = "unique-ids"
)

// ValidationError describes a single rule violation.
type ValidationError struct {
	Rule        Rule
	RecordID    string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Rule, e.RecordID, e.Description)
}

// CategoryChecker tests whether a category exists in the catalog.
type CategoryChecker interface {
	Exists(name string) bool
}

// ValidateRecords checks records destined for the year/month file.
// categories may be nil, in which case category names are not checked.
func ValidateRecords(recs []model.Record, categories CategoryChecker, year, month int) []ValidationError {
	var errs []ValidationError
	add := func(rule Rule, rec model.Record, format string, args ...any) {
		errs = append(errs, ValidationError{Rule: rule, RecordID: rec.ID, Description: fmt.Sprintf(format, args...)})
	}

	seen := make(map[string]bool, len(recs))
	for _, rec := range recs {
		if !rec.Kind.Valid() {
			add(RuleKind, rec, "unknown kind %q", rec.Kind)
		}

		d, ok := calendar.ParseDate(rec.DateString)
		switch {
		case !ok:
			add(RuleDate, rec, "date %q is not YYYY-MM-DD", rec.DateString)
		case d.Year != year || d.Month != month:
			add(RuleDate, rec, "date %s not in %04d-%02d", rec.DateString, year, month)
		case d.Day < 1 || d.Day > calendar.DaysInMonth(year, month):
			add(RuleDate, rec, "day %d out of range for %04d-%02d", d.Day, year, month)
		}

		// Exactly one of amount or shares+price.
		if rec.HasAmount() == rec.HasShares() {
			add(RuleValue, rec, "record must have exactly one of amount or shares and price per share")
		}
		if rec.Kind == model.KindInvestment && rec.HasAmount() {
			add(RuleValue, rec, "investments are recorded as shares and price per share")
		}
		if rec.HasShares() && rec.Kind != model.KindInvestment {
			add(RuleValue, rec, "only investments carry shares")
		}
		if rec.HasAmount() && rec.Amount.Decimal.IsNegative() {
			add(RuleValue, rec, "amount %s is negative", rec.Amount.Decimal)
		}

		if rec.HasAmount() && !twoPlaces(rec.Amount.Decimal) {
			add(RuleDecimals, rec, "amount %s has more than 2 decimal places", rec.Amount.Decimal)
		}

		if categories != nil && rec.Category != "" && !categories.Exists(rec.Category) {
			add(RuleCategory, rec, "unknown category %q", rec.Category)
		}

		if rec.ID != "" {
			if seen[rec.ID] {
				add(RuleUniqueIDs, rec, "duplicate record ID")
			}
			seen[rec.ID] = true
			if _, _, _, err := id.Parse(rec.ID); err != nil {
				add(RuleUniqueIDs, rec, "invalid record ID: %v", err)
			}
		}
	}

	return errs
}

func twoPlaces(d decimal.Decimal) bool {
	hundred := decimal.NewFromInt(100)
	scaled := d.Mul(hundred)
	return scaled.Equal(scaled.Floor())
}
