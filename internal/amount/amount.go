package amount

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/model"
)

// Places is the number of fractional digits money is rounded to.
const Places = 2

// Of returns the monetary value of a record: the amount when set, otherwise
// shares times price per share. Records missing both degrade to zero.
func Of(r model.Record) decimal.Decimal {
	switch {
	case r.HasAmount():
		return r.Amount.Decimal.Round(Places)
	case r.HasShares():
		return r.Shares.Decimal.Mul(r.PricePerShare.Decimal).Round(Places)
	default:
		return decimal.Zero
	}
}

// Total sums Of over records. An empty list totals zero.
func Total(records []model.Record) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(Of(r))
	}
	return sum
}

// Tone is the semantic colour of a signed amount.
type Tone int

const (
	Positive Tone = iota
	Negative
)

// ToneOf classifies value rounded to Places, matching Format. Zero counts
// as positive.
func ToneOf(value decimal.Decimal) Tone {
	if value.Round(Places).IsNegative() {
		return Negative
	}
	return Positive
}

// Color returns the hex colour used to draw the tone.
func (t Tone) Color() string {
	if t == Negative {
		return "#F15B5B"
	}
	return "#5CCB76"
}

func (t Tone) String() string {
	if t == Negative {
		return "negative"
	}
	return "positive"
}

// MarshalText renders the tone as "positive" or "negative".
func (t Tone) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
