package records

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/grouping"
	"github.com/cleared-dev/tally/internal/model"
)

var (
	ErrInvalidDate = errors.New("invalid record date")
	ErrUnknownKind = errors.New("unknown record kind")
)

// Source reads stored records.
type Source interface {
	ReadMonth(ctx context.Context, year, month int) ([]model.Record, error)
	ReadYear(ctx context.Context, year int) ([]model.Record, error)
}

// Store is a Source that can also persist new records.
type Store interface {
	Source
	AddBatch(ctx context.Context, params []AddParams) ([]string, error)
}

// AddParams holds the fields of a new record. The ID is assigned on insert.
type AddParams struct {
	Kind          model.Kind
	DateString    string
	Description   string
	Category      string
	Amount        decimal.NullDecimal
	Shares        decimal.NullDecimal
	PricePerShare decimal.NullDecimal
}

func (p AddParams) record(recordID string) model.Record {
	return model.Record{
		ID:            recordID,
		Kind:          p.Kind,
		DateString:    p.DateString,
		Description:   p.Description,
		Category:      p.Category,
		Amount:        p.Amount,
		Shares:        p.Shares,
		PricePerShare: p.PricePerShare,
	}
}

// OfKind returns the records of kind k, preserving order.
func OfKind(recs []model.Record, k model.Kind) []model.Record {
	out := make([]model.Record, 0, len(recs))
	for _, r := range recs {
		if r.Kind == k {
			out = append(out, r)
		}
	}
	return out
}

// MonthWeeks reads one month from src and buckets the records of kind k by
// week.
func MonthWeeks(ctx context.Context, src Source, year, month int, k model.Kind) (grouping.WeekBuckets, error) {
	recs, err := src.ReadMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	return grouping.ByWeek(OfKind(recs, k)), nil
}

var (
	_ Store = (*Service)(nil)
	_ Store = (*SQLiteStore)(nil)
)
