package grouping

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/amount"
	"github.com/cleared-dev/tally/internal/calendar"
	"github.com/cleared-dev/tally/internal/model"
)

// Series is an ordered chart point series.
type Series []decimal.Decimal

// Last returns the final point, or zero for an empty series.
func (s Series) Last() decimal.Decimal {
	if len(s) == 0 {
		return decimal.Zero
	}
	return s[len(s)-1]
}

// Sum adds up all points.
func (s Series) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, v := range s {
		sum = sum.Add(v)
	}
	return sum
}

// Max returns the largest point, or zero for an empty series.
func (s Series) Max() decimal.Decimal {
	m := decimal.Zero
	for i, v := range s {
		if i == 0 || v.GreaterThan(m) {
			m = v
		}
	}
	return m
}

// DiscreteByDay returns the total of each day bucket.
func DiscreteByDay(days DayBuckets) Series {
	return totals(days)
}

// CumulativeByDay returns the running total across day buckets. Empty days
// carry the previous running total forward.
func CumulativeByDay(days DayBuckets) Series {
	return Cumulative(totals(days))
}

// SeriesByWeek returns the four weekly totals. Missing weeks total zero.
func SeriesByWeek(weeks WeekBuckets) Series {
	s := make(Series, calendar.WeeksPerMonth)
	for w := 1; w <= calendar.WeeksPerMonth; w++ {
		s[w-1] = amount.Total(weeks[w])
	}
	return s
}

// SeriesByMonth returns the total of each month bucket.
func SeriesByMonth(months MonthBuckets) Series {
	return totals(months)
}

// Cumulative returns the running sum of s.
func Cumulative(s Series) Series {
	out := make(Series, len(s))
	running := decimal.Zero
	for i, v := range s {
		running = running.Add(v)
		out[i] = running
	}
	return out
}

func totals(buckets [][]model.Record) Series {
	s := make(Series, len(buckets))
	for i, b := range buckets {
		s[i] = amount.Total(b)
	}
	return s
}
