// Package grouping reshapes flat record lists into per-day, per-week and
// per-month buckets and turns buckets into chart point series.
//
// All functions return new collections and never modify their inputs.
// Records whose date cannot be mapped into the requested shape are left out
// of the buckets.
package grouping

import (
	"github.com/cleared-dev/tally/internal/calendar"
	"github.com/cleared-dev/tally/internal/model"
)

// WeekBuckets maps a week number (1..4) to the records of that week.
type WeekBuckets map[int][]model.Record

// DayBuckets holds one list per day; index 0 is the first day.
type DayBuckets [][]model.Record

// MonthBuckets holds one list per month; index 0 is January.
type MonthBuckets [][]model.Record

const monthsPerYear = 12

func newBuckets(n int) [][]model.Record {
	if n < 0 {
		n = 0
	}
	b := make([][]model.Record, n)
	for i := range b {
		b[i] = []model.Record{}
	}
	return b
}

// ByWeek buckets records of one month by week number. Keys 1..4 are always
// present.
func ByWeek(records []model.Record) WeekBuckets {
	weeks := make(WeekBuckets, calendar.WeeksPerMonth)
	for w := 1; w <= calendar.WeeksPerMonth; w++ {
		weeks[w] = []model.Record{}
	}
	for _, r := range records {
		w := calendar.WeekOfMonth(calendar.DayOfMonth(r.DateString))
		if w == 0 {
			continue
		}
		weeks[w] = append(weeks[w], r)
	}
	return weeks
}

// ByDayWithinWeek buckets the records of one week by their position in the
// week. The result has daysInWeek buckets, all initialised.
func ByDayWithinWeek(records []model.Record, daysInWeek int) DayBuckets {
	days := newBuckets(daysInWeek)
	for _, r := range records {
		pos := calendar.DayOfWeek(calendar.DayOfMonth(r.DateString))
		if pos < 1 || pos > len(days) {
			continue
		}
		days[pos-1] = append(days[pos-1], r)
	}
	return days
}

// ByDayWithinMonth flattens week buckets into daysInMonth day buckets,
// placing each record at its day of month.
func ByDayWithinMonth(weeks WeekBuckets, daysInMonth int) DayBuckets {
	days := newBuckets(daysInMonth)
	for w := 1; w <= calendar.WeeksPerMonth; w++ {
		for _, r := range weeks[w] {
			day := calendar.DayOfMonth(r.DateString)
			if day < 1 || day > len(days) {
				continue
			}
			days[day-1] = append(days[day-1], r)
		}
	}
	return days
}

// ByMonth buckets records of one year by month.
func ByMonth(records []model.Record) MonthBuckets {
	months := newBuckets(monthsPerYear)
	for _, r := range records {
		d, ok := calendar.ParseDate(r.DateString)
		if !ok || d.Month < 1 || d.Month > monthsPerYear {
			continue
		}
		months[d.Month-1] = append(months[d.Month-1], r)
	}
	return months
}

// MergeByDay concatenates a and b bucket by bucket. The result is as long as
// the longer input; missing buckets count as empty.
func MergeByDay(a, b DayBuckets) DayBuckets {
	n := max(len(a), len(b))
	merged := make(DayBuckets, n)
	for i := range merged {
		merged[i] = concat(at(a, i), at(b, i))
	}
	return merged
}

// MergeByWeek concatenates a and b week by week. Weeks 1..4 are always
// present in the result, along with any other key found in either input.
func MergeByWeek(a, b WeekBuckets) WeekBuckets {
	merged := make(WeekBuckets, calendar.WeeksPerMonth)
	for w := 1; w <= calendar.WeeksPerMonth; w++ {
		merged[w] = concat(a[w], b[w])
	}
	for _, src := range []WeekBuckets{a, b} {
		for w := range src {
			if _, ok := merged[w]; !ok {
				merged[w] = concat(a[w], b[w])
			}
		}
	}
	return merged
}

func at(b [][]model.Record, i int) []model.Record {
	if i < len(b) {
		return b[i]
	}
	return nil
}

func concat(a, b []model.Record) []model.Record {
	out := make([]model.Record, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
