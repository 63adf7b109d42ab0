// Package report assembles the week, month and year views of a project's
// records: chart series, totals, category breakdowns and comparisons.
package report

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/amount"
	"github.com/cleared-dev/tally/internal/calendar"
	"github.com/cleared-dev/tally/internal/grouping"
	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/records"
)

// Uncategorized labels records without a category in breakdowns.
const Uncategorized = "Uncategorized"

// Options is the display context shared by all views.
type Options struct {
	CurrencySymbol string
}

// Money is a value together with its display form.
type Money struct {
	Value decimal.Decimal `json:"value"`
	Text  string          `json:"text"`
	Tone  amount.Tone     `json:"tone"`
}

func (o Options) money(v decimal.Decimal) Money {
	return Money{Value: v, Text: amount.Format(v, o.CurrencySymbol), Tone: amount.ToneOf(v)}
}

// WeekView is one kind of record across the days of one week.
type WeekView struct {
	Kind       model.Kind      `json:"kind"`
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Week       int             `json:"week"`
	Range      string          `json:"range"`
	FirstDay   int             `json:"first_day"`
	Discrete   grouping.Series `json:"discrete"`
	Cumulative grouping.Series `json:"cumulative"`
	Total      Money           `json:"total"`
}

// BuildWeek builds the view of week from a month's week buckets.
func BuildWeek(opts Options, kind model.Kind, year, month, week int, weeks grouping.WeekBuckets) WeekView {
	dim := calendar.DaysInMonth(year, month)
	days := grouping.ByDayWithinWeek(weeks[week], calendar.DaysInWeek(week, dim))
	return WeekView{
		Kind:       kind,
		Year:       year,
		Month:      month,
		Week:       week,
		Range:      calendar.WeekRange(week, dim),
		FirstDay:   calendar.FirstDayOfWeek(week),
		Discrete:   grouping.DiscreteByDay(days),
		Cumulative: grouping.CumulativeByDay(days),
		Total:      opts.money(amount.Total(weeks[week])),
	}
}

// KindSeries is the month chart data of one kind.
type KindSeries struct {
	Weekly grouping.Series `json:"weekly"`
	Daily  grouping.Series `json:"daily_cumulative"`
	Total  Money           `json:"total"`
}

// MonthView summarises one month.
type MonthView struct {
	Year        int        `json:"year"`
	Month       int        `json:"month"`
	Name        string     `json:"name"`
	DaysInMonth int        `json:"days_in_month"`
	WeekRanges  []string   `json:"week_ranges"`
	Expenses    KindSeries `json:"expenses"`
	Incomes     KindSeries `json:"incomes"`
	// Savings merges savings and investments.
	Savings    KindSeries `json:"savings"`
	Net        Money      `json:"net"`
	Breakdown  []Slice    `json:"breakdown"`
	VsPrevious Comparison `json:"vs_previous"`
}

// BuildMonth builds the view of year/month. previous holds the records of
// the month before and feeds the expense comparison.
func BuildMonth(opts Options, year, month int, current, previous []model.Record) MonthView {
	dim := calendar.DaysInMonth(year, month)

	weeksOf := func(k model.Kind) grouping.WeekBuckets {
		return grouping.ByWeek(records.OfKind(current, k))
	}
	kindSeries := func(weeks grouping.WeekBuckets, days grouping.DayBuckets) KindSeries {
		weekly := grouping.SeriesByWeek(weeks)
		return KindSeries{
			Weekly: weekly,
			Daily:  grouping.CumulativeByDay(days),
			Total:  opts.money(weekly.Sum()),
		}
	}

	expenseWeeks := weeksOf(model.KindExpense)
	incomeWeeks := weeksOf(model.KindIncome)
	savingWeeks := weeksOf(model.KindSaving)
	investmentWeeks := weeksOf(model.KindInvestment)

	savingDays := grouping.MergeByDay(
		grouping.ByDayWithinMonth(savingWeeks, dim),
		grouping.ByDayWithinMonth(investmentWeeks, dim),
	)

	v := MonthView{
		Year:        year,
		Month:       month,
		Name:        calendar.MonthName(month),
		DaysInMonth: dim,
		Expenses:    kindSeries(expenseWeeks, grouping.ByDayWithinMonth(expenseWeeks, dim)),
		Incomes:     kindSeries(incomeWeeks, grouping.ByDayWithinMonth(incomeWeeks, dim)),
		Savings:     kindSeries(grouping.MergeByWeek(savingWeeks, investmentWeeks), savingDays),
		Breakdown:   Breakdown(opts, records.OfKind(current, model.KindExpense)),
	}
	for w := 1; w <= calendar.WeeksPerMonth; w++ {
		v.WeekRanges = append(v.WeekRanges, calendar.WeekRange(w, dim))
	}
	v.Net = opts.money(v.Incomes.Total.Value.Sub(v.Expenses.Total.Value))
	v.VsPrevious = Compare(opts, v.Expenses.Total.Value, amount.Total(records.OfKind(previous, model.KindExpense)))
	return v
}

// YearView summarises one year month by month.
type YearView struct {
	Year              int             `json:"year"`
	Months            []string        `json:"months"`
	Expenses          grouping.Series `json:"expenses"`
	Incomes           grouping.Series `json:"incomes"`
	Savings           grouping.Series `json:"savings"`
	SavingsCumulative grouping.Series `json:"savings_cumulative"`
	TotalExpenses     Money           `json:"total_expenses"`
	TotalIncomes      Money           `json:"total_incomes"`
	TotalSavings      Money           `json:"total_savings"`
	Net               Money           `json:"net"`
}

// BuildYear builds the view of year from all of its records.
func BuildYear(opts Options, year int, recs []model.Record) YearView {
	monthly := func(kinds ...model.Kind) grouping.Series {
		var sel []model.Record
		for _, k := range kinds {
			sel = append(sel, records.OfKind(recs, k)...)
		}
		return grouping.SeriesByMonth(grouping.ByMonth(sel))
	}

	v := YearView{
		Year:     year,
		Expenses: monthly(model.KindExpense),
		Incomes:  monthly(model.KindIncome),
		Savings:  monthly(model.KindSaving, model.KindInvestment),
	}
	for m := 1; m <= 12; m++ {
		v.Months = append(v.Months, calendar.MonthName(m))
	}
	v.SavingsCumulative = grouping.Cumulative(v.Savings)
	v.TotalExpenses = opts.money(v.Expenses.Sum())
	v.TotalIncomes = opts.money(v.Incomes.Sum())
	v.TotalSavings = opts.money(v.Savings.Sum())
	v.Net = opts.money(v.Incomes.Sum().Sub(v.Expenses.Sum()))
	return v
}

// Comparison contrasts a period's total with the one before it.
type Comparison struct {
	Current  Money `json:"current"`
	Previous Money `json:"previous"`
	Delta    Money `json:"delta"`
	// Percent is the change relative to Previous, rounded to one place.
	// It is nil when Previous is zero.
	Percent *decimal.Decimal `json:"percent,omitempty"`
}

// Compare builds a Comparison of current against previous.
func Compare(opts Options, current, previous decimal.Decimal) Comparison {
	delta := current.Sub(previous)
	c := Comparison{
		Current:  opts.money(current),
		Previous: opts.money(previous),
		Delta:    opts.money(delta),
	}
	if !previous.IsZero() {
		p := delta.Div(previous.Abs()).Mul(decimal.NewFromInt(100)).Round(1)
		c.Percent = &p
	}
	return c
}

// Slice is one category's share of a total.
type Slice struct {
	Category string          `json:"category"`
	Total    Money           `json:"total"`
	Share    decimal.Decimal `json:"share"` // percent of the whole, one place
}

// Breakdown totals recs per category, largest first. Ties sort by name.
func Breakdown(opts Options, recs []model.Record) []Slice {
	totals := make(map[string]decimal.Decimal)
	for _, r := range recs {
		name := r.Category
		if name == "" {
			name = Uncategorized
		}
		totals[name] = totals[name].Add(amount.Of(r))
	}

	whole := amount.Total(recs)
	out := make([]Slice, 0, len(totals))
	for name, total := range totals {
		share := decimal.Zero
		if !whole.IsZero() {
			share = total.Div(whole).Mul(decimal.NewFromInt(100)).Round(1)
		}
		out = append(out, Slice{Category: name, Total: opts.money(total), Share: share})
	}
	slices.SortFunc(out, func(a, b Slice) int {
		if c := b.Total.Value.Cmp(a.Total.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}
