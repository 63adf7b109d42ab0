package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tally/internal/amount"
	"github.com/cleared-dev/tally/internal/grouping"
	"github.com/cleared-dev/tally/internal/model"
)

var opts = Options{CurrencySymbol: "$"}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func rec(kind model.Kind, date, category, amt string) model.Record {
	return model.Record{
		Kind:       kind,
		DateString: date,
		Category:   category,
		Amount:     model.FixedAmount(dec(amt)),
	}
}

func shares(date, n, price string) model.Record {
	return model.Record{
		Kind:          model.KindInvestment,
		DateString:    date,
		Shares:        decimal.NewNullDecimal(dec(n)),
		PricePerShare: decimal.NewNullDecimal(dec(price)),
	}
}

func assertSeries(t *testing.T, want []string, got grouping.Series) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, dec(want[i]).Equal(got[i]), "index %d: got %s want %s", i, got[i], want[i])
	}
}

func january() []model.Record {
	return []model.Record{
		rec(model.KindExpense, "2025-01-01", "Groceries", "10"),
		rec(model.KindExpense, "2025-01-03", "Rent", "20"),
		rec(model.KindExpense, "2025-01-09", "Groceries", "5"),
		rec(model.KindExpense, "2025-01-30", "", "15"),
		rec(model.KindIncome, "2025-01-15", "Salary", "100"),
		rec(model.KindSaving, "2025-01-02", "Holiday", "7"),
		shares("2025-01-23", "2", "4.5"),
	}
}

func TestBuildWeek(t *testing.T) {
	weeks := grouping.ByWeek(january()[:4])
	v := BuildWeek(opts, model.KindExpense, 2025, 1, 1, weeks)

	assert.Equal(t, "1 - 7", v.Range)
	assert.Equal(t, 1, v.FirstDay)
	assertSeries(t, []string{"10", "0", "20", "0", "0", "0", "0"}, v.Discrete)
	assertSeries(t, []string{"10", "10", "30", "30", "30", "30", "30"}, v.Cumulative)
	assert.Equal(t, "+$30", v.Total.Text)
	assert.Equal(t, amount.Positive, v.Total.Tone)
}

func TestBuildWeekLastWeekLength(t *testing.T) {
	weeks := grouping.ByWeek(january()[:4])
	v := BuildWeek(opts, model.KindExpense, 2025, 1, 4, weeks)

	assert.Equal(t, "22 - 31", v.Range)
	assert.Equal(t, 22, v.FirstDay)
	require.Len(t, v.Discrete, 10)
	assert.True(t, dec("15").Equal(v.Discrete[8]))
	assert.True(t, dec("15").Equal(v.Cumulative.Last()))
}

func TestBuildMonth(t *testing.T) {
	previous := []model.Record{
		rec(model.KindExpense, "2024-12-05", "Groceries", "40"),
	}
	v := BuildMonth(opts, 2025, 1, january(), previous)

	assert.Equal(t, "January", v.Name)
	assert.Equal(t, 31, v.DaysInMonth)
	assert.Equal(t, []string{"1 - 7", "8 - 14", "15 - 21", "22 - 31"}, v.WeekRanges)

	assertSeries(t, []string{"30", "5", "0", "15"}, v.Expenses.Weekly)
	assert.Equal(t, "+$50", v.Expenses.Total.Text)
	require.Len(t, v.Expenses.Daily, 31)
	assert.True(t, dec("50").Equal(v.Expenses.Daily.Last()))

	assertSeries(t, []string{"0", "0", "100", "0"}, v.Incomes.Weekly)

	// Savings include the investment valued at 2 x 4.5.
	assertSeries(t, []string{"7", "0", "0", "9"}, v.Savings.Weekly)
	assert.True(t, dec("16").Equal(v.Savings.Total.Value))
	assert.True(t, dec("16").Equal(v.Savings.Daily.Last()))

	assert.True(t, dec("50").Equal(v.Net.Value))
	assert.Equal(t, "+$50", v.Net.Text)

	require.NotNil(t, v.VsPrevious.Percent)
	assert.True(t, dec("25").Equal(*v.VsPrevious.Percent))
	assert.Equal(t, "+$10", v.VsPrevious.Delta.Text)

	require.Len(t, v.Breakdown, 3)
	assert.Equal(t, "Rent", v.Breakdown[0].Category)
	assert.Equal(t, "Groceries", v.Breakdown[1].Category)
	assert.Equal(t, Uncategorized, v.Breakdown[2].Category)
}

func TestBuildMonthEmpty(t *testing.T) {
	v := BuildMonth(opts, 2024, 2, nil, nil)

	assert.Equal(t, 29, v.DaysInMonth)
	assertSeries(t, []string{"0", "0", "0", "0"}, v.Expenses.Weekly)
	assert.Len(t, v.Savings.Daily, 29)
	assert.Equal(t, "+$0", v.Net.Text)
	assert.Nil(t, v.VsPrevious.Percent)
	assert.Empty(t, v.Breakdown)
}

func TestBuildMonthNegativeNet(t *testing.T) {
	v := BuildMonth(opts, 2025, 1, []model.Record{
		rec(model.KindExpense, "2025-01-04", "Rent", "1234.5"),
	}, nil)

	assert.Equal(t, "- $1,234.5", v.Net.Text)
	assert.Equal(t, amount.Negative, v.Net.Tone)
}

func TestBuildYear(t *testing.T) {
	recs := append(january(),
		rec(model.KindExpense, "2025-03-10", "Rent", "20"),
		rec(model.KindSaving, "2025-03-01", "Holiday", "4"),
		rec(model.KindIncome, "2025-12-31", "Salary", "10"),
	)
	v := BuildYear(opts, 2025, recs)

	require.Len(t, v.Months, 12)
	assert.Equal(t, "March", v.Months[2])
	require.Len(t, v.Expenses, 12)
	assert.True(t, dec("50").Equal(v.Expenses[0]))
	assert.True(t, dec("20").Equal(v.Expenses[2]))
	assert.True(t, dec("10").Equal(v.Incomes[11]))

	assert.True(t, dec("16").Equal(v.Savings[0]))
	assert.True(t, dec("16").Equal(v.SavingsCumulative[1]))
	assert.True(t, dec("20").Equal(v.SavingsCumulative.Last()))

	assert.Equal(t, "+$70", v.TotalExpenses.Text)
	assert.Equal(t, "+$110", v.TotalIncomes.Text)
	assert.True(t, dec("40").Equal(v.Net.Value))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name    string
		cur     string
		prev    string
		percent string
		delta   string
	}{
		{"increase", "150", "100", "50", "+$50"},
		{"decrease", "75", "100", "-25", "- $25"},
		{"one place", "1", "3", "-66.7", "- $2"},
		{"unchanged", "10", "10", "0", "+$0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Compare(opts, dec(tt.cur), dec(tt.prev))
			require.NotNil(t, c.Percent)
			assert.True(t, dec(tt.percent).Equal(*c.Percent), "got %s", c.Percent)
			assert.Equal(t, tt.delta, c.Delta.Text)
		})
	}
}

func TestCompareZeroPrevious(t *testing.T) {
	c := Compare(opts, dec("10"), decimal.Zero)
	assert.Nil(t, c.Percent)
	assert.Equal(t, "+$10", c.Delta.Text)
}

func TestBreakdown(t *testing.T) {
	slices := Breakdown(opts, []model.Record{
		rec(model.KindExpense, "2025-01-01", "b", "25"),
		rec(model.KindExpense, "2025-01-02", "a", "25"),
		rec(model.KindExpense, "2025-01-03", "c", "50"),
	})

	require.Len(t, slices, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{slices[0].Category, slices[1].Category, slices[2].Category})
	assert.True(t, dec("50").Equal(slices[0].Share))
	assert.True(t, dec("25").Equal(slices[2].Share))
}

func TestBreakdownZeroTotal(t *testing.T) {
	slices := Breakdown(opts, []model.Record{
		rec(model.KindExpense, "2025-01-01", "a", "0"),
	})
	require.Len(t, slices, 1)
	assert.True(t, slices[0].Share.IsZero())
}

func TestMoneyToneFollowsRoundedValue(t *testing.T) {
	c := Compare(opts, dec("10"), dec("10.004"))
	assert.Equal(t, "+$0", c.Delta.Text)
	assert.Equal(t, amount.Positive, c.Delta.Tone)
}
