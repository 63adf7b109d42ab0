package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/amount"
	"github.com/cleared-dev/tally/internal/calendar"
	"github.com/cleared-dev/tally/internal/grouping"
	"github.com/cleared-dev/tally/internal/model"
)

const (
	barWidth = 24
	barChar  = "█"
)

// Renderer prints views as terminal text.
type Renderer struct {
	w      io.Writer
	opts   Options
	header lipgloss.Style
	label  lipgloss.Style
	bar    lipgloss.Style
	tones  map[amount.Tone]lipgloss.Style
}

// NewRenderer returns a Renderer writing to w. With color off every style
// is plain.
func NewRenderer(w io.Writer, opts Options, color bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	r := &Renderer{
		w:      w,
		opts:   opts,
		header: lr.NewStyle(),
		label:  lr.NewStyle(),
		bar:    lr.NewStyle(),
		tones: map[amount.Tone]lipgloss.Style{
			amount.Positive: lr.NewStyle(),
			amount.Negative: lr.NewStyle(),
		},
	}
	if color {
		r.header = r.header.Bold(true).Foreground(lipgloss.Color("#87CEEB"))
		r.label = r.label.Foreground(lipgloss.Color("#A0A0A0"))
		r.bar = r.bar.Foreground(lipgloss.Color("#F47A60"))
		for t := range r.tones {
			r.tones[t] = r.tones[t].Foreground(lipgloss.Color(t.Color()))
		}
	}
	return r
}

func (r *Renderer) money(m Money) string {
	return r.tones[m.Tone].Render(m.Text)
}

func (r *Renderer) plain(v decimal.Decimal) string {
	return amount.Plain(v, r.opts.CurrencySymbol)
}

// bars returns one bar per point, scaled to the largest point.
func (r *Renderer) bars(s grouping.Series) []string {
	peak := s.Max()
	out := make([]string, len(s))
	for i, v := range s {
		n := 0
		if peak.IsPositive() && v.IsPositive() {
			n = int(v.Div(peak).Mul(decimal.NewFromInt(barWidth)).Round(0).IntPart())
			n = max(n, 1)
		}
		out[i] = r.bar.Render(strings.Repeat(barChar, n)) + strings.Repeat(" ", barWidth-n)
	}
	return out
}

func kindTitle(k model.Kind) string {
	switch k {
	case model.KindExpense:
		return "Expenses"
	case model.KindIncome:
		return "Incomes"
	case model.KindSaving:
		return "Savings"
	case model.KindInvestment:
		return "Investments"
	}
	return string(k)
}

// Week prints a WeekView: one line per day with the day total and the
// running total.
func (r *Renderer) Week(v WeekView) error {
	var b strings.Builder
	fmt.Fprintln(&b, r.header.Render(fmt.Sprintf("%s: week %d (%s) of %s %d",
		kindTitle(v.Kind), v.Week, v.Range, calendar.MonthName(v.Month), v.Year)))

	bars := r.bars(v.Discrete)
	for i := range v.Discrete {
		day := v.FirstDay + i
		fmt.Fprintf(&b, "%s %s %12s %12s\n",
			r.label.Render(fmt.Sprintf("%2d", day)), bars[i], r.plain(v.Discrete[i]), r.plain(v.Cumulative[i]))
	}
	fmt.Fprintf(&b, "Total %s\n", r.money(v.Total))

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Month prints a MonthView.
func (r *Renderer) Month(v MonthView) error {
	var b strings.Builder
	fmt.Fprintln(&b, r.header.Render(fmt.Sprintf("%s %d", v.Name, v.Year)))

	section := func(title string, ks KindSeries) {
		fmt.Fprintf(&b, "\n%s  %s\n", r.header.Render(title), r.plain(ks.Total.Value))
		bars := r.bars(ks.Weekly)
		for i, total := range ks.Weekly {
			fmt.Fprintf(&b, "%s %s %12s\n", r.label.Render(fmt.Sprintf("%-8s", v.WeekRanges[i])), bars[i], r.plain(total))
		}
	}
	section("Expenses", v.Expenses)
	section("Incomes", v.Incomes)
	section("Savings & investments", v.Savings)

	fmt.Fprintf(&b, "\nNet %s\n", r.money(v.Net))
	r.comparison(&b, "vs previous month", v.VsPrevious)

	if len(v.Breakdown) > 0 {
		fmt.Fprintf(&b, "\n%s\n", r.header.Render("Expenses by category"))
		r.breakdown(&b, v.Breakdown)
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Year prints a YearView.
func (r *Renderer) Year(v YearView) error {
	var b strings.Builder
	fmt.Fprintln(&b, r.header.Render(fmt.Sprintf("%d", v.Year)))
	fmt.Fprintf(&b, "%s %12s %12s %12s %12s\n", r.label.Render(fmt.Sprintf("%-10s", "")), "expenses", "incomes", "savings", "saved so far")
	for i, name := range v.Months {
		fmt.Fprintf(&b, "%s %12s %12s %12s %12s\n",
			r.label.Render(fmt.Sprintf("%-10s", name)),
			r.plain(v.Expenses[i]), r.plain(v.Incomes[i]), r.plain(v.Savings[i]), r.plain(v.SavingsCumulative[i]))
	}
	fmt.Fprintf(&b, "\nExpenses %s\nIncomes  %s\nSavings  %s\nNet      %s\n",
		r.plain(v.TotalExpenses.Value), r.plain(v.TotalIncomes.Value), r.plain(v.TotalSavings.Value), r.money(v.Net))

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) comparison(b *strings.Builder, label string, c Comparison) {
	change := "n/a"
	if c.Percent != nil {
		change = c.Percent.String() + "%"
		if !c.Percent.IsNegative() {
			change = "+" + change
		}
	}
	fmt.Fprintf(b, "%s: %s (%s)\n", label, r.money(c.Delta), change)
}

func (r *Renderer) breakdown(b *strings.Builder, slices []Slice) {
	totals := make(grouping.Series, len(slices))
	for i, s := range slices {
		totals[i] = s.Total.Value
	}
	bars := r.bars(totals)
	for i, s := range slices {
		fmt.Fprintf(b, "%s %s %12s %6s%%\n", r.label.Render(fmt.Sprintf("%-16s", s.Category)), bars[i], r.plain(s.Total.Value), s.Share.StringFixed(1))
	}
}

// Categories prints a catalog grouped by kind.
func (r *Renderer) Categories(cats []model.Category) error {
	var b strings.Builder
	for _, k := range model.Kinds {
		var names []string
		for _, c := range cats {
			if c.Kind == k {
				names = append(names, c.Name)
			}
		}
		if len(names) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s\n", r.header.Render(kindTitle(k)))
		for _, n := range names {
			fmt.Fprintf(&b, "  %s\n", n)
		}
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}
