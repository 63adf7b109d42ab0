package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/calendar"
	"github.com/cleared-dev/tally/internal/logging"
	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/records"
	"github.com/cleared-dev/tally/internal/report"
)

// period holds the --year/--month/--week flags. Zero means the current one.
type period struct {
	year  int
	month int
	week  int
}

func (p *period) addFlags(cmd *cobra.Command, month, week bool) {
	cmd.Flags().IntVar(&p.year, "year", 0, "year (default current)")
	if month {
		cmd.Flags().IntVar(&p.month, "month", 0, "month 1-12 (default current)")
	}
	if week {
		cmd.Flags().IntVar(&p.week, "week", 0, "week 1-4 (default current)")
	}
}

// resolve fills unset fields from now and checks ranges.
func (p *period) resolve(now time.Time) error {
	if p.year == 0 {
		p.year = now.Year()
	}
	if p.month == 0 {
		p.month = int(now.Month())
	}
	if p.week == 0 {
		p.week = calendar.WeekOfMonth(now.Day())
	}
	if p.month < 1 || p.month > 12 {
		return fmt.Errorf("month %d out of range 1-12", p.month)
	}
	if p.week < 1 || p.week > calendar.WeeksPerMonth {
		return fmt.Errorf("week %d out of range 1-%d", p.week, calendar.WeeksPerMonth)
	}
	return nil
}

func newWeekCommand(opts *globalOptions) *cobra.Command {
	var per period
	var kind string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show one kind of record day by day across a week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k := model.Kind(strings.ToLower(kind))
			if !k.Valid() {
				return fmt.Errorf("%w: %q", records.ErrUnknownKind, kind)
			}
			if err := per.resolve(time.Now()); err != nil {
				return err
			}

			p, err := openProject(cmd, opts)
			if err != nil {
				return err
			}
			defer p.close()

			weeks, err := records.MonthWeeks(cmd.Context(), p.store, per.year, per.month, k)
			if err != nil {
				return err
			}
			v := report.BuildWeek(p.reportOptions(), k, per.year, per.month, per.week, weeks)
			logging.For(p.log, logging.ComponentReport).Debug("built week view",
				logging.FieldYear, per.year, logging.FieldMonth, per.month, logging.FieldWeek, per.week, logging.FieldKind, k)

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), v)
			}
			return p.renderer(cmd.OutOrStdout()).Week(v)
		},
	}

	per.addFlags(cmd, true, true)
	cmd.Flags().StringVar(&kind, "kind", string(model.KindExpense), "record kind")

	return cmd
}

func newMonthCommand(opts *globalOptions) *cobra.Command {
	var per period

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Summarise a month by week, with net and category breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := per.resolve(time.Now()); err != nil {
				return err
			}

			p, err := openProject(cmd, opts)
			if err != nil {
				return err
			}
			defer p.close()

			current, err := p.store.ReadMonth(cmd.Context(), per.year, per.month)
			if err != nil {
				return err
			}
			py, pm := calendar.PreviousMonth(per.year, per.month)
			previous, err := p.store.ReadMonth(cmd.Context(), py, pm)
			if err != nil {
				return err
			}

			v := report.BuildMonth(p.reportOptions(), per.year, per.month, current, previous)
			logging.For(p.log, logging.ComponentReport).Debug("built month view",
				logging.FieldYear, per.year, logging.FieldMonth, per.month, logging.FieldCount, len(current))

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), v)
			}
			return p.renderer(cmd.OutOrStdout()).Month(v)
		},
	}

	per.addFlags(cmd, true, false)

	return cmd
}

func newYearCommand(opts *globalOptions) *cobra.Command {
	var per period

	cmd := &cobra.Command{
		Use:   "year",
		Short: "Summarise a year month by month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := per.resolve(time.Now()); err != nil {
				return err
			}

			p, err := openProject(cmd, opts)
			if err != nil {
				return err
			}
			defer p.close()

			recs, err := p.store.ReadYear(cmd.Context(), per.year)
			if err != nil {
				return err
			}

			v := report.BuildYear(p.reportOptions(), per.year, recs)
			logging.For(p.log, logging.ComponentReport).Debug("built year view",
				logging.FieldYear, per.year, logging.FieldCount, len(recs))

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), v)
			}
			return p.renderer(cmd.OutOrStdout()).Year(v)
		},
	}

	per.addFlags(cmd, false, false)

	return cmd
}

func newCategoriesCommand(opts *globalOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the category catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := openProject(cmd, opts)
			if err != nil {
				return err
			}
			defer p.close()

			cats := p.categories.All()
			if kind != "" {
				k := model.Kind(strings.ToLower(kind))
				if !k.Valid() {
					return fmt.Errorf("%w: %q", records.ErrUnknownKind, kind)
				}
				cats = p.categories.ByKind(k)
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), cats)
			}
			return p.renderer(cmd.OutOrStdout()).Categories(cats)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "only list categories of this kind")

	return cmd
}
