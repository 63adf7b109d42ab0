package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/amount"
	"github.com/cleared-dev/tally/internal/logging"
	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/records"
)

type addFlags struct {
	date        string
	amount      string
	shares      string
	price       string
	category    string
	description string
}

func newAddCommand(opts *globalOptions) *cobra.Command {
	var f addFlags

	cmd := &cobra.Command{
		Use:   "add <expense|income|saving|investment>",
		Short: "Record an expense, income, saving or investment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := f.params(model.Kind(strings.ToLower(args[0])))
			if err != nil {
				return err
			}

			p, err := openProject(cmd, opts)
			if err != nil {
				return err
			}
			defer p.close()

			if c, ok := p.categories.Get(params.Category); ok {
				params.Category = c.Name
			}

			ids, err := p.store.AddBatch(cmd.Context(), []records.AddParams{params})
			if err != nil {
				return err
			}
			logging.For(p.log, logging.ComponentRecords).Debug("record added",
				logging.FieldKind, params.Kind, "record_id", ids[0])

			rec := model.Record{Amount: params.Amount, Shares: params.Shares, PricePerShare: params.PricePerShare}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s %s\n", params.Kind, ids[0],
				amount.Plain(amount.Of(rec), p.cfg.Display.CurrencySymbol))
			return nil
		},
	}

	cmd.Flags().StringVar(&f.date, "date", "", "record date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&f.amount, "amount", "", "amount")
	cmd.Flags().StringVar(&f.shares, "shares", "", "number of shares (investments)")
	cmd.Flags().StringVar(&f.price, "price", "", "price per share (investments)")
	cmd.Flags().StringVar(&f.category, "category", "", "category name")
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "description")
	cmd.MarkFlagsMutuallyExclusive("amount", "shares")
	cmd.MarkFlagsRequiredTogether("shares", "price")

	return cmd
}

func (f addFlags) params(kind model.Kind) (records.AddParams, error) {
	if !kind.Valid() {
		return records.AddParams{}, fmt.Errorf("%w: %q", records.ErrUnknownKind, kind)
	}

	date := f.date
	if date == "" {
		date = time.Now().Format(time.DateOnly)
	}

	p := records.AddParams{
		Kind:        kind,
		DateString:  date,
		Description: f.description,
		Category:    f.category,
	}

	var err error
	if p.Amount, err = parseFlagDecimal("amount", f.amount); err != nil {
		return p, err
	}
	if p.Shares, err = parseFlagDecimal("shares", f.shares); err != nil {
		return p, err
	}
	if p.PricePerShare, err = parseFlagDecimal("price", f.price); err != nil {
		return p, err
	}
	if !p.Amount.Valid && !p.Shares.Valid {
		return p, fmt.Errorf("one of --amount or --shares/--price is required")
	}
	return p, nil
}

func parseFlagDecimal(name, s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid --%s %q: %w", name, s, err)
	}
	return decimal.NewNullDecimal(d), nil
}
