package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/buildinfo"
	"github.com/cleared-dev/tally/internal/logging"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	root    string
	verbose bool
	json    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Personal expenses, incomes and savings by week, month and year",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.root, "root", ".", "project directory")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "print views as JSON")

	rootCmd.AddCommand(
		newInitCommand(),
		newAddCommand(opts),
		newImportCommand(opts),
		newWeekCommand(opts),
		newMonthCommand(opts),
		newYearCommand(opts),
		newCategoriesCommand(opts),
	)

	return rootCmd
}

func (o *globalOptions) logger(cmd *cobra.Command) *slog.Logger {
	return logging.New(logging.Config{Verbose: o.verbose, Output: cmd.ErrOrStderr()})
}
