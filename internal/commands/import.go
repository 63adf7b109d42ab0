package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/importer"
	"github.com/cleared-dev/tally/internal/logging"
)

func newImportCommand(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a bank CSV, or every CSV waiting in import/",
		Long: "Import converts bank transactions into records: debits become expenses and\n" +
			"credits become incomes. Without a file argument every CSV in import/ is\n" +
			"imported and then moved to import/processed/.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd, opts)
			if err != nil {
				return err
			}
			defer p.close()

			if format == "" {
				format = p.cfg.Import.DefaultFormat
			}
			registry := importer.DefaultRegistry()
			parser := registry.Get(format)
			if parser == nil {
				return fmt.Errorf("unknown import format %q (available: %s)", format, strings.Join(registry.Formats(), ", "))
			}

			rules := make([]importer.Rule, 0, len(p.cfg.Import.Rules))
			for _, r := range p.cfg.Import.Rules {
				rules = append(rules, importer.Rule{Match: r.Match, Category: r.Category})
			}

			log := logging.For(p.log, logging.ComponentImporter)
			out := cmd.OutOrStdout()

			importFile := func(path string) (int, error) {
				f, err := os.Open(path)
				if err != nil {
					return 0, fmt.Errorf("opening %s: %w", path, err)
				}
				defer f.Close()

				txns, err := parser.Parse(f)
				if err != nil {
					return 0, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
				}
				ids, err := p.store.AddBatch(cmd.Context(), importer.ToRecords(txns, rules))
				if err != nil {
					return 0, fmt.Errorf("importing %s: %w", filepath.Base(path), err)
				}
				log.Debug("imported file", logging.FieldPath, path, logging.FieldCount, len(ids))
				return len(ids), nil
			}

			if len(args) == 1 {
				n, err := importFile(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Imported %d records from %s\n", n, filepath.Base(args[0]))
				return nil
			}

			files, err := importer.Scan(p.root)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(out, "No files to import")
				return nil
			}
			for _, file := range files {
				n, err := importFile(file.Path)
				if err != nil {
					return err
				}
				if err := importer.MarkProcessed(p.root, file.Name); err != nil {
					return err
				}
				fmt.Fprintf(out, "Imported %d records from %s\n", n, file.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "bank CSV format (default from tally.yaml)")

	return cmd
}
