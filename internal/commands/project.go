package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/categories"
	"github.com/cleared-dev/tally/internal/config"
	"github.com/cleared-dev/tally/internal/logging"
	"github.com/cleared-dev/tally/internal/records"
	"github.com/cleared-dev/tally/internal/report"
)

// project is an opened tally project: its config, catalog and record store.
type project struct {
	root       string
	cfg        *config.Config
	categories *categories.Service
	store      records.Store
	log        *slog.Logger
	close      func() error
}

func openProject(cmd *cobra.Command, opts *globalOptions) (*project, error) {
	root, err := filepath.Abs(opts.root)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	log := opts.logger(cmd)

	cfg, err := config.LoadProject(root)
	if err != nil {
		return nil, err
	}

	cats, err := categories.Load(root)
	if err != nil {
		return nil, err
	}

	p := &project{
		root:       root,
		cfg:        cfg,
		categories: cats,
		log:        log,
		close:      func() error { return nil },
	}

	storeLog := logging.For(log, logging.ComponentRecords)
	switch cfg.Records.Source {
	case config.SourceSQLite:
		path := cfg.SQLitePath(root)
		db, err := records.OpenSQLite(path, cats)
		if err != nil {
			return nil, err
		}
		p.store = db
		p.close = db.Close
		storeLog.Debug("opened record store", logging.FieldSource, config.SourceSQLite, logging.FieldPath, path)
	default:
		p.store = records.NewService(root, cats)
		storeLog.Debug("opened record store", logging.FieldSource, config.SourceCSV, logging.FieldPath, root)
	}
	return p, nil
}

func (p *project) reportOptions() report.Options {
	return report.Options{CurrencySymbol: p.cfg.Display.CurrencySymbol}
}

func (p *project) renderer(w io.Writer) *report.Renderer {
	return report.NewRenderer(w, p.reportOptions(), p.cfg.Display.Color)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
