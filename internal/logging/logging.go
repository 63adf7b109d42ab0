package logging

import (
	"io"
	"log/slog"
)

// Component names.
const (
	ComponentRecords  = "records"
	ComponentImporter = "importer"
	ComponentReport   = "report"
)

// Common field names.
const (
	FieldComponent = "component"
	FieldYear      = "year"
	FieldMonth     = "month"
	FieldWeek      = "week"
	FieldKind      = "kind"
	FieldCount     = "count"
	FieldSource    = "source"
	FieldPath      = "path"
)

// Config holds logger configuration.
type Config struct {
	Verbose bool
	Output  io.Writer
}

// New returns a text logger writing to cfg.Output. Verbose enables debug
// output; otherwise only warnings and errors are shown so command output
// stays clean.
func New(cfg Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{Level: level}))
}

// For returns a child logger tagged with component.
func For(l *slog.Logger, component string) *slog.Logger {
	return l.With(FieldComponent, component)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
