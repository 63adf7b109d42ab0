package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file at the project root.
const FileName = "tally.yaml"

// Record sources.
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// Environment variables that override file values.
const (
	EnvCurrencySymbol = "TALLY_CURRENCY_SYMBOL"
	EnvRecordsSource  = "TALLY_RECORDS_SOURCE"
	EnvSQLitePath     = "TALLY_SQLITE_PATH"
)

// Config represents the top-level tally.yaml configuration.
type Config struct {
	Project ProjectConfig `yaml:"project"`
	Display DisplayConfig `yaml:"display"`
	Records RecordsConfig `yaml:"records"`
	Import  ImportConfig  `yaml:"import"`
}

// ProjectConfig names the project.
type ProjectConfig struct {
	Name string `yaml:"name"`
}

// DisplayConfig is the explicit display context handed to views.
type DisplayConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
	Color          bool   `yaml:"color"`
}

// RecordsConfig selects where records are stored.
type RecordsConfig struct {
	Source     string `yaml:"source"`                // "csv" or "sqlite"
	SQLitePath string `yaml:"sqlite_path,omitempty"` // relative to the project root
}

// ImportConfig holds bank import settings.
type ImportConfig struct {
	DefaultFormat string       `yaml:"default_format"`
	Rules         []ImportRule `yaml:"rules,omitempty"`
}

// ImportRule maps a description substring to a category.
type ImportRule struct {
	Match    string `yaml:"match"`
	Category string `yaml:"category"`
}

// Load reads a tally.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(name string) *Config {
	return &Config{
		Project: ProjectConfig{Name: name},
		Display: DisplayConfig{
			CurrencySymbol: "$",
			Color:          true,
		},
		Records: RecordsConfig{
			Source:     SourceCSV,
			SQLitePath: filepath.Join("data", "tally.db"),
		},
		Import: ImportConfig{
			DefaultFormat: "chase",
		},
	}
}

// LoadProject reads <root>/tally.yaml, then applies <root>/.env and the
// process environment on top of it.
func LoadProject(root string) (*Config, error) {
	cfg, err := Load(filepath.Join(root, FileName))
	if err != nil {
		return nil, err
	}

	// A missing .env is fine; variables already set in the environment win.
	if err := godotenv.Load(filepath.Join(root, ".env")); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	cfg.ApplyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables looked up with getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvCurrencySymbol); v != "" {
		c.Display.CurrencySymbol = v
	}
	if v := getenv(EnvRecordsSource); v != "" {
		c.Records.Source = strings.ToLower(v)
	}
	if v := getenv(EnvSQLitePath); v != "" {
		c.Records.SQLitePath = v
	}
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var problems []string

	switch c.Records.Source {
	case SourceCSV:
	case SourceSQLite:
		if c.Records.SQLitePath == "" {
			problems = append(problems, "records.sqlite_path is required when records.source is sqlite")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid records.source %q: must be %q or %q", c.Records.Source, SourceCSV, SourceSQLite))
	}

	for i, r := range c.Import.Rules {
		if strings.TrimSpace(r.Match) == "" {
			problems = append(problems, fmt.Sprintf("import.rules[%d]: match cannot be empty", i))
		}
		if strings.TrimSpace(r.Category) == "" {
			problems = append(problems, fmt.Sprintf("import.rules[%d]: category cannot be empty", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// SQLitePath resolves the configured database path against root.
func (c *Config) SQLitePath(root string) string {
	if filepath.IsAbs(c.Records.SQLitePath) {
		return c.Records.SQLitePath
	}
	return filepath.Join(root, c.Records.SQLitePath)
}
