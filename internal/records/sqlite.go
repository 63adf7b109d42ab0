package records

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/cleared-dev/tally/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore keeps records in a single SQLite table.
type SQLiteStore struct {
	db         *sql.DB
	categories CategoryChecker
}

// OpenSQLite opens (creating if needed) the database at path and brings its
// schema up to date. categories may be nil.
func OpenSQLite(path string, categories CategoryChecker) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating db directory: %w", err)
	}

	if err := runMigrations(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite database: %w", err)
	}
	return &SQLiteStore{db: db, categories: categories}, nil
}

// runMigrations uses its own connection; closing the migrate instance
// closes the driver's database.
func runMigrations(path string) error {
	migrateDB, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("creating sqlite driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("creating migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("creating migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const selectRecords = `SELECT record_id, kind, date, description, category, amount, shares, price_per_share FROM records`

// ReadMonth returns the records whose date falls in year/month, ordered by ID.
func (s *SQLiteStore) ReadMonth(ctx context.Context, year, month int) ([]model.Record, error) {
	return s.query(ctx, selectRecords+` WHERE date LIKE ? ORDER BY record_id`, fmt.Sprintf("%04d-%02d-%%", year, month))
}

// ReadYear returns the records whose date falls in year, ordered by ID.
func (s *SQLiteStore) ReadYear(ctx context.Context, year int) ([]model.Record, error) {
	return s.query(ctx, selectRecords+` WHERE date LIKE ? ORDER BY record_id`, fmt.Sprintf("%04d-%%", year))
}

func (s *SQLiteStore) query(ctx context.Context, q string, args ...any) ([]model.Record, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var out []model.Record
	for rows.Next() {
		var (
			rec                   model.Record
			kind                  string
			amount, shares, price sql.NullString
		)
		if err := rows.Scan(&rec.ID, &kind, &rec.DateString, &rec.Description, &rec.Category, &amount, &shares, &price); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		rec.Kind = model.Kind(kind)
		if rec.Amount, err = nullDecimal(amount); err != nil {
			return nil, fmt.Errorf("record %s amount: %w", rec.ID, err)
		}
		if rec.Shares, err = nullDecimal(shares); err != nil {
			return nil, fmt.Errorf("record %s shares: %w", rec.ID, err)
		}
		if rec.PricePerShare, err = nullDecimal(price); err != nil {
			return nil, fmt.Errorf("record %s price_per_share: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return out, nil
}

// AddBatch validates and inserts records in one transaction.
func (s *SQLiteStore) AddBatch(ctx context.Context, params []AddParams) ([]string, error) {
	groups, err := planBatch(params)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(params))
	var fresh []model.Record
	for _, g := range groups {
		existing, err := s.ReadMonth(ctx, g.year, g.month)
		if err != nil {
			return nil, err
		}
		recs, err := g.assign(existing, params, ids, s.categories)
		if err != nil {
			return nil, err
		}
		fresh = append(fresh, recs...)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO records (record_id, kind, date, description, category, amount, shares, price_per_share) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range fresh {
		if _, err := stmt.ExecContext(ctx, rec.ID, string(rec.Kind), rec.DateString, rec.Description, rec.Category,
			nullString(rec.Amount), nullString(rec.Shares), nullString(rec.PricePerShare)); err != nil {
			return nil, fmt.Errorf("inserting record %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing records: %w", err)
	}
	return ids, nil
}

func nullString(d decimal.NullDecimal) sql.NullString {
	if !d.Valid {
		return sql.NullString{}
	}
	return sql.NullString{String: d.Decimal.String(), Valid: true}
}

func nullDecimal(s sql.NullString) (decimal.NullDecimal, error) {
	if !s.Valid {
		return decimal.NullDecimal{}, nil
	}
	return parseNull(s.String)
}
