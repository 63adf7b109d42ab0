package records

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cleared-dev/tally/internal/model"
)

// FileName is the per-month record file name.
const FileName = "records.csv"

// Service stores records as one CSV file per month under
// <root>/YYYY/MM/records.csv.
type Service struct {
	root       string
	categories CategoryChecker
}

// NewService creates a file-backed record Service. categories may be nil.
func NewService(root string, categories CategoryChecker) *Service {
	return &Service{root: root, categories: categories}
}

// AddBatch validates every new record against its month file and, only if
// all months validate, writes them. Each touched month is first written in
// full to a temporary file next to it; the temporaries replace the month
// files only once every month is staged. IDs are returned in input order.
func (s *Service) AddBatch(ctx context.Context, params []AddParams) ([]string, error) {
	groups, err := planBatch(params)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(params))
	months := make([][]model.Record, len(groups))
	for i, g := range groups {
		existing, err := s.ReadMonth(ctx, g.year, g.month)
		if err != nil {
			return nil, err
		}
		fresh, err := g.assign(existing, params, ids, s.categories)
		if err != nil {
			return nil, err
		}
		months[i] = append(existing, fresh...)
	}

	staged := make([]string, 0, len(groups))
	defer func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}()
	for i, g := range groups {
		tmp, err := s.stageMonth(g.year, g.month, months[i])
		if err != nil {
			return nil, err
		}
		staged = append(staged, tmp)
	}

	for i, g := range groups {
		if err := os.Rename(staged[i], s.monthPath(g.year, g.month)); err != nil {
			return nil, fmt.Errorf("replacing records %04d-%02d: %w", g.year, g.month, err)
		}
	}
	staged = nil
	return ids, nil
}

// stageMonth writes recs to a temporary file in the month's directory and
// returns its path.
func (s *Service) stageMonth(year, month int, recs []model.Record) (string, error) {
	dir := filepath.Dir(s.monthPath(year, month))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating records dir: %w", err)
	}

	f, err := os.CreateTemp(dir, FileName+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("staging records: %w", err)
	}
	if err := WriteRecords(f, recs); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("writing records: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("closing staged records: %w", err)
	}
	return f.Name(), nil
}

// ReadMonth reads all records for a given year/month. A missing file reads
// as no records.
func (s *Service) ReadMonth(_ context.Context, year, month int) ([]model.Record, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening records %s: %w", path, err)
	}
	defer f.Close()

	recs, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("reading records %s: %w", path, err)
	}
	return recs, nil
}

// ReadYear reads the records of every month in year, January first.
func (s *Service) ReadYear(ctx context.Context, year int) ([]model.Record, error) {
	var all []model.Record
	for month := 1; month <= 12; month++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		recs, err := s.ReadMonth(ctx, year, month)
		if err != nil {
			return nil, err
		}
		all = append(all, recs...)
	}
	return all, nil
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.root, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), FileName)
}
