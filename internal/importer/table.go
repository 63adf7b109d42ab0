package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// table is a bank CSV export addressed by header name.
type table struct {
	format string
	cols   map[string]int
	rows   [][]string
}

// readTable reads a CSV with a header row. fields is the exact column count,
// or -1 for any. Every name in required must appear in the header.
func readTable(r io.Reader, format string, fields int, required ...string) (*table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fields
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s CSV: %w", format, err)
	}
	if len(rows) == 0 {
		return &table{format: format}, nil
	}

	t := &table{format: format, cols: make(map[string]int, len(rows[0])), rows: rows[1:]}
	for i, h := range rows[0] {
		t.cols[normalizeHeader(h)] = i
	}
	for _, name := range required {
		if _, ok := t.cols[name]; !ok {
			return nil, fmt.Errorf("%s CSV missing %q column", format, name)
		}
	}
	return t, nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
}

// row is one data line of a table.
type row struct {
	line  int
	cells []string
	cols  map[string]int
}

func (r row) get(name string) string {
	if i, ok := r.cols[name]; ok && i < len(r.cells) {
		return strings.TrimSpace(r.cells[i])
	}
	return ""
}

func (r row) date(name, layout string) (time.Time, error) {
	d, err := time.Parse(layout, r.get(name))
	if err != nil {
		return time.Time{}, fmt.Errorf("row %d: parsing date %q: %w", r.line, r.get(name), err)
	}
	return d, nil
}

func (r row) decimal(name string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(r.get(name), ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("row %d: parsing amount %q: %w", r.line, r.get(name), err)
	}
	return d, nil
}

// each calls fn for every non-blank data row. Line numbers count the header
// as line 1.
func (t *table) each(fn func(row) error) error {
	for i, cells := range t.rows {
		if blank(cells) {
			continue
		}
		if err := fn(row{line: i + 2, cells: cells, cols: t.cols}); err != nil {
			return err
		}
	}
	return nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// reference builds a stable transaction reference such as
// chase_20250103_GITHUBPROS from the date and description.
func reference(format string, date time.Time, desc string) string {
	prefix := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, desc)
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	return fmt.Sprintf("%s_%s_%s", format, date.Format("20060102"), prefix)
}
