package categories

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/tally/internal/model"
)

const (
	numFields = 3
	colName   = 0
	colKind   = 1
	colDesc   = 2
)

// Header is the CSV header for categories.csv.
const Header = "name,kind,description"

// ReadCategories reads categories.csv.
func ReadCategories(r io.Reader) ([]model.Category, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading categories CSV: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	var cats []model.Category
	for i, row := range rows[1:] {
		cat, err := UnmarshalCategory(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

// WriteCategories writes categories.csv.
func WriteCategories(w io.Writer, cats []model.Category) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, cat := range cats {
		if err := cw.Write(MarshalCategory(cat)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalCategory converts a Category to a CSV row.
func MarshalCategory(cat model.Category) []string {
	row := make([]string, numFields)
	row[colName] = cat.Name
	row[colKind] = string(cat.Kind)
	row[colDesc] = cat.Description
	return row
}

// UnmarshalCategory converts a CSV row to a Category.
func UnmarshalCategory(row []string) (model.Category, error) {
	if len(row) != numFields {
		return model.Category{}, fmt.Errorf("expected %d fields, got %d", numFields, len(row))
	}

	name := strings.TrimSpace(row[colName])
	if name == "" {
		return model.Category{}, fmt.Errorf("empty category name")
	}

	kind := model.Kind(row[colKind])
	if !kind.Valid() {
		return model.Category{}, fmt.Errorf("category %q: unknown kind %q", name, row[colKind])
	}

	return model.Category{
		Name:        name,
		Kind:        kind,
		Description: row[colDesc],
	}, nil
}
