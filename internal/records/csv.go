package records

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/model"
)

// Header is the CSV header for records.csv.
const Header = "record_id,kind,date,description,category,amount,shares,price_per_share"

const (
	numFields   = 8
	colID       = 0
	colKind     = 1
	colDate     = 2
	colDesc     = 3
	colCategory = 4
	colAmount   = 5
	colShares   = 6
	colPrice    = 7
)

// ReadRecords reads all records from a records.csv reader.
func ReadRecords(r io.Reader) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading records CSV: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	// Skip header row.
	var out []model.Record
	for i, row := range rows[1:] {
		rec, err := UnmarshalRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// WriteRecords writes records to a records.csv writer (including header).
func WriteRecords(w io.Writer, recs []model.Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range recs {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalRecord converts a Record to a CSV row ([]string).
// Unset numeric fields are written as empty cells.
func MarshalRecord(rec model.Record) []string {
	row := make([]string, numFields)
	row[colID] = rec.ID
	row[colKind] = string(rec.Kind)
	row[colDate] = rec.DateString
	row[colDesc] = rec.Description
	row[colCategory] = rec.Category
	row[colAmount] = formatNull(rec.Amount)
	row[colShares] = formatNull(rec.Shares)
	row[colPrice] = formatNull(rec.PricePerShare)
	return row
}

// UnmarshalRecord converts a CSV row to a Record. The date cell is kept as
// written; it is not validated here.
func UnmarshalRecord(row []string) (model.Record, error) {
	if len(row) != numFields {
		return model.Record{}, fmt.Errorf("expected %d fields, got %d", numFields, len(row))
	}

	amt, err := parseNull(row[colAmount])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing amount %q: %w", row[colAmount], err)
	}
	shares, err := parseNull(row[colShares])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing shares %q: %w", row[colShares], err)
	}
	price, err := parseNull(row[colPrice])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing price_per_share %q: %w", row[colPrice], err)
	}

	return model.Record{
		ID:            row[colID],
		Kind:          model.Kind(row[colKind]),
		DateString:    row[colDate],
		Description:   row[colDesc],
		Category:      row[colCategory],
		Amount:        amt,
		Shares:        shares,
		PricePerShare: price,
	}, nil
}

func formatNull(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

func parseNull(s string) (decimal.NullDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}
