package id

import (
	"fmt"
	"strconv"
	"strings"
)

// Format returns a record ID like "2025-01-001".
func Format(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// Parse splits "2025-01-001" into year, month and sequence number.
func Parse(recordID string) (year, month, seq int, err error) {
	parts := strings.SplitN(recordID, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid record ID format: %q", recordID)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in record ID %q: %w", recordID, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month in record ID %q: %w", recordID, err)
	}
	if month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("month %d out of range in record ID %q", month, recordID)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in record ID %q: %w", recordID, err)
	}
	if seq < 1 {
		return 0, 0, 0, fmt.Errorf("sequence must be positive in record ID %q", recordID)
	}

	return year, month, seq, nil
}

// MaxSeq returns the highest sequence number among ids belonging to
// year/month. Malformed IDs are ignored.
func MaxSeq(ids []string, year, month int) int {
	maxSeq := 0
	for _, s := range ids {
		y, m, seq, err := Parse(s)
		if err != nil || y != year || m != month {
			continue
		}
		maxSeq = max(maxSeq, seq)
	}
	return maxSeq
}
