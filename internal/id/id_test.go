package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		year, month, seq int
		want             string
	}{
		{2025, 1, 1, "2025-01-001"},
		{2025, 12, 99, "2025-12-099"},
		{2025, 1, 123, "2025-01-123"},
		{2025, 1, 1234, "2025-01-1234"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.year, tt.month, tt.seq))
	}
}

func TestParse(t *testing.T) {
	year, month, seq, err := Parse("2025-03-042")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 3, month)
	assert.Equal(t, 42, seq)
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []string{"2024-01-001", "2025-12-999"} {
		y, m, seq, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, Format(y, m, seq))
	}
}

func TestParseErrors(t *testing.T) {
	for _, bad := range []string{"", "2025-01", "abcd-01-001", "2025-xx-001", "2025-13-001", "2025-01-abc", "2025-01-000"} {
		_, _, _, err := Parse(bad)
		assert.Error(t, err, "Parse(%q)", bad)
	}
}

func TestMaxSeq(t *testing.T) {
	ids := []string{"2025-03-001", "2025-03-007", "2025-04-010", "junk", "2025-03-003"}
	assert.Equal(t, 7, MaxSeq(ids, 2025, 3))
	assert.Equal(t, 10, MaxSeq(ids, 2025, 4))
	assert.Equal(t, 0, MaxSeq(ids, 2025, 5))
	assert.Equal(t, 0, MaxSeq(nil, 2025, 3))
}
