package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tally/internal/model"
)

// mockCategories implements CategoryChecker for testing.
type mockCategories map[string]bool

func (m mockCategories) Exists(name string) bool { return m[name] }

func expense(recordID, date, amt string) model.Record {
	return model.Record{ID: recordID, Kind: model.KindExpense, DateString: date, Amount: some(amt)}
}

func rulesOf(errs []ValidationError) []Rule {
	rules := make([]Rule, len(errs))
	for i, e := range errs {
		rules[i] = e.Rule
	}
	return rules
}

func TestValidate_OK(t *testing.T) {
	recs := []model.Record{
		expense("2025-01-001", "2025-01-15", "100.00"),
		{
			ID: "2025-01-002", Kind: model.KindInvestment, DateString: "2025-01-31",
			Shares: some("2"), PricePerShare: some("10.125"),
		},
	}
	assert.Empty(t, ValidateRecords(recs, nil, 2025, 1))
}

func TestValidate_UnknownKind(t *testing.T) {
	rec := expense("2025-01-001", "2025-01-15", "1")
	rec.Kind = "transfer"
	errs := ValidateRecords([]model.Record{rec}, nil, 2025, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, RuleKind, errs[0].Rule)
}

func TestValidate_Dates(t *testing.T) {
	tests := []struct {
		date string
	}{
		{"2025/01/15"},
		{"2025-02-15"},
		{"2024-01-15"},
		{"2025-01-32"},
		{"2025-01-00"},
	}
	for _, tt := range tests {
		errs := ValidateRecords([]model.Record{expense("2025-01-001", tt.date, "1")}, nil, 2025, 1)
		assert.Equal(t, []Rule{RuleDate}, rulesOf(errs), "date %q", tt.date)
	}
}

func TestValidate_ExactlyOneValue(t *testing.T) {
	none := model.Record{ID: "2025-01-001", Kind: model.KindExpense, DateString: "2025-01-01"}
	both := model.Record{
		ID: "2025-01-002", Kind: model.KindInvestment, DateString: "2025-01-01",
		Amount: some("1"), Shares: some("1"), PricePerShare: some("1"),
	}
	errs := ValidateRecords([]model.Record{none, both}, nil, 2025, 1)
	assert.Contains(t, rulesOf(errs), RuleValue)
	assert.GreaterOrEqual(t, len(errs), 2)
}

func TestValidate_SharesOnlyForInvestments(t *testing.T) {
	rec := model.Record{ID: "2025-01-001", Kind: model.KindSaving, DateString: "2025-01-01", Shares: some("1"), PricePerShare: some("2")}
	errs := ValidateRecords([]model.Record{rec}, nil, 2025, 1)
	assert.Equal(t, []Rule{RuleValue}, rulesOf(errs))
}

func TestValidate_NegativeAmount(t *testing.T) {
	errs := ValidateRecords([]model.Record{expense("2025-01-001", "2025-01-01", "-5")}, nil, 2025, 1)
	assert.Equal(t, []Rule{RuleValue}, rulesOf(errs))
}

func TestValidate_Decimals(t *testing.T) {
	errs := ValidateRecords([]model.Record{expense("2025-01-001", "2025-01-01", "1.005")}, nil, 2025, 1)
	assert.Equal(t, []Rule{RuleDecimals}, rulesOf(errs))
}

func TestValidate_Category(t *testing.T) {
	cats := mockCategories{"Food": true}
	ok := expense("2025-01-001", "2025-01-01", "1")
	ok.Category = "Food"
	bad := expense("2025-01-002", "2025-01-01", "1")
	bad.Category = "Yachts"
	uncategorised := expense("2025-01-003", "2025-01-01", "1")

	errs := ValidateRecords([]model.Record{ok, bad, uncategorised}, cats, 2025, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, RuleCategory, errs[0].Rule)
	assert.Equal(t, "2025-01-002", errs[0].RecordID)

	assert.Empty(t, ValidateRecords([]model.Record{bad}, nil, 2025, 1))
}

func TestValidate_DuplicateAndInvalidIDs(t *testing.T) {
	errs := ValidateRecords([]model.Record{
		expense("2025-01-001", "2025-01-01", "1"),
		expense("2025-01-001", "2025-01-02", "1"),
		expense("oops", "2025-01-03", "1"),
	}, nil, 2025, 1)
	assert.Equal(t, []Rule{RuleUniqueIDs, RuleUniqueIDs}, rulesOf(errs))
}

func TestValidationErrorString(t *testing.T) {
	e := ValidationError{Rule: RuleDate, RecordID: "2025-01-001", Description: "bad"}
	assert.Equal(t, "date [2025-01-001]: bad", e.Error())
}
