package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tally/internal/model"
)

const chaseHeader = "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\n"

func parseChaseFixture(t *testing.T) []model.BankTransaction {
	t.Helper()
	f, err := os.Open("../../testdata/chase_checking.csv")
	require.NoError(t, err)
	defer f.Close()

	txns, err := (&ChaseParser{}).Parse(f)
	require.NoError(t, err)
	return txns
}

func TestChaseParser_Parse(t *testing.T) {
	txns := parseChaseFixture(t)
	require.Len(t, txns, 6)

	first := txns[0]
	assert.Equal(t, "GITHUB *PRO SUBSCRIPTION", first.Description)
	assert.Equal(t, "-4.00", first.Amount.StringFixed(2))
	assert.Equal(t, "ACH_DEBIT", first.Type)
	assert.Equal(t, "2025-01-03", first.Date.Format("2006-01-02"))
	assert.Equal(t, "chase_20250103_GITHUBPROS", first.Reference)

	assert.Equal(t, "ACME CONSULTING INVOICE 1042", txns[3].Description)
	assert.Equal(t, "3500.00", txns[3].Amount.StringFixed(2))
	assert.Equal(t, "2025-01-22", txns[5].Date.Format("2006-01-02"))

	for _, txn := range txns {
		want := model.KindExpense
		if txn.Description == "ACME CONSULTING INVOICE 1042" {
			want = model.KindIncome
		}
		assert.Equal(t, want, txn.Kind(), txn.Description)
	}
}

func TestChaseParser_Rows(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
		check   func(t *testing.T, txns []model.BankTransaction)
	}{
		{
			name: "header only",
			check: func(t *testing.T, txns []model.BankTransaction) {
				assert.Nil(t, txns)
			},
		},
		{
			name:    "bad date",
			body:    "DEBIT,NOTADATE,desc,-4.00,ACH_DEBIT,100.00,\n",
			wantErr: "row 2: parsing date",
		},
		{
			name:    "bad amount",
			body:    "DEBIT,01/03/2025,desc,NOTANUMBER,ACH_DEBIT,100.00,\n",
			wantErr: "row 2: parsing amount",
		},
		{
			name:    "wrong column count",
			body:    "DEBIT,01/03/2025,desc,-4.00\n",
			wantErr: "reading chase CSV",
		},
		{
			name: "check number reference",
			body: "CHECK,02/11/2025,CHECK 118,-250.00,CHECK_PAID,100.00,118\n",
			check: func(t *testing.T, txns []model.BankTransaction) {
				require.Len(t, txns, 1)
				assert.Equal(t, "chase_check_118", txns[0].Reference)
			},
		},
		{
			name: "grouped amount",
			body: "CREDIT,02/12/2025,PAYROLL,\"1,250.50\",ACH_CREDIT,100.00,\n",
			check: func(t *testing.T, txns []model.BankTransaction) {
				require.Len(t, txns, 1)
				assert.Equal(t, "1250.50", txns[0].Amount.StringFixed(2))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns, err := (&ChaseParser{}).Parse(strings.NewReader(chaseHeader + tt.body))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, txns)
		})
	}
}

func TestChaseParser_MissingColumn(t *testing.T) {
	csv := "Details,Date,Description,Amount,Type,Balance,Check or Slip #\n"
	_, err := (&ChaseParser{}).Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing "posting date" column`)
}

func TestGenericParser(t *testing.T) {
	csv := "\ufeffDate, Amount ,Description,Memo\n" +
		"2025-03-01,-12.40,Bakery,bread\n" +
		",,,\n" +
		"2025-03-02,900,Refund,\n"

	p := &GenericParser{}
	assert.Equal(t, "generic", p.Format())

	txns, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "Bakery", txns[0].Description)
	assert.Equal(t, "-12.40", txns[0].Amount.StringFixed(2))
	assert.Equal(t, model.KindIncome, txns[1].Kind())
	assert.Equal(t, "generic_20250302_Refund", txns[1].Reference)
}

func TestGenericParser_Errors(t *testing.T) {
	_, err := (&GenericParser{}).Parse(strings.NewReader("date,amount\n2025-01-01,1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing "description" column`)

	_, err = (&GenericParser{}).Parse(strings.NewReader("date,description,amount\n01/02/2025,x,1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2: parsing date")

	_, err = (&GenericParser{}).Parse(strings.NewReader("date,description,amount\n2025-01-02,x,abc\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2: parsing amount")

	txns, err := (&GenericParser{}).Parse(strings.NewReader("date,description,amount\n"))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))

	r.Register(&ChaseParser{})
	require.NotNil(t, r.Get("chase"))
	assert.NotNil(t, r.Get("CHASE"))
	assert.Panics(t, func() { r.Register(&ChaseParser{}) })
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("chase"))
	assert.NotNil(t, r.Get("generic"))
	assert.Equal(t, []string{"chase", "generic"}, r.Formats())
}

func writeImport(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		path := filepath.Join(root, "import", n)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeImport(t, dir, "b.csv", "A.CSV", "notes.txt", filepath.Join("processed", "old.csv"))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "A.CSV", files[0].Name)
	assert.Equal(t, "b.csv", files[1].Name)
	assert.Equal(t, int64(4), files[1].Size)
}

func TestScan_NoImportDir(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	writeImport(t, dir, "bank.csv")

	require.NoError(t, MarkProcessed(dir, "bank.csv"))

	_, err := os.Stat(filepath.Join(dir, "import", "bank.csv"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "import", "processed", "bank.csv"))
	assert.NoError(t, err)
}

func TestMarkProcessed_KeepsEarlierFile(t *testing.T) {
	dir := t.TempDir()

	writeImport(t, dir, "bank.csv")
	require.NoError(t, MarkProcessed(dir, "bank.csv"))
	writeImport(t, dir, "bank.csv")
	require.NoError(t, MarkProcessed(dir, "bank.csv"))

	for _, n := range []string{"bank.csv", "bank-1.csv"} {
		_, err := os.Stat(filepath.Join(dir, "import", "processed", n))
		assert.NoError(t, err, n)
	}
}

func TestMarkProcessed_MissingFile(t *testing.T) {
	err := MarkProcessed(t.TempDir(), "nope.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "moving nope.csv")
}
