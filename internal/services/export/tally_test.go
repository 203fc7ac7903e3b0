package export

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/Rajesh25lab/payroll-phase3-v2/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderTally(t *testing.T, payments []models.Payment) (string, string, tallyDocument) {
	t.Helper()
	now := time.Date(2024, 12, 1, 10, 30, 0, 0, time.UTC)
	content, fileName, err := TallyFormatter{Company: "Acme Traders"}.Render(testBatch(), payments, now)
	require.NoError(t, err)

	var doc tallyDocument
	require.NoError(t, xml.Unmarshal([]byte(content), &doc), "export must be well-formed XML")
	return content, fileName, doc
}

func TestTallyVoucher(t *testing.T) {
	content, fileName, doc := renderTally(t, testPayments())

	assert.Equal(t, "TALLY_11_2024.txt", fileName)
	assert.True(t, strings.HasPrefix(content, xml.Header))

	assert.Equal(t, "ImportData", doc.Envelope.Header.TallyRequest)
	assert.Equal(t, "Journal", doc.Envelope.Body.ImportData.RequestDesc.ReportName)
	assert.Equal(t, "Acme Traders", doc.Envelope.Body.ImportData.RequestDesc.StaticVariables.CurrentCompany)

	voucher := doc.Envelope.Body.ImportData.Response.Voucher
	assert.Equal(t, "2024-12-01", voucher.Date)
	assert.Equal(t, "Journal", voucher.VoucherTypeName)
	assert.Equal(t, "PAYROLL-11-2024", voucher.Reference)
	assert.Equal(t, "Salary Payment for 11/2024", voucher.Narration)

	require.Len(t, voucher.LedgerEntries, 2)
	debit, credit := voucher.LedgerEntries[0], voucher.LedgerEntries[1]
	assert.Equal(t, "Salary Expense", debit.LedgerName)
	assert.Equal(t, "125000.00", debit.Amount)
	assert.Equal(t, "Yes", debit.IsDeemedPositive)
	assert.Equal(t, "Bank Account", credit.LedgerName)
	assert.Equal(t, "-125000.00", credit.Amount)
	assert.Equal(t, "No", credit.IsDeemedPositive)
}

// The two ledger amounts must always cancel out; the accounting import
// rejects unbalanced vouchers.
func TestTallyVoucherBalanced(t *testing.T) {
	cases := map[string][]models.Payment{
		"empty":      nil,
		"single":     {{ID: 1, Amount: decimal.RequireFromString("12345.67")}},
		"fractional": {{ID: 1, Amount: decimal.RequireFromString("0.10")}, {ID: 2, Amount: decimal.RequireFromString("0.20")}},
	}

	for name, payments := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, doc := renderTally(t, payments)
			entries := doc.Envelope.Body.ImportData.Response.Voucher.LedgerEntries
			require.Len(t, entries, 2)

			debit := decimal.RequireFromString(entries[0].Amount)
			credit := decimal.RequireFromString(entries[1].Amount)
			assert.True(t, debit.Add(credit).IsZero(), "debit %s and credit %s must cancel", entries[0].Amount, entries[1].Amount)
		})
	}
}

func TestTallyEmptyBatchNormalizesZero(t *testing.T) {
	_, _, doc := renderTally(t, nil)
	entries := doc.Envelope.Body.ImportData.Response.Voucher.LedgerEntries
	require.Len(t, entries, 2)
	assert.Equal(t, "0.00", entries[0].Amount)
	assert.Equal(t, "0.00", entries[1].Amount, "negated zero must not render as -0.00")
}
