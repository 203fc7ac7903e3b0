package export

import (
	"testing"
	"time"

	"github.com/Rajesh25lab/payroll-phase3-v2/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeBatchStore struct {
	batch          *models.Batch
	processedCalls []uint
}

func (f *fakeBatchStore) GetBatch(id uint) (*models.Batch, error) {
	if f.batch == nil || f.batch.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	b := *f.batch
	return &b, nil
}

func (f *fakeBatchStore) MarkProcessed(id uint, at time.Time) error {
	f.processedCalls = append(f.processedCalls, id)
	f.batch.Status = models.BatchStatusProcessed
	f.batch.LastProcessed = &at
	return nil
}

type fakePaymentStore struct {
	payments []models.Payment
}

func (f *fakePaymentStore) ListByBatch(batchID uint) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.payments {
		if p.BatchID == batchID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeAuditStore struct {
	entries []*models.ExportAuditLog
	err     error
}

func (f *fakeAuditStore) Record(entry *models.ExportAuditLog) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func newTestService() (*Service, *fakeBatchStore, *fakeAuditStore) {
	batches := &fakeBatchStore{batch: testBatch()}
	payments := &fakePaymentStore{payments: testPayments()}
	audits := &fakeAuditStore{}
	return NewService(batches, payments, audits, "Acme Traders", nil), batches, audits
}

func TestExportBankFile(t *testing.T) {
	svc, batches, audits := newTestService()

	result, err := svc.Export(7, "bank", "admin@example.com")
	require.NoError(t, err)

	assert.Equal(t, FileTypeBank, result.FileType)
	assert.Equal(t, "BANK_11_2024.txt", result.FileName)
	assert.Equal(t, 2, result.PaymentCount)

	// The declared estimate on the batch is 999999; the export recomputes
	// the actual sum from payments.
	assert.True(t, result.TotalAmount.Equal(decimal.NewFromInt(125000)))
	assert.Contains(t, result.Content, "TOTAL AMOUNT: ₹125000.00")

	assert.Equal(t, []uint{7}, batches.processedCalls)
	assert.Equal(t, models.BatchStatusProcessed, batches.batch.Status)
	require.NotNil(t, batches.batch.LastProcessed)

	require.Len(t, audits.entries, 1)
	assert.Equal(t, "bank", audits.entries[0].FileType)
	assert.Equal(t, "admin@example.com", audits.entries[0].PerformedBy)
}

func TestExportTally(t *testing.T) {
	svc, batches, _ := newTestService()

	result, err := svc.Export(7, "tally", "admin@example.com")
	require.NoError(t, err)

	assert.Equal(t, "TALLY_11_2024.txt", result.FileName)
	assert.Contains(t, result.Content, "<REFERENCE>PAYROLL-11-2024</REFERENCE>")
	assert.Equal(t, models.BatchStatusProcessed, batches.batch.Status)
}

func TestExportUnknownBatch(t *testing.T) {
	svc, batches, audits := newTestService()

	_, err := svc.Export(999, "bank", "admin@example.com")
	assert.ErrorIs(t, err, ErrBatchNotFound)
	assert.Empty(t, batches.processedCalls, "no store mutation on NotFound")
	assert.Empty(t, audits.entries)
}

func TestExportInvalidFileType(t *testing.T) {
	svc, batches, audits := newTestService()

	_, err := svc.Export(7, "csv", "admin@example.com")
	assert.ErrorIs(t, err, ErrInvalidFileType)
	assert.Empty(t, batches.processedCalls, "no store mutation on invalid type")
	assert.Empty(t, audits.entries)
}

// Re-exporting a processed batch is legal and just re-stamps it.
func TestExportTwiceIsIdempotent(t *testing.T) {
	svc, batches, _ := newTestService()

	first, err := svc.Export(7, "bank", "admin@example.com")
	require.NoError(t, err)
	firstStamp := *batches.batch.LastProcessed

	second, err := svc.Export(7, "tally", "admin@example.com")
	require.NoError(t, err)

	assert.Equal(t, models.BatchStatusProcessed, batches.batch.Status)
	assert.Equal(t, []uint{7, 7}, batches.processedCalls)
	assert.False(t, batches.batch.LastProcessed.Before(firstStamp))
	assert.Equal(t, first.PaymentCount, second.PaymentCount)
	assert.True(t, first.TotalAmount.Equal(second.TotalAmount))
}

func TestExportEmptyBatch(t *testing.T) {
	batches := &fakeBatchStore{batch: testBatch()}
	svc := NewService(batches, &fakePaymentStore{}, &fakeAuditStore{}, "Acme Traders", nil)

	result, err := svc.Export(7, "bank", "admin@example.com")
	require.NoError(t, err)

	assert.Zero(t, result.PaymentCount)
	assert.True(t, result.TotalAmount.IsZero())
	assert.Contains(t, result.Content, "TOTAL RECORDS: 0")
	assert.Equal(t, models.BatchStatusProcessed, batches.batch.Status)
}

// An audit write failure never fails the export itself.
func TestExportSurvivesAuditFailure(t *testing.T) {
	batches := &fakeBatchStore{batch: testBatch()}
	payments := &fakePaymentStore{payments: testPayments()}
	audits := &fakeAuditStore{err: gorm.ErrInvalidDB}
	svc := NewService(batches, payments, audits, "Acme Traders", nil)

	result, err := svc.Export(7, "bank", "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, result.PaymentCount)
	assert.Equal(t, models.BatchStatusProcessed, batches.batch.Status)
}
