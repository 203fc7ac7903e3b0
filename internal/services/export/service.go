package export

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/Rajesh25lab/payroll-phase3-v2/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BatchStore is the accessor boundary to batch rows.
type BatchStore interface {
	GetBatch(id uint) (*models.Batch, error)
	MarkProcessed(id uint, at time.Time) error
}

// PaymentStore returns a batch's payments in ascending ID order.
type PaymentStore interface {
	ListByBatch(batchID uint) ([]models.Payment, error)
}

type AuditStore interface {
	Record(entry *models.ExportAuditLog) error
}

// Result is what a successful export hands back to the caller. Content is
// the full document; delivery is the caller's problem.
type Result struct {
	FileType     FileType
	FileName     string
	Content      string
	PaymentCount int
	TotalAmount  decimal.Decimal
}

type Service struct {
	batches    BatchStore
	payments   PaymentStore
	audits     AuditStore
	formatters map[FileType]Formatter
	log        *logrus.Logger
}

func NewService(batches BatchStore, payments PaymentStore, audits AuditStore, tallyCompany string, log *logrus.Logger) *Service {
	return &Service{
		batches:  batches,
		payments: payments,
		audits:   audits,
		formatters: map[FileType]Formatter{
			FileTypeBank:  BankFileFormatter{},
			FileTypeTally: TallyFormatter{Company: tallyCompany},
		},
		log: log,
	}
}

// Export generates the requested document for a batch and stamps the batch
// processed. Validation happens before any store write: an unknown file
// type or batch ID leaves the store untouched.
func (s *Service) Export(batchID uint, rawFileType string, performedBy string) (*Result, error) {
	fileType, err := ParseFileType(rawFileType)
	if err != nil {
		return nil, err
	}

	batch, err := s.batches.GetBatch(batchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, err
	}

	payments, err := s.payments.ListByBatch(batchID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	content, fileName, err := s.formatters[fileType].Render(batch, payments, now)
	if err != nil {
		return nil, err
	}

	// Unconditional re-stamp: active -> processed is idempotent and
	// re-exporting an already processed batch is legitimate. Do not turn
	// this into a guarded compare-and-swap that rejects re-exports.
	if err := s.batches.MarkProcessed(batch.ID, now); err != nil {
		return nil, err
	}

	result := &Result{
		FileType:     fileType,
		FileName:     fileName,
		Content:      content,
		PaymentCount: len(payments),
		TotalAmount:  sumAmounts(payments),
	}
	s.recordAudit(batch, result, performedBy, now)
	return result, nil
}

// recordAudit writes the export trail. Failures are logged and swallowed:
// the document has already been generated and the lifecycle stamped.
func (s *Service) recordAudit(batch *models.Batch, result *Result, performedBy string, at time.Time) {
	if s.audits == nil {
		return
	}

	details, _ := json.Marshal(map[string]interface{}{
		"file_type":      string(result.FileType),
		"file_name":      result.FileName,
		"payment_count":  result.PaymentCount,
		"total_amount":   result.TotalAmount.String(),
		"declared_total": batch.TotalAmount.String(),
	})

	entry := &models.ExportAuditLog{
		ID:           uuid.New(),
		BatchID:      batch.ID,
		FileType:     string(result.FileType),
		FileName:     result.FileName,
		PerformedBy:  performedBy,
		PaymentCount: result.PaymentCount,
		TotalAmount:  result.TotalAmount,
		Details:      details,
		CreatedAt:    at,
	}
	if err := s.audits.Record(entry); err != nil && s.log != nil {
		s.log.Errorf("export audit write failed for batch %d: %v", batch.ID, err)
	}
}
