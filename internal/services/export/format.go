package export

import (
	"errors"
	"time"

	"github.com/Rajesh25lab/payroll-phase3-v2/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidFileType = errors.New("invalid file type")
	ErrBatchNotFound   = errors.New("batch not found")
)

// FileType selects which export format to generate.
type FileType string

const (
	FileTypeBank  FileType = "bank"
	FileTypeTally FileType = "tally"
)

func ParseFileType(s string) (FileType, error) {
	switch FileType(s) {
	case FileTypeBank, FileTypeTally:
		return FileType(s), nil
	default:
		return "", ErrInvalidFileType
	}
}

// Formatter renders a batch and its ordered payments into one document.
// now is captured once per export and reused for every row so that all
// date/timestamp values inside a single document are identical.
type Formatter interface {
	Render(batch *models.Batch, payments []models.Payment, now time.Time) (content string, fileName string, err error)
}

// sumAmounts is the recomputed actual total. The batch's declared
// TotalAmount is a creation-time estimate and is deliberately ignored here.
func sumAmounts(payments []models.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}
