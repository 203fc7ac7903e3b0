package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ExportAuditLog records one successful file generation for a batch.
type ExportAuditLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	BatchID      uint      `gorm:"index"`
	FileType     string
	FileName     string
	PerformedBy  string
	PaymentCount int
	TotalAmount  decimal.Decimal `gorm:"type:decimal(14,2)"`
	Details      datatypes.JSON
	CreatedAt    time.Time
}
