package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a single employee's salary disbursement within a Batch.
// Ascending IDs define the canonical row order for every export format.
type Payment struct {
	ID            uint `gorm:"primaryKey"`
	BatchID       uint `gorm:"index"`
	EmployeeID    string
	EmployeeName  string
	AccountNumber string
	IFSCCode      string
	Amount        decimal.Decimal `gorm:"type:decimal(14,2)"`
	Email         string
	Mobile        string
	CreatedAt     time.Time
}
