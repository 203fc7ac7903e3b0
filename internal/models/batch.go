package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BatchStatus string

const (
	BatchStatusActive    BatchStatus = "active"
	BatchStatusProcessed BatchStatus = "processed"
)

// Batch is a named monthly grouping of salary payments.
//
// TotalEmployees and TotalAmount are the values declared by the creator at
// creation time. They are a planning estimate and are never reconciled with
// the attached payments; exports recompute the actual total from the
// Payment rows.
type Batch struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"index"`
	Month          string `gorm:"size:2"`
	Year           int
	TotalEmployees int
	TotalAmount    decimal.Decimal `gorm:"type:decimal(14,2)"`
	CreatedBy      uint
	CreatedAt      time.Time
	LastProcessed  *time.Time
	Status         BatchStatus `gorm:"size:20;index"`
}
