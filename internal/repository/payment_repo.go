package repository

import (
	"github.com/Rajesh25lab/payroll-phase3-v2/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) CreateAll(payments []models.Payment) error {
	if len(payments) == 0 {
		return nil
	}
	return r.db.Create(&payments).Error
}

// ListByBatch returns payments in ascending ID order. This ordering is the
// canonical row order for the export files and must stay stable.
func (r *PaymentRepository) ListByBatch(batchID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("batch_id = ?", batchID).Order("id ASC").Find(&payments).Error
	return payments, err
}
