package repository

import (
	"github.com/Rajesh25lab/payroll-phase3-v2/internal/models"

	"gorm.io/gorm"
)

type ExportAuditRepository struct {
	db *gorm.DB
}

func NewExportAuditRepository(db *gorm.DB) *ExportAuditRepository {
	return &ExportAuditRepository{db: db}
}

func (r *ExportAuditRepository) Record(entry *models.ExportAuditLog) error {
	return r.db.Create(entry).Error
}

func (r *ExportAuditRepository) ListByBatch(batchID uint) ([]models.ExportAuditLog, error) {
	var entries []models.ExportAuditLog
	err := r.db.Where("batch_id = ?", batchID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}
