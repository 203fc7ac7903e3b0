package repository

import (
	"time"

	"github.com/Rajesh25lab/payroll-phase3-v2/internal/models"

	"gorm.io/gorm"
)

type BatchRepository struct {
	db *gorm.DB
}

func NewBatchRepository(db *gorm.DB) *BatchRepository {
	return &BatchRepository{db: db}
}

func (r *BatchRepository) Create(batch *models.Batch) error {
	return r.db.Create(batch).Error
}

// GetBatch fetches a single batch; gorm.ErrRecordNotFound when missing
func (r *BatchRepository) GetBatch(id uint) (*models.Batch, error) {
	var batch models.Batch
	if err := r.db.First(&batch, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *BatchRepository) List() ([]models.Batch, error) {
	var batches []models.Batch
	err := r.db.Order("created_at DESC").Find(&batches).Error
	return batches, err
}

// MarkProcessed stamps the batch processed. The write is unconditional:
// re-stamping a processed batch just refreshes last_processed.
func (r *BatchRepository) MarkProcessed(id uint, at time.Time) error {
	return r.db.Model(&models.Batch{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         models.BatchStatusProcessed,
			"last_processed": at,
		}).Error
}
