package repository

import (
	"github.com/interntrack/api/internal/models"
	"gorm.io/gorm"
)

// GormActivityRepository is a GORM implementation of ActivityRepository
type GormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &GormActivityRepository{db: db}
}

// Create appends an activity entry
func (r *GormActivityRepository) Create(entry *models.ActivityLog) error {
	return r.db.Create(entry).Error
}

// ListByJob retrieves all entries for a job, newest first
func (r *GormActivityRepository) ListByJob(jobID uint64) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	if err := r.db.
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
