package repository

import (
	"time"

	"github.com/interntrack/api/internal/models"
	"gorm.io/gorm"
)

// GormJobRepository is a GORM implementation of JobRepository
type GormJobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &GormJobRepository{db: db}
}

// Create creates a new job
func (r *GormJobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

// FindByID finds a job by ID
func (r *GormJobRepository) FindByID(id uint64) (*models.Job, error) {
	var job models.Job
	if err := r.db.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// ListByUser retrieves all jobs owned by a user, newest first
func (r *GormJobRepository) ListByUser(userID uint64) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Update saves a full job record
func (r *GormJobRepository) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

// Delete removes a job and its activity log entries
func (r *GormJobRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.ActivityLog{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Job{}, id).Error
	})
}

// ListDueForReminder retrieves jobs with a deadline inside the reminder
// window, excluding settled statuses, joined with the owner's email. This is
// the coarse SQL pass; the reminder engine re-applies the day arithmetic on
// each row.
func (r *GormJobRepository) ListDueForReminder(today time.Time, windowDays int) ([]ReminderJob, error) {
	windowEnd := today.AddDate(0, 0, windowDays)

	var rows []ReminderJob
	err := r.db.Model(&models.Job{}).
		Select("jobs.*, users.email AS email").
		Joins("JOIN users ON users.id = jobs.user_id").
		Where("jobs.deadline IS NOT NULL").
		Where("jobs.deadline >= ?", today).
		Where("jobs.deadline <= ?", windowEnd).
		Where("jobs.status NOT IN ?", models.SettledStatuses).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
