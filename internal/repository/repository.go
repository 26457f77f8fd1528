package repository

import (
	"time"

	"github.com/interntrack/api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByResetToken finds a user holding an unexpired reset token
	FindByResetToken(token string, now time.Time) (*models.User, error)

	// SetResetToken stores a reset token and its expiry on a user
	SetResetToken(userID uint64, token string, expires time.Time) error

	// UpdatePassword updates the password hash and clears any reset token
	UpdatePassword(userID uint64, passwordHash string) error
}

// JobRepository defines the interface for job data access
type JobRepository interface {
	// Create creates a new job
	Create(job *models.Job) error

	// FindByID finds a job by ID
	FindByID(id uint64) (*models.Job, error)

	// ListByUser retrieves all jobs owned by a user, newest first
	ListByUser(userID uint64) ([]models.Job, error)

	// Update saves a full job record
	Update(job *models.Job) error

	// Delete removes a job and its activity log entries
	Delete(id uint64) error

	// ListDueForReminder retrieves jobs across all users whose deadline falls
	// within [today, today+windowDays] and whose status is not settled,
	// together with the owner's email.
	ListDueForReminder(today time.Time, windowDays int) ([]ReminderJob, error)
}

// ReminderJob is a job row joined with the owner's email for the reminder pass.
type ReminderJob struct {
	models.Job
	Email string `json:"email"`
}

// ActivityRepository defines the interface for activity log data access
type ActivityRepository interface {
	// Create appends an activity entry
	Create(entry *models.ActivityLog) error

	// ListByJob retrieves all entries for a job, newest first
	ListByJob(jobID uint64) ([]models.ActivityLog, error)
}
