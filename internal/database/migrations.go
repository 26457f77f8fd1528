package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Job indexes for the per-user list and the reminder query
		{"jobs", "idx_jobs_user_id", "user_id"},
		{"jobs", "idx_jobs_status", "status"},
		{"jobs", "idx_jobs_deadline", "deadline"},
		{"jobs", "idx_jobs_created_at", "created_at"},

		// Activity log is always fetched per job, newest first
		{"activity_logs", "idx_activity_logs_job_id", "job_id"},
		{"activity_logs", "idx_activity_logs_created_at", "created_at"},

		// Password reset token lookup
		{"users", "idx_users_reset_token", "reset_token"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
