package models

import "time"

type ActivityType string

const (
	ActivityNote      ActivityType = "Note"
	ActivityInterview ActivityType = "Interview"
	ActivityFollowUp  ActivityType = "Follow-up"
	ActivityRejection ActivityType = "Rejection"
	ActivityOffer     ActivityType = "Offer"
)

// ActivityLog is an append-only note on a job. Entries are never updated or
// deleted individually; they go away only when their job is deleted.
type ActivityLog struct {
	ID           uint64       `gorm:"primarykey" json:"id"`
	JobID        uint64       `gorm:"not null;index" json:"job_id"`
	UserID       uint64       `gorm:"not null" json:"user_id"`
	ActivityType ActivityType `gorm:"type:varchar(20);not null" json:"activity_type"`
	Note         string       `gorm:"type:text" json:"note"`
	CreatedAt    time.Time    `json:"created_at"`

	// Relations
	Job Job `gorm:"foreignKey:JobID" json:"-"`
}
