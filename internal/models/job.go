package models

import (
	"time"
)

type Job struct {
	ID     uint64 `gorm:"primarykey" json:"id"`
	UserID uint64 `gorm:"not null;index" json:"user_id"`

	Company        string    `gorm:"type:varchar(255);not null" json:"company"`
	Role           string    `gorm:"type:varchar(255);not null" json:"role"`
	Location       string    `gorm:"type:varchar(255)" json:"location"`
	SalaryRange    string    `gorm:"type:varchar(100)" json:"salary_range"`
	SponsorsVisa   bool      `gorm:"not null;default:false" json:"sponsors_visa"`
	ApplicationURL string    `gorm:"type:text" json:"application_url"`
	JobDescription string    `gorm:"type:text" json:"job_description"`
	Status         JobStatus `gorm:"type:varchar(30);not null;default:'Applied'" json:"status"`
	Notes          string    `gorm:"type:text" json:"notes"`

	AppliedDate time.Time  `json:"applied_date"`
	Deadline    *time.Time `json:"deadline"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User       User          `gorm:"foreignKey:UserID" json:"-"`
	Activities []ActivityLog `gorm:"foreignKey:JobID" json:"activities,omitempty"`
}
