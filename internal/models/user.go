package models

import (
	"time"
)

type User struct {
	ID           uint64 `gorm:"primarykey" json:"id"`
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`

	// Password reset flow: a single active token per user, cleared on
	// successful reset or natural expiry.
	ResetToken        *string    `gorm:"type:varchar(64);index" json:"-"`
	ResetTokenExpires *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Jobs []Job `gorm:"foreignKey:UserID" json:"-"`
}
