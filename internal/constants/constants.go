package constants

import "time"

// Context keys
const (
	ContextKeyUserID = "user_id"
	ContextKeyJob    = "job"
)

// Password policy
const (
	MinPasswordLength = 8
)

// Tokens
const (
	AuthTokenTTL       = 7 * 24 * time.Hour
	ResetTokenTTL      = time.Hour
	ResetTokenNumBytes = 32
)

// Reminders
const (
	// ReminderWindowDays is the inclusive number of days before a deadline
	// during which reminder emails are sent.
	ReminderWindowDays = 3

	// ReminderCronSpec fires the daily reminder pass at 09:00 server time.
	ReminderCronSpec = "0 9 * * *"
)
