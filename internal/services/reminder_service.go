package services

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/interntrack/api/internal/constants"
	"github.com/interntrack/api/internal/models"
	"github.com/interntrack/api/internal/repository"
)

// DaysUntil returns the whole-day count from now to the deadline. Both
// instants are truncated to calendar days first, so time of day never
// perturbs the count. 0 means the deadline is today; negative means it has
// passed.
func DaysUntil(now, deadline time.Time) int {
	today := truncateToDay(now)
	day := truncateToDay(deadline)
	// Round rather than truncate so a DST-shortened day still counts whole.
	return int(math.Round(day.Sub(today).Hours() / 24))
}

// ReminderEligible decides whether a job gets a deadline reminder right now:
// it must have a deadline, the status must not be settled, and the deadline
// must be between today and three days out, inclusive. Each run decides
// independently; there is no per-deadline suppression state, so a job that
// stays eligible is reminded again on the next run.
func ReminderEligible(job *models.Job, now time.Time) bool {
	if job.Deadline == nil {
		return false
	}
	if job.Status.IsSettled() {
		return false
	}

	days := DaysUntil(now, *job.Deadline)
	return days >= 0 && days <= constants.ReminderWindowDays
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ReminderService runs the daily deadline reminder pass.
type ReminderService struct {
	jobRepo repository.JobRepository
	emails  *EmailService
	logger  zerolog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewReminderService creates a new ReminderService.
func NewReminderService(jobRepo repository.JobRepository, emails *EmailService, logger zerolog.Logger) *ReminderService {
	return &ReminderService{
		jobRepo: jobRepo,
		emails:  emails,
		logger:  logger,
		now:     time.Now,
	}
}

// Run performs one reminder pass over all users' jobs. A delivery failure
// for one job is logged and the rest of the batch continues; nothing is
// retried until the next scheduled run.
func (s *ReminderService) Run() {
	now := s.now()
	s.logger.Info().Msg("running daily deadline reminder check")

	rows, err := s.jobRepo.ListDueForReminder(truncateToDay(now), constants.ReminderWindowDays)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to query jobs for reminders")
		return
	}

	sent := 0
	for i := range rows {
		row := &rows[i]
		if !ReminderEligible(&row.Job, now) {
			continue
		}

		days := DaysUntil(now, *row.Deadline)
		if err := s.emails.SendDeadlineReminder(row.Email, row.Job, days); err != nil {
			s.logger.Error().Err(err).
				Str("company", row.Company).
				Str("email", row.Email).
				Msg("failed to send deadline reminder")
			continue
		}

		s.logger.Info().
			Str("company", row.Company).
			Str("email", row.Email).
			Int("days_until", days).
			Msg("sent deadline reminder")
		sent++
	}

	s.logger.Info().Int("candidates", len(rows)).Int("sent", sent).Msg("reminder pass complete")
}
