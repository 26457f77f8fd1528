package services

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/interntrack/api/internal/mailer"
	"github.com/interntrack/api/internal/models"
)

// EmailService composes the application's emails on top of a mailer.Sender.
// All sends triggered from the request path go through the Async helpers:
// delivery failures are logged and never surface to the HTTP response.
type EmailService struct {
	sender mailer.Sender
	appURL string
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService.
func NewEmailService(sender mailer.Sender, appURL string, logger zerolog.Logger) *EmailService {
	return &EmailService{
		sender: sender,
		appURL: appURL,
		logger: logger,
	}
}

// SendWelcomeAsync dispatches the welcome email without blocking the caller.
func (s *EmailService) SendWelcomeAsync(email, name string) {
	go func() {
		if err := s.SendWelcome(email, name); err != nil {
			s.logger.Error().Err(err).Str("email", email).Msg("failed to send welcome email")
		}
	}()
}

// SendWelcome sends the post-registration welcome email.
func (s *EmailService) SendWelcome(email, name string) error {
	if name == "" {
		name = "there"
	}

	body := fmt.Sprintf(`
		<h2>Welcome to InternTrack!</h2>
		<p>Hi %s,</p>
		<p>Thanks for signing up! We're excited to help you track your internship applications and land your dream role.</p>
		<ul>
			<li>Add your first application using the "+ Add Application" button</li>
			<li>Track your progress with status updates and activity timeline</li>
			<li>Set deadlines to receive automatic email reminders</li>
			<li>View analytics to monitor your application trends</li>
			<li>Export your data anytime as CSV</li>
		</ul>
		<p><a href="%s">Go to Dashboard</a></p>
		<p>Good luck with your internship search!</p>
	`, name, s.appURL)

	return s.sender.SendHTML([]string{email}, "Welcome to InternTrack!", body)
}

// SendVisaSponsorAlertAsync dispatches the visa sponsor alert without
// blocking the caller.
func (s *EmailService) SendVisaSponsorAlertAsync(email string, job models.Job) {
	go func() {
		if err := s.SendVisaSponsorAlert(email, job); err != nil {
			s.logger.Error().Err(err).Str("email", email).Uint64("job_id", job.ID).
				Msg("failed to send visa sponsor alert")
		}
	}()
}

// SendVisaSponsorAlert tells the user that a newly added company sponsors
// visas.
func (s *EmailService) SendVisaSponsorAlert(email string, job models.Job) error {
	body := fmt.Sprintf(`
		<h2>Great News - Visa Sponsor Found!</h2>
		<p>You just added an application to a company that sponsors visas.</p>
		<h3>%s</h3>
		<p><strong>Role:</strong> %s</p>
		<p><strong>Location:</strong> %s</p>
		<p><strong>Status:</strong> %s</p>
		<p>This company sponsors work visas, which is great news if you need sponsorship!</p>
	`, job.Company, job.Role, locationOrDefault(job.Location), job.Status)

	subject := fmt.Sprintf("New Visa Sponsor Found: %s", job.Company)
	return s.sender.SendHTML([]string{email}, subject, body)
}

// SendDeadlineReminder sends one reminder for an approaching deadline.
func (s *EmailService) SendDeadlineReminder(email string, job models.Job, daysUntil int) error {
	dayWord := "days"
	if daysUntil == 1 {
		dayWord = "day"
	}

	deadline := ""
	if job.Deadline != nil {
		deadline = job.Deadline.Format("Jan 2, 2006")
	}

	urlLine := ""
	if job.ApplicationURL != "" {
		urlLine = fmt.Sprintf(`<p><a href="%s">View Application</a></p>`, job.ApplicationURL)
	}

	body := fmt.Sprintf(`
		<h2>Application Deadline Reminder</h2>
		<p>Hi there,</p>
		<p>This is a friendly reminder that your application deadline is approaching:</p>
		<h3>%s</h3>
		<p><strong>Role:</strong> %s</p>
		<p><strong>Location:</strong> %s</p>
		<p><strong>Deadline:</strong> %s</p>
		<p><strong>Days until deadline:</strong> %d</p>
		%s
		<p>This is an automated reminder from InternTrack. You're receiving this because you set a deadline for this application.</p>
	`, job.Company, job.Role, locationOrDefault(job.Location), deadline, daysUntil, urlLine)

	subject := fmt.Sprintf("Reminder: %s deadline in %d %s", job.Company, daysUntil, dayWord)
	return s.sender.SendHTML([]string{email}, subject, body)
}

// SendPasswordReset emails the reset link for the given token.
func (s *EmailService) SendPasswordReset(email, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password/%s", s.appURL, token)

	body := fmt.Sprintf(`
		<h2>Password Reset Request</h2>
		<p>You requested to reset your password. Click the link below to create a new password:</p>
		<p><a href="%s">Reset Password</a></p>
		<p>This link will expire in 1 hour. If you didn't request this, you can safely ignore this email.</p>
		<p>If the button doesn't work, copy and paste this link: %s</p>
	`, resetURL, resetURL)

	return s.sender.SendHTML([]string{email}, "Reset Your Password", body)
}

func locationOrDefault(location string) string {
	if location == "" {
		return "Not specified"
	}
	return location
}
