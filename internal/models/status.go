package models

// JobStatus is an application's place in the pipeline.
type JobStatus string

// Pipeline order, not alphabetical.
const (
	StatusPlanningToApply  JobStatus = "Planning to Apply"
	StatusApplied          JobStatus = "Applied"
	StatusOnlineAssessment JobStatus = "Online Assessment"
	StatusPhoneScreen      JobStatus = "Phone Screen"
	StatusFinalRound       JobStatus = "Final Round"
	StatusOffer            JobStatus = "Offer"
	StatusRejected         JobStatus = "Rejected"
)

// AllStatuses lists every status in pipeline order.
var AllStatuses = []JobStatus{
	StatusPlanningToApply,
	StatusApplied,
	StatusOnlineAssessment,
	StatusPhoneScreen,
	StatusFinalRound,
	StatusOffer,
	StatusRejected,
}

// SettledStatuses are excluded from deadline reminders: once the user has
// applied or the outcome is decided, a deadline nudge is pointless. Jobs in
// Online Assessment / Phone Screen / Final Round still get reminders (e.g.
// an offer-acceptance deadline).
var SettledStatuses = []JobStatus{
	StatusApplied,
	StatusOffer,
	StatusRejected,
}

// IsValid reports whether s is a known status.
func (s JobStatus) IsValid() bool {
	for _, st := range AllStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// IsSettled reports whether s is excluded from deadline reminders.
func (s JobStatus) IsSettled() bool {
	for _, st := range SettledStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// IsInterviewStage reports whether s counts toward the interview metrics.
func (s JobStatus) IsInterviewStage() bool {
	return s == StatusOnlineAssessment || s == StatusPhoneScreen || s == StatusFinalRound
}

// IsResponse reports whether s counts as a company response for the
// response-rate metric. Applied and Planning to Apply mean the user is still
// waiting (or has not applied yet), so neither is a response.
func (s JobStatus) IsResponse() bool {
	return s != StatusApplied && s != StatusPlanningToApply
}
