package services

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/interntrack/api/internal/models"
)

// Stats are the aggregate numbers shown on the dashboard. All counts derive
// from the status classification in the models package so the dashboard and
// the reminder engine can never disagree about what a status means.
type Stats struct {
	Total         int `json:"total"`
	Applied       int `json:"applied"`
	Interviews    int `json:"interviews"`
	Offers        int `json:"offers"`
	Rejected      int `json:"rejected"`
	SponsorsVisa  int `json:"sponsors_visa"`
	ResponseRate  int `json:"response_rate"`
	InterviewRate int `json:"interview_rate"`
	OfferRate     int `json:"offer_rate"`

	StatusBreakdown []StatusCount `json:"status_breakdown"`
	PerDay          []DayCount    `json:"applications_per_day"`
}

// StatusCount is one bar of the status breakdown chart.
type StatusCount struct {
	Status models.JobStatus `json:"status"`
	Count  int              `json:"count"`
}

// DayCount is one point of the applications-over-time chart.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// statsWindowDays is the span of the applications-over-time series.
const statsWindowDays = 30

// ComputeStats aggregates a user's full job list. An empty list yields zero
// rates, never a division error.
func ComputeStats(jobs []models.Job, now time.Time) Stats {
	stats := Stats{Total: len(jobs)}

	byStatus := make(map[models.JobStatus]int)
	responses := 0
	for i := range jobs {
		job := &jobs[i]
		byStatus[job.Status]++

		if job.Status.IsInterviewStage() {
			stats.Interviews++
		}
		if job.Status.IsResponse() {
			responses++
		}
		if job.SponsorsVisa {
			stats.SponsorsVisa++
		}
	}

	stats.Applied = byStatus[models.StatusApplied]
	stats.Offers = byStatus[models.StatusOffer]
	stats.Rejected = byStatus[models.StatusRejected]

	if stats.Total > 0 {
		stats.ResponseRate = roundPercent(responses, stats.Total)
		stats.InterviewRate = roundPercent(stats.Interviews, stats.Total)
		stats.OfferRate = roundPercent(stats.Offers, stats.Total)
	}

	for _, status := range models.AllStatuses {
		if byStatus[status] > 0 {
			stats.StatusBreakdown = append(stats.StatusBreakdown, StatusCount{
				Status: status,
				Count:  byStatus[status],
			})
		}
	}

	stats.PerDay = applicationsPerDay(jobs, now)

	return stats
}

func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}

func applicationsPerDay(jobs []models.Job, now time.Time) []DayCount {
	byDay := make(map[string]int)
	for i := range jobs {
		byDay[jobs[i].AppliedDate.Format("2006-01-02")]++
	}

	series := make([]DayCount, 0, statsWindowDays)
	for i := statsWindowDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		series = append(series, DayCount{Date: day, Count: byDay[day]})
	}
	return series
}

// VisaFilter selects jobs by sponsorship.
type VisaFilter string

const (
	VisaAll       VisaFilter = "All"
	VisaSponsors  VisaFilter = "Sponsors"
	VisaNoSponsor VisaFilter = "No Sponsor"
)

// JobFilter narrows a job list. Zero values mean "no restriction"; the
// individual filters AND together.
type JobFilter struct {
	Search string
	Status models.JobStatus // empty or "All" matches everything
	Visa   VisaFilter
}

// FilterJobs returns the jobs matching every active filter without mutating
// the input. Search is a case-insensitive substring match on company OR role.
func FilterJobs(jobs []models.Job, filter JobFilter) []models.Job {
	search := strings.ToLower(filter.Search)

	out := make([]models.Job, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]

		if search != "" &&
			!strings.Contains(strings.ToLower(job.Company), search) &&
			!strings.Contains(strings.ToLower(job.Role), search) {
			continue
		}
		if filter.Status != "" && filter.Status != "All" && job.Status != filter.Status {
			continue
		}
		switch filter.Visa {
		case VisaSponsors:
			if !job.SponsorsVisa {
				continue
			}
		case VisaNoSponsor:
			if job.SponsorsVisa {
				continue
			}
		}

		out = append(out, *job)
	}
	return out
}

// SortKey selects the job list ordering.
type SortKey string

const (
	SortByDate    SortKey = "date"    // applied date, newest first (default)
	SortByCompany SortKey = "company" // company name, ascending
	SortByStatus  SortKey = "status"  // status label, ascending
)

// SortJobs returns a sorted copy of the job list.
func SortJobs(jobs []models.Job, key SortKey) []models.Job {
	out := make([]models.Job, len(jobs))
	copy(out, jobs)

	switch key {
	case SortByCompany:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Company) < strings.ToLower(out[j].Company)
		})
	case SortByStatus:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Status < out[j].Status
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AppliedDate.After(out[j].AppliedDate)
		})
	}
	return out
}

// DeadlineBucket is the presentation grouping for a deadline. It mirrors the
// reminder window but is deliberately independent from it: changing how the
// UI colors deadlines must not change who gets emailed.
type DeadlineBucket string

const (
	DeadlineNone    DeadlineBucket = "none"
	DeadlineExpired DeadlineBucket = "expired"
	DeadlineToday   DeadlineBucket = "today"
	DeadlineUrgent  DeadlineBucket = "urgent"  // 1-3 days out
	DeadlineWarning DeadlineBucket = "warning" // 4-7 days out
	DeadlineNormal  DeadlineBucket = "normal"  // more than a week out
)

// BucketDeadline classifies a deadline for display.
func BucketDeadline(deadline *time.Time, now time.Time) DeadlineBucket {
	if deadline == nil {
		return DeadlineNone
	}

	days := DaysUntil(now, *deadline)
	switch {
	case days < 0:
		return DeadlineExpired
	case days == 0:
		return DeadlineToday
	case days <= 3:
		return DeadlineUrgent
	case days <= 7:
		return DeadlineWarning
	default:
		return DeadlineNormal
	}
}
