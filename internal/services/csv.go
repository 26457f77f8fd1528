package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/interntrack/api/internal/models"
)

// csvHeader is the canonical export column order.
var csvHeader = []string{
	"Company", "Role", "Location", "Status", "Applied Date",
	"Deadline", "Visa Sponsor", "Salary Range", "Notes",
}

const csvDateLayout = "1/2/2006"

// ExportCSV renders a job list as CSV in the canonical column order.
func ExportCSV(jobs []models.Job) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for i := range jobs {
		job := &jobs[i]

		deadline := ""
		if job.Deadline != nil {
			deadline = job.Deadline.Format(csvDateLayout)
		}
		visa := "No"
		if job.SponsorsVisa {
			visa = "Yes"
		}

		record := []string{
			job.Company,
			job.Role,
			job.Location,
			string(job.Status),
			job.AppliedDate.Format(csvDateLayout),
			deadline,
			visa,
			job.SalaryRange,
			job.Notes,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// csvTruthy are the accepted spellings for a sponsoring company on import.
var csvTruthy = map[string]bool{
	"Yes": true, "yes": true, "true": true, "TRUE": true, "1": true,
}

// ImportCSV parses a CSV of applications. Header names match
// case-insensitively, with or without spaces or underscores ("Salary Range"
// and "salary_range" are the same column). Rows without both Company and
// Role are dropped; a missing status defaults to Planning to Apply, unlike
// manual creation which defaults to Applied.
func ImportCSV(r io.Reader) ([]models.Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int)
	for i, name := range header {
		cols[normalizeHeader(name)] = i
	}
	if _, ok := cols["company"]; !ok {
		return nil, fmt.Errorf("missing required column: Company")
	}
	if _, ok := cols["role"]; !ok {
		return nil, fmt.Errorf("missing required column: Role")
	}

	field := func(record []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var jobs []models.Job
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		company := field(record, "company")
		role := field(record, "role")
		if company == "" || role == "" {
			continue
		}

		status := models.JobStatus(field(record, "status"))
		if status == "" {
			status = models.StatusPlanningToApply
		}

		job := models.Job{
			Company:      company,
			Role:         role,
			Location:     field(record, "location"),
			SalaryRange:  field(record, "salaryrange"),
			SponsorsVisa: csvTruthy[visaField(record, field)],
			Status:       status,
			Notes:        field(record, "notes"),
		}

		if applied := parseCSVDate(field(record, "applieddate")); applied != nil {
			job.AppliedDate = *applied
		}
		job.Deadline = parseCSVDate(field(record, "deadline"))

		jobs = append(jobs, job)
	}

	return jobs, nil
}

func visaField(record []string, field func([]string, string) string) string {
	if v := field(record, "visasponsor"); v != "" {
		return v
	}
	return field(record, "sponsorsvisa")
}

func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "")
	return strings.ReplaceAll(name, "_", "")
}

func parseCSVDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{csvDateLayout, "2006-01-02", "01/02/2006"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
