package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/interntrack/api/internal/models"
)

func TestExportCSV(t *testing.T) {
	deadline := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	jobs := []models.Job{
		{
			Company:      "Acme, Inc.",
			Role:         "SWE Intern",
			Location:     "NYC",
			Status:       models.StatusApplied,
			AppliedDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Deadline:     &deadline,
			SponsorsVisa: true,
			SalaryRange:  "$40-50/hr",
			Notes:        "Referred by Sam",
		},
	}

	data, err := ExportCSV(jobs)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "Company,Role,Location,Status,Applied Date,Deadline,Visa Sponsor,Salary Range,Notes", lines[0])

	// commas inside values survive quoting
	require.Contains(t, lines[1], `"Acme, Inc."`)
	require.Contains(t, lines[1], "Yes")
}

func TestImportCSV(t *testing.T) {
	t.Run("standard headers", func(t *testing.T) {
		input := strings.Join([]string{
			"Company,Role,Location,Status,Visa Sponsor,Salary Range,Notes",
			"Acme,SWE Intern,NYC,Applied,Yes,$40/hr,note one",
			"Globex,Data Intern,,,,,",
		}, "\n")

		jobs, err := ImportCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, jobs, 2)

		require.Equal(t, "Acme", jobs[0].Company)
		require.Equal(t, models.StatusApplied, jobs[0].Status)
		require.True(t, jobs[0].SponsorsVisa)
		require.Equal(t, "$40/hr", jobs[0].SalaryRange)

		// missing status defaults to Planning to Apply on import
		require.Equal(t, models.StatusPlanningToApply, jobs[1].Status)
		require.False(t, jobs[1].SponsorsVisa)
	})

	t.Run("snake_case headers", func(t *testing.T) {
		input := strings.Join([]string{
			"company,role,salary_range,sponsors_visa",
			"Acme,SWE Intern,$40/hr,true",
		}, "\n")

		jobs, err := ImportCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		require.Equal(t, "$40/hr", jobs[0].SalaryRange)
		require.True(t, jobs[0].SponsorsVisa)
	})

	t.Run("rows missing company or role are dropped", func(t *testing.T) {
		input := strings.Join([]string{
			"Company,Role",
			"Acme,",
			",SWE Intern",
			"Globex,Data Intern",
		}, "\n")

		jobs, err := ImportCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		require.Equal(t, "Globex", jobs[0].Company)
	})

	t.Run("visa truthy spellings", func(t *testing.T) {
		for _, truthy := range []string{"Yes", "yes", "true", "TRUE", "1"} {
			input := "Company,Role,Visa Sponsor\nAcme,SWE," + truthy
			jobs, err := ImportCSV(strings.NewReader(input))
			require.NoError(t, err)
			require.True(t, jobs[0].SponsorsVisa, "%q should be truthy", truthy)
		}
		for _, falsy := range []string{"No", "no", "false", "0", ""} {
			input := "Company,Role,Visa Sponsor\nAcme,SWE," + falsy
			jobs, err := ImportCSV(strings.NewReader(input))
			require.NoError(t, err)
			require.False(t, jobs[0].SponsorsVisa, "%q should be falsy", falsy)
		}
	})

	t.Run("missing required column fails", func(t *testing.T) {
		_, err := ImportCSV(strings.NewReader("Company,Location\nAcme,NYC"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "Role")
	})
}

func TestCSVRoundTrip(t *testing.T) {
	deadline := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	original := []models.Job{
		{
			Company:      "Acme",
			Role:         "SWE Intern",
			Location:     "NYC",
			Status:       models.StatusApplied,
			AppliedDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Deadline:     &deadline,
			SponsorsVisa: true,
		},
		{
			Company:     "Globex",
			Role:        "Data Intern",
			AppliedDate: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
			// no explicit status: exported empty, re-imported as Planning to Apply
			SponsorsVisa: false,
		},
	}

	data, err := ExportCSV(original)
	require.NoError(t, err)

	imported, err := ImportCSV(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, imported, 2)

	for i := range original {
		require.Equal(t, original[i].Company, imported[i].Company)
		require.Equal(t, original[i].Role, imported[i].Role)
		require.Equal(t, original[i].Location, imported[i].Location)
		require.Equal(t, original[i].SponsorsVisa, imported[i].SponsorsVisa)
	}

	require.Equal(t, models.StatusApplied, imported[0].Status)
	require.Equal(t, models.StatusPlanningToApply, imported[1].Status)
}
