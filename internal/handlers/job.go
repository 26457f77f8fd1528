package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/interntrack/api/internal/database"
	"github.com/interntrack/api/internal/middleware"
	"github.com/interntrack/api/internal/models"
	"github.com/interntrack/api/internal/services"
)

type JobHandler struct {
	emails *services.EmailService
}

func NewJobHandler(emails *services.EmailService) *JobHandler {
	return &JobHandler{
		emails: emails,
	}
}

// jobRequest is the body for create and full update.
type jobRequest struct {
	Company        string           `json:"company" binding:"required"`
	Role           string           `json:"role" binding:"required"`
	Location       string           `json:"location"`
	SalaryRange    string           `json:"salary_range"`
	SponsorsVisa   bool             `json:"sponsors_visa"`
	ApplicationURL string           `json:"application_url"`
	JobDescription string           `json:"job_description"`
	Status         models.JobStatus `json:"status"`
	Notes          string           `json:"notes"`
	AppliedDate    *time.Time       `json:"applied_date"`
	Deadline       *time.Time       `json:"deadline"`
}

// ListJobs returns the caller's full job list, newest first.
func (h *JobHandler) ListJobs(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var jobs []models.Job
	if err := database.GetDB().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jobs"})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// CreateJob creates a new job for the caller. A manually created job
// defaults to Applied; if the company sponsors visas, an alert email goes
// out without blocking the response.
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company and role are required"})
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusApplied
	}
	if !status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown status: %s", status)})
		return
	}

	job := models.Job{
		UserID:         userID,
		Company:        req.Company,
		Role:           req.Role,
		Location:       req.Location,
		SalaryRange:    req.SalaryRange,
		SponsorsVisa:   req.SponsorsVisa,
		ApplicationURL: req.ApplicationURL,
		JobDescription: req.JobDescription,
		Status:         status,
		Notes:          req.Notes,
		AppliedDate:    time.Now(),
		Deadline:       req.Deadline,
	}
	if req.AppliedDate != nil {
		job.AppliedDate = *req.AppliedDate
	}

	if err := database.GetDB().Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}

	if job.SponsorsVisa {
		var user models.User
		if err := database.GetDB().First(&user, userID).Error; err == nil {
			h.emails.SendVisaSponsorAlertAsync(user.Email, job)
		}
	}

	c.JSON(http.StatusCreated, job)
}

// UpdateJob replaces the job's editable fields.
// Job ownership is already verified by RequireJobOwnership middleware.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	job, ok := middleware.GetJob(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Job not found in context"})
		return
	}

	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company and role are required"})
		return
	}

	if req.Status != "" && !req.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown status: %s", req.Status)})
		return
	}

	job.Company = req.Company
	job.Role = req.Role
	job.Location = req.Location
	job.SalaryRange = req.SalaryRange
	job.SponsorsVisa = req.SponsorsVisa
	job.ApplicationURL = req.ApplicationURL
	job.JobDescription = req.JobDescription
	if req.Status != "" {
		job.Status = req.Status
	}
	job.Notes = req.Notes
	if req.AppliedDate != nil {
		job.AppliedDate = *req.AppliedDate
	}
	job.Deadline = req.Deadline

	if err := database.GetDB().Save(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob removes a job and its activity log entries.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	job, ok := middleware.GetJob(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Job not found in context"})
		return
	}

	db := database.GetDB()
	if err := db.Where("job_id = ?", job.ID).Delete(&models.ActivityLog{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job activities"})
		return
	}
	if err := db.Delete(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job deleted successfully",
	})
}

// GetStats aggregates the caller's job list for the dashboard.
func (h *JobHandler) GetStats(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var jobs []models.Job
	if err := database.GetDB().Where("user_id = ?", userID).Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jobs"})
		return
	}

	c.JSON(http.StatusOK, services.ComputeStats(jobs, time.Now()))
}
