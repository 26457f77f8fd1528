package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/interntrack/api/internal/database"
	"github.com/interntrack/api/internal/middleware"
	"github.com/interntrack/api/internal/models"
)

type ActivityHandler struct{}

func NewActivityHandler() *ActivityHandler {
	return &ActivityHandler{}
}

var validActivityTypes = map[models.ActivityType]bool{
	models.ActivityNote:      true,
	models.ActivityInterview: true,
	models.ActivityFollowUp:  true,
	models.ActivityRejection: true,
	models.ActivityOffer:     true,
}

// ListActivities returns a job's timeline, newest first.
// Job ownership is already verified by RequireJobOwnership middleware.
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	job, ok := middleware.GetJob(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Job not found in context"})
		return
	}

	var entries []models.ActivityLog
	if err := database.GetDB().
		Where("job_id = ?", job.ID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activities"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// CreateActivity appends an entry to a job's timeline. The log is
// append-only: there is no update or delete.
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	job, ok := middleware.GetJob(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Job not found in context"})
		return
	}

	type CreateActivityRequest struct {
		ActivityType models.ActivityType `json:"activity_type" binding:"required"`
		Note         string              `json:"note"`
	}

	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if !validActivityTypes[req.ActivityType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown activity type"})
		return
	}

	entry := models.ActivityLog{
		JobID:        job.ID,
		UserID:       job.UserID,
		ActivityType: req.ActivityType,
		Note:         req.Note,
	}

	if err := database.GetDB().Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}
