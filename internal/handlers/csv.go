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

// ExportCSV streams the caller's applications as a CSV download.
func (h *JobHandler) ExportCSV(c *gin.Context) {
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

	data, err := services.ExportCSV(jobs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export jobs"})
		return
	}

	filename := fmt.Sprintf("interntrack-applications-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

// ImportCSV bulk-creates applications from an uploaded CSV. Rows without
// both Company and Role are skipped; imported rows without a status come in
// as Planning to Apply.
func (h *JobHandler) ImportCSV(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing CSV file"})
		return
	}
	defer file.Close()

	jobs, err := services.ImportCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(jobs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid jobs found. Make sure CSV has Company and Role columns."})
		return
	}

	now := time.Now()
	for i := range jobs {
		jobs[i].UserID = userID
		if jobs[i].AppliedDate.IsZero() {
			jobs[i].AppliedDate = now
		}
	}

	if err := database.GetDB().Create(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import jobs"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Import complete",
		"imported": len(jobs),
	})
}
