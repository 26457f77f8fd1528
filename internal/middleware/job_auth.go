package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/interntrack/api/internal/constants"
	"github.com/interntrack/api/internal/database"
	apierrors "github.com/interntrack/api/internal/errors"
	"github.com/interntrack/api/internal/models"
)

// RequireJobOwnership loads the job from the URL parameter and checks that it
// belongs to the authenticated user. A job owned by someone else gets the
// same 404 as a missing job so existence is never leaked.
func RequireJobOwnership() gin.HandlerFunc {
	return func(c *gin.Context) {
		jobIDStr := c.Param("id")
		jobID, err := strconv.ParseUint(jobIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid job ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var job models.Job
		if err := database.GetDB().
			Where("id = ? AND user_id = ?", jobID, userID).
			First(&job).Error; err != nil {
			apierrors.NotFound(c, "Job not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyJob, job)
		c.Next()
	}
}

// GetJob retrieves the job loaded by RequireJobOwnership from the context.
func GetJob(c *gin.Context) (models.Job, bool) {
	jobInterface, exists := c.Get(constants.ContextKeyJob)
	if !exists {
		return models.Job{}, false
	}

	job, ok := jobInterface.(models.Job)
	return job, ok
}
