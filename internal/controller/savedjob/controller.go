// Package savedjob provides HTTP handlers for job bookmark operations.
package savedjob

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prateekh777/AIInterviewV4-0/internal/metrics"
	"github.com/prateekh777/AIInterviewV4-0/internal/model"
	"github.com/prateekh777/AIInterviewV4-0/internal/storage"
	"github.com/prateekh777/AIInterviewV4-0/internal/utilities"
)

// SavedJobController handles bookmark related endpoints
type SavedJobController struct {
	Store storage.Storage
}

// NewSavedJobController creates a new instance of SavedJobController
func NewSavedJobController(store storage.Storage) *SavedJobController {
	return &SavedJobController{Store: store}
}

// SaveHandler bookmarks a job for a user. Saving an already bookmarked
// job returns the existing bookmark with status 201, same as the first
// save.
// @Summary Save a job for a user
// @Tags SavedJobs
// @Accept json
// @Produce json
// @Param id path integer true "ID of the job posting"
// @Param body body model.SaveJobRequest true "User id"
// @Success 201 {object} model.SavedJob "The bookmark (new or pre-existing)"
// @Failure 400 {object} utilities.ErrorResponse "Non-numeric job id or missing user id"
// @Failure 404 {object} utilities.ErrorResponse "Job or user not found"
// @Router /jobs/{id}/save [post]
func (sc *SavedJobController) SaveHandler(c *gin.Context) {
	jobID, err := utilities.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Message: "Invalid job ID or user ID"})
		return
	}

	var req model.SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Message: "Invalid job ID or user ID"})
		return
	}

	if !sc.existsOr404(c, jobID, req.UserID) {
		return
	}

	saved, err := sc.Store.CreateSavedJob(jobID, req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	metrics.SavedJobActionsTotal.WithLabelValues("save").Inc()

	c.JSON(http.StatusCreated, saved)
}

// UnsaveHandler removes a user's bookmark on a job. The bookmark is
// resolved by scanning the user's saved jobs for the matching job id.
// @Summary Remove a saved job
// @Tags SavedJobs
// @Produce json
// @Param id path integer true "ID of the job posting"
// @Param userId query integer true "ID of the user"
// @Success 204 "Bookmark removed"
// @Failure 400 {object} utilities.ErrorResponse "Non-numeric ids"
// @Failure 404 {object} utilities.ErrorResponse "Saved job not found"
// @Router /jobs/{id}/save [delete]
func (sc *SavedJobController) UnsaveHandler(c *gin.Context) {
	jobID, err := utilities.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Message: "Invalid job ID or user ID"})
		return
	}
	userID, err := utilities.ParseID(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Message: "Invalid job ID or user ID"})
		return
	}

	saved, err := sc.Store.GetSavedJobsByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	var target *model.SavedJob
	for i := range saved {
		if saved[i].JobID == jobID {
			target = &saved[i]
			break
		}
	}
	if target == nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Message: "Saved job not found"})
		return
	}

	if err := sc.Store.DeleteSavedJob(target.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Message: "Saved job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	metrics.SavedJobActionsTotal.WithLabelValues("unsave").Inc()

	c.Status(http.StatusNoContent)
}

// ListHandler returns a user's bookmarks joined with the full job
// records, most recently saved first. A bookmark whose job no longer
// resolves is returned without the job field instead of failing the
// whole listing.
// @Summary List saved jobs with job details
// @Tags SavedJobs
// @Produce json
// @Param id path integer true "ID of the user"
// @Success 200 {array} model.SavedJobDetail "Bookmarks, newest first"
// @Failure 400 {object} utilities.ErrorResponse "Non-numeric id"
// @Failure 404 {object} utilities.ErrorResponse "User not found"
// @Router /users/{id}/saved-jobs [get]
func (sc *SavedJobController) ListHandler(c *gin.Context) {
	userID, err := utilities.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Message: "Invalid user ID"})
		return
	}

	if _, err := sc.Store.GetUser(userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Message: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	saved, err := sc.Store.GetSavedJobsByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	details := make([]model.SavedJobDetail, 0, len(saved))
	for _, s := range saved {
		detail := model.SavedJobDetail{SavedJob: s}
		if job, err := sc.Store.GetJob(s.JobID); err == nil {
			detail.Job = job
		}
		details = append(details, detail)
	}

	c.JSON(http.StatusOK, details)
}

// IsSavedHandler reports whether a user has bookmarked a job.
// @Summary Check whether a job is saved
// @Tags SavedJobs
// @Produce json
// @Param id path integer true "ID of the job posting"
// @Param userId query integer true "ID of the user"
// @Success 200 {object} map[string]bool "{\"saved\": true}"
// @Failure 400 {object} utilities.ErrorResponse "Non-numeric ids"
// @Router /jobs/{id}/saved [get]
func (sc *SavedJobController) IsSavedHandler(c *gin.Context) {
	jobID, err := utilities.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Message: "Invalid job ID or user ID"})
		return
	}
	userID, err := utilities.ParseID(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Message: "Invalid job ID or user ID"})
		return
	}

	isSaved, err := sc.Store.IsSavedJob(jobID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": isSaved})
}

// existsOr404 verifies the job and the user exist, writing the 404
// response itself when one is missing.
func (sc *SavedJobController) existsOr404(c *gin.Context, jobID, userID int) bool {
	if _, err := sc.Store.GetJob(jobID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Message: "Job not found"})
			return false
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Message: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return false
	}

	if _, err := sc.Store.GetUser(userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Message: "User not found"})
			return false
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Message: fmt.Sprintf("Failed to retrieve user: %s", err.Error()),
		})
		return false
	}

	return true
}
