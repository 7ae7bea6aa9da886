// Package application provides HTTP handlers for job application operations.
package application

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

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	Store storage.Storage
}

// NewApplicationController creates a new instance of ApplicationController
func NewApplicationController(store storage.Storage) *ApplicationController {
	return &ApplicationController{Store: store}
}

// ApplyHandler submits an application against a job posting. The contact
// fields are stored as a snapshot; the status always starts as "applied"
// regardless of anything in the request. Applying to the same posting
// more than once is allowed.
// @Summary Apply to a job posting
// @Tags Applications
// @Accept json
// @Produce json
// @Param id path integer true "ID of the job posting"
// @Param application body model.ApplyRequest true "Application information"
// @Success 201 {object} model.Application "Created application"
// @Failure 400 {object} utilities.ErrorResponse "Non-numeric id or invalid payload"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /jobs/{id}/apply [post]
func (ac *ApplicationController) ApplyHandler(c *gin.Context) {
	jobID, err := utilities.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Message: "Invalid job ID"})
		return
	}

	if _, err := ac.Store.GetJob(jobID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Message: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	var req model.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Message: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	app, err := ac.Store.CreateApplication(model.Application{
		JobID:       jobID,
		UserID:      req.UserID,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	metrics.ApplicationsCreatedTotal.Inc()

	c.JSON(http.StatusCreated, app)
}

// UpdateStatusHandler overwrites an application's status. Any string is
// accepted; the known lifecycle values are applied, reviewed, interview,
// rejected, offered and hired.
// @Summary Update application status
// @Tags Applications
// @Accept json
// @Produce json
// @Param id path integer true "ID of the application"
// @Param status body model.StatusUpdateRequest true "New status"
// @Success 200 {object} model.Application "Updated application"
// @Failure 400 {object} utilities.ErrorResponse "Non-numeric id or missing status"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Router /applications/{id}/status [patch]
func (ac *ApplicationController) UpdateStatusHandler(c *gin.Context) {
	id, err := utilities.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Message: "Invalid application ID"})
		return
	}

	var req model.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Message: "Status must be provided"})
		return
	}

	app, err := ac.Store.UpdateApplicationStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Message: "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, app)
}

// ListByJobHandler returns every application against a posting, most
// recent first.
// @Summary List applications for a job posting
// @Tags Applications
// @Produce json
// @Param id path integer true "ID of the job posting"
// @Success 200 {array} model.Application "Applications, newest first"
// @Failure 400 {object} utilities.ErrorResponse "Non-numeric id"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /jobs/{id}/applications [get]
func (ac *ApplicationController) ListByJobHandler(c *gin.Context) {
	jobID, err := utilities.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Message: "Invalid job ID"})
		return
	}

	if _, err := ac.Store.GetJob(jobID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Message: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	apps, err := ac.Store.GetApplicationsByJob(jobID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, apps)
}

// ListByUserHandler returns every application a user has submitted, most
// recent first.
// @Summary List applications by user
// @Tags Applications
// @Produce json
// @Param id path integer true "ID of the user"
// @Success 200 {array} model.Application "Applications, newest first"
// @Failure 400 {object} utilities.ErrorResponse "Non-numeric id"
// @Failure 404 {object} utilities.ErrorResponse "User not found"
// @Router /users/{id}/applications [get]
func (ac *ApplicationController) ListByUserHandler(c *gin.Context) {
	userID, err := utilities.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Message: "Invalid user ID"})
		return
	}

	if _, err := ac.Store.GetUser(userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Message: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	apps, err := ac.Store.GetApplicationsByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, apps)
}
