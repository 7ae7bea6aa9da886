// Package job provides HTTP handlers for job posting operations.
package job

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

// JobController handles job posting related endpoints
type JobController struct {
	Store storage.Storage
}

// NewJobController creates a new instance of JobController
func NewJobController(store storage.Storage) *JobController {
	return &JobController{Store: store}
}

// GetJobs fetches all active job postings that match the query and
// filters, most recently posted first.
// @Summary Search job postings
// @Description Every query param is optional. q matches title, company or description case-insensitively; location matches as a substring; jobType, experienceLevel and workType must match exactly. companyType is accepted but currently has no effect.
// @Tags Jobs
// @Produce json
// @Param q query string false "Free-text query over title, company and description"
// @Param location query string false "Location substring, case insensitive"
// @Param jobType query string false "Exact job type, e.g. Full-time"
// @Param experienceLevel query string false "Exact experience level"
// @Param workType query string false "Exact work type: Remote, Onsite or Hybrid"
// @Param companyType query string false "Accepted for compatibility; not applied"
// @Success 200 {array} model.Job "Matching active jobs, newest first"
// @Failure 500 {object} utilities.ErrorResponse "Storage error"
// @Router /jobs [get]
func (jc *JobController) GetJobs(c *gin.Context) {
	query := c.Query("q")
	filters := model.JobFilters{
		Location:        c.Query("location"),
		JobType:         c.Query("jobType"),
		ExperienceLevel: c.Query("experienceLevel"),
		CompanyType:     c.Query("companyType"),
		WorkType:        c.Query("workType"),
	}

	jobs, err := jc.Store.SearchJobs(query, filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	withFilters := filters.Location != "" || filters.JobType != "" ||
		filters.ExperienceLevel != "" || filters.WorkType != ""
	metrics.JobSearchesTotal.WithLabelValues(
		boolLabel(query != ""), boolLabel(withFilters),
	).Inc()

	c.JSON(http.StatusOK, jobs)
}

// GetJobByID fetches a single job posting. Direct lookup is
// unconditional: an inactive posting is still returned.
// @Summary Get job posting by ID
// @Tags Jobs
// @Produce json
// @Param id path integer true "ID of desired job posting"
// @Success 200 {object} model.Job "The job posting"
// @Failure 400 {object} utilities.ErrorResponse "Non-numeric id"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (jc *JobController) GetJobByID(c *gin.Context) {
	id, err := utilities.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Message: "Invalid job ID"})
		return
	}

	job, err := jc.Store.GetJob(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Message: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// CreateJobHandler creates a new job posting. This is the seeding/admin
// path; postings are always created active.
// @Summary Create job posting
// @Tags Jobs
// @Accept json
// @Produce json
// @Param job body model.CreateJobRequest true "Job posting information"
// @Success 201 {object} model.Job "Created job posting"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job posting payload"
// @Failure 500 {object} utilities.ErrorResponse "Storage error"
// @Router /jobs [post]
func (jc *JobController) CreateJobHandler(c *gin.Context) {
	var req model.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Message: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	job, err := jc.Store.CreateJob(model.Job{
		Title:              req.Title,
		Company:            req.Company,
		Location:           req.Location,
		Salary:             req.Salary,
		Description:        req.Description,
		Responsibilities:   req.Responsibilities,
		CompanyDescription: req.CompanyDescription,
		JobType:            req.JobType,
		WorkType:           req.WorkType,
		ExperienceLevel:    req.ExperienceLevel,
		CompanySize:        req.CompanySize,
		CompanyLogo:        req.CompanyLogo,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, job)
}

// EditJobHandler merges a partial update onto an existing posting.
// Setting isActive to false soft-deletes it: the posting disappears from
// search and listings but stays reachable by id.
// @Summary Edit job posting
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path integer true "ID of desired job posting"
// @Param job body model.JobUpdate true "Fields to update; empty fields are kept"
// @Success 200 {object} model.Job "Updated job posting"
// @Failure 400 {object} utilities.ErrorResponse "Non-numeric id or invalid payload"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /jobs/{id} [patch]
func (jc *JobController) EditJobHandler(c *gin.Context) {
	id, err := utilities.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Message: "Invalid job ID"})
		return
	}

	var patch model.JobUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Message: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	job, err := jc.Store.UpdateJob(id, patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Message: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, job)
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
