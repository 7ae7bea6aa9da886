// Package storage defines the data access surface of the job board and
// its two implementations: an in-memory store and a postgres-backed one.
// All reads and writes from the HTTP layer go through the Storage
// interface; nothing below it is reachable from the transport layer.
package storage

import (
	"errors"

	"github.com/prateekh777/AIInterviewV4-0/internal/model"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUsernameTaken is returned by CreateUser on a duplicate username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrEmailTaken is returned by CreateUser on a duplicate email.
	ErrEmailTaken = errors.New("email already exists")
)

// Storage is the single entry point consumed by the HTTP controllers.
//
// Id assignment is monotonically increasing per entity type, starting at
// 1, and never reused. Implementations must treat id assignment and
// uniqueness checks (username, email, saved-job pair) as atomic with the
// insert, so concurrent requests cannot race a check-then-write.
type Storage interface {
	// User operations
	GetUser(id int) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	CreateUser(user model.User) (*model.User, error)
	UpdateUser(id int, patch model.User) (*model.User, error)

	// Job operations. GetJob is unconditional and returns inactive jobs;
	// GetAllJobs and SearchJobs only ever see active ones.
	GetJob(id int) (*model.Job, error)
	GetAllJobs() ([]model.Job, error)
	SearchJobs(query string, filters model.JobFilters) ([]model.Job, error)
	CreateJob(job model.Job) (*model.Job, error)
	UpdateJob(id int, patch model.JobUpdate) (*model.Job, error)

	// Application operations. CreateApplication forces the initial status
	// to "applied"; UpdateApplicationStatus overwrites with any string.
	GetApplication(id int) (*model.Application, error)
	GetApplicationsByJob(jobID int) ([]model.Application, error)
	GetApplicationsByUser(userID int) ([]model.Application, error)
	CreateApplication(app model.Application) (*model.Application, error)
	UpdateApplicationStatus(id int, status string) (*model.Application, error)

	// Saved job operations. CreateSavedJob is idempotent per
	// (jobID, userID): saving an already saved job returns the existing
	// record instead of creating a duplicate.
	GetSavedJobsByUser(userID int) ([]model.SavedJob, error)
	CreateSavedJob(jobID, userID int) (*model.SavedJob, error)
	DeleteSavedJob(id int) error
	IsSavedJob(jobID, userID int) (bool, error)

	// Health returns a map of health status information.
	Health() map[string]string
}
