package storage

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prateekh777/AIInterviewV4-0/internal/model"
	"github.com/prateekh777/AIInterviewV4-0/internal/utilities"
)

// MemStorage is the in-memory Storage implementation. All state lives in
// four id-keyed maps guarded by a single mutex, so every operation is a
// critical section and id assignment can never race an insert.
//
// Construct one per server (or per test) with NewMemStorage; there is no
// process-wide instance.
type MemStorage struct {
	mu sync.RWMutex

	users        map[int]model.User
	jobs         map[int]model.Job
	applications map[int]model.Application
	savedJobs    map[int]model.SavedJob

	userID        int
	jobID         int
	applicationID int
	savedJobID    int
}

// NewMemStorage returns an empty in-memory store. Entity ids start at 1.
func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:         make(map[int]model.User),
		jobs:          make(map[int]model.Job),
		applications:  make(map[int]model.Application),
		savedJobs:     make(map[int]model.SavedJob),
		userID:        1,
		jobID:         1,
		applicationID: 1,
		savedJobID:    1,
	}
}

// GetUser returns the user with the given id.
func (s *MemStorage) GetUser(id int) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// GetUserByUsername returns the user with the given username (exact match).
func (s *MemStorage) GetUserByUsername(username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// GetUserByEmail returns the user with the given email (exact match).
func (s *MemStorage) GetUserByEmail(email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// CreateUser assigns an id and creation time and inserts the user. The
// username and email uniqueness checks happen under the same lock as the
// insert, so two concurrent registrations cannot both pass them.
func (s *MemStorage) CreateUser(user model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return nil, ErrUsernameTaken
		}
		if existing.Email == user.Email {
			return nil, ErrEmailTaken
		}
	}

	user.ID = s.userID
	s.userID++
	user.CreatedAt = time.Now()
	s.users[user.ID] = user

	u := user
	return &u, nil
}

// UpdateUser merges the non-empty fields of patch onto the stored user.
func (s *MemStorage) UpdateUser(id int, patch model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}

	patch.ID = 0
	utilities.MergeNonEmpty(&user, &patch)
	s.users[id] = user

	u := user
	return &u, nil
}

// GetJob returns the job with the given id. Direct lookup is
// unconditional: inactive jobs are returned too.
func (s *MemStorage) GetJob(id int) (*model.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &job, nil
}

// GetAllJobs returns every active job, most recently posted first.
func (s *MemStorage) GetAllJobs() ([]model.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := s.activeJobs()
	sortJobsByPostedDate(jobs)
	return jobs, nil
}

// SearchJobs runs the free-text query and the structured filters over the
// active jobs and returns the matches, most recently posted first.
//
// The query is a case-insensitive substring match against title, company
// or description. Filters are conjunctive: location matches as a
// case-insensitive substring, jobType, experienceLevel and workType by
// exact equality. The companyType filter is accepted but never applied;
// no job field corresponds to it.
func (s *MemStorage) SearchJobs(query string, filters model.JobFilters) ([]model.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := s.activeJobs()

	if query != "" {
		lowerQuery := strings.ToLower(query)
		results = filterJobs(results, func(job model.Job) bool {
			return strings.Contains(strings.ToLower(job.Title), lowerQuery) ||
				strings.Contains(strings.ToLower(job.Company), lowerQuery) ||
				strings.Contains(strings.ToLower(job.Description), lowerQuery)
		})
	}

	if filters.Location != "" {
		lowerLocation := strings.ToLower(filters.Location)
		results = filterJobs(results, func(job model.Job) bool {
			return strings.Contains(strings.ToLower(job.Location), lowerLocation)
		})
	}
	if filters.JobType != "" {
		results = filterJobs(results, func(job model.Job) bool {
			return job.JobType == filters.JobType
		})
	}
	if filters.ExperienceLevel != "" {
		results = filterJobs(results, func(job model.Job) bool {
			return job.ExperienceLevel == filters.ExperienceLevel
		})
	}
	if filters.WorkType != "" {
		results = filterJobs(results, func(job model.Job) bool {
			return job.WorkType == filters.WorkType
		})
	}

	sortJobsByPostedDate(results)
	return results, nil
}

// CreateJob assigns an id and posted date and inserts the job as active.
// A non-zero PostedDate on the input is kept, which lets seeding tools
// backdate postings.
func (s *MemStorage) CreateJob(job model.Job) (*model.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job.ID = s.jobID
	s.jobID++
	if job.PostedDate.IsZero() {
		job.PostedDate = time.Now()
	}
	job.IsActive = true
	s.jobs[job.ID] = job

	j := job
	return &j, nil
}

// UpdateJob merges the patch onto the stored job.
func (s *MemStorage) UpdateJob(id int, patch model.JobUpdate) (*model.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}

	patch.ApplyTo(&job)
	s.jobs[id] = job

	j := job
	return &j, nil
}

// GetApplication returns the application with the given id.
func (s *MemStorage) GetApplication(id int) (*model.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	app, ok := s.applications[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &app, nil
}

// GetApplicationsByJob returns every application against the given job,
// most recent first.
func (s *MemStorage) GetApplicationsByJob(jobID int) ([]model.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.applicationsMatching(func(app model.Application) bool {
		return app.JobID == jobID
	}), nil
}

// GetApplicationsByUser returns every application by the given user, most
// recent first.
func (s *MemStorage) GetApplicationsByUser(userID int) ([]model.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.applicationsMatching(func(app model.Application) bool {
		return app.UserID == userID
	}), nil
}

// CreateApplication assigns an id and application date and inserts the
// application. The status always starts as "applied" no matter what the
// caller put in. Duplicate applications for the same (job, user) pair are
// allowed.
func (s *MemStorage) CreateApplication(app model.Application) (*model.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	app.ID = s.applicationID
	s.applicationID++
	app.ApplicationDate = time.Now()
	app.Status = model.ApplicationStatusApplied
	s.applications[app.ID] = app

	a := app
	return &a, nil
}

// UpdateApplicationStatus overwrites the status unconditionally. Any
// string is accepted.
func (s *MemStorage) UpdateApplicationStatus(id int, status string) (*model.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	app, ok := s.applications[id]
	if !ok {
		return nil, ErrNotFound
	}

	app.Status = status
	s.applications[id] = app

	a := app
	return &a, nil
}

// GetSavedJobsByUser returns the user's bookmarks, most recently saved
// first.
func (s *MemStorage) GetSavedJobsByUser(userID int) ([]model.SavedJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	saved := make([]model.SavedJob, 0)
	for _, id := range sortedKeys(s.savedJobs) {
		if s.savedJobs[id].UserID == userID {
			saved = append(saved, s.savedJobs[id])
		}
	}
	sort.SliceStable(saved, func(i, j int) bool {
		return saved[i].SavedAt.After(saved[j].SavedAt)
	})
	return saved, nil
}

// CreateSavedJob bookmarks a job for a user. Saving an already saved job
// is a no-op that returns the existing record; the duplicate check and
// the insert happen under one lock.
func (s *MemStorage) CreateSavedJob(jobID, userID int) (*model.SavedJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, saved := range s.savedJobs {
		if saved.JobID == jobID && saved.UserID == userID {
			existing := saved
			return &existing, nil
		}
	}

	saved := model.SavedJob{
		ID:      s.savedJobID,
		JobID:   jobID,
		UserID:  userID,
		SavedAt: time.Now(),
	}
	s.savedJobID++
	s.savedJobs[saved.ID] = saved

	sj := saved
	return &sj, nil
}

// DeleteSavedJob removes a bookmark by id.
func (s *MemStorage) DeleteSavedJob(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.savedJobs[id]; !ok {
		return ErrNotFound
	}
	delete(s.savedJobs, id)
	return nil
}

// IsSavedJob reports whether the user has bookmarked the job.
func (s *MemStorage) IsSavedJob(jobID, userID int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, saved := range s.savedJobs {
		if saved.JobID == jobID && saved.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

// Health reports the backend kind and current entity counts.
func (s *MemStorage) Health() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]string{
		"status":       "up",
		"backend":      "memory",
		"users":        strconv.Itoa(len(s.users)),
		"jobs":         strconv.Itoa(len(s.jobs)),
		"applications": strconv.Itoa(len(s.applications)),
		"saved_jobs":   strconv.Itoa(len(s.savedJobs)),
	}
}

// activeJobs snapshots the active jobs in insertion (id) order. Callers
// must hold at least the read lock.
func (s *MemStorage) activeJobs() []model.Job {
	jobs := make([]model.Job, 0, len(s.jobs))
	for _, id := range sortedKeys(s.jobs) {
		if s.jobs[id].IsActive {
			jobs = append(jobs, s.jobs[id])
		}
	}
	return jobs
}

// applicationsMatching snapshots matching applications, most recent
// first. Callers must hold at least the read lock.
func (s *MemStorage) applicationsMatching(match func(model.Application) bool) []model.Application {
	apps := make([]model.Application, 0)
	for _, id := range sortedKeys(s.applications) {
		if match(s.applications[id]) {
			apps = append(apps, s.applications[id])
		}
	}
	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].ApplicationDate.After(apps[j].ApplicationDate)
	})
	return apps
}

func filterJobs(jobs []model.Job, keep func(model.Job) bool) []model.Job {
	filtered := jobs[:0]
	for _, job := range jobs {
		if keep(job) {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

// sortJobsByPostedDate orders jobs most recently posted first. The sort
// is stable so ties keep insertion order.
func sortJobsByPostedDate(jobs []model.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].PostedDate.After(jobs[j].PostedDate)
	})
}

// sortedKeys returns map keys in ascending order. Go maps iterate in
// random order; id order is the insertion order every listing starts from.
func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
