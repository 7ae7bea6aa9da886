package model

import "time"

// SavedJob is a bookmark relation between a user and a job. At most one
// row exists per (jobId, userId) pair; saving twice returns the existing
// record.
type SavedJob struct {
	ID      int       `gorm:"primaryKey;autoIncrement" json:"id"`
	JobID   int       `gorm:"not null;uniqueIndex:idx_saved_job_user" json:"jobId"`
	UserID  int       `gorm:"not null;uniqueIndex:idx_saved_job_user" json:"userId"`
	SavedAt time.Time `gorm:"type:timestamp;<-:create" json:"savedAt"`
}

// SavedJobDetail is the joined view returned by the saved-jobs listing:
// the bookmark with the full job record attached inline. Job is omitted
// when the referenced posting no longer resolves.
type SavedJobDetail struct {
	SavedJob
	Job *Job `json:"job,omitempty"`
}
