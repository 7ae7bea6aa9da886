package model

import "time"

// Known application statuses. UpdateApplicationStatus accepts any string;
// these are the values the reviewer workflow is expected to use.
const (
	ApplicationStatusApplied   = "applied"
	ApplicationStatusReviewed  = "reviewed"
	ApplicationStatusInterview = "interview"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusOffered   = "offered"
	ApplicationStatusHired     = "hired"
)

// Application is a user's submission against a job. Contact fields are a
// snapshot taken at submission time, not a live reference to the User, so
// an applicant may apply with overridden details.
type Application struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	JobID           int       `gorm:"not null;index" json:"jobId"`
	UserID          int       `gorm:"not null;index" json:"userId"`
	FullName        string    `gorm:"type:text;not null" json:"fullName"`
	Email           string    `gorm:"type:text;not null" json:"email"`
	Phone           string    `gorm:"type:text;not null" json:"phone"`
	Resume          string    `gorm:"type:text;not null" json:"resume"`
	CoverLetter     *string   `gorm:"type:text" json:"coverLetter"`
	Status          string    `gorm:"type:text;not null" json:"status"`
	ApplicationDate time.Time `gorm:"type:timestamp;<-:create" json:"applicationDate"`
}
