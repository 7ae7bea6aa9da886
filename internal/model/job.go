package model

import "time"

// Job is a single posting. Responsibilities is a newline-delimited list
// serialized as one text block. IsActive is a soft-delete flag: inactive
// jobs are hidden from search and listings but remain fetchable by id.
type Job struct {
	ID                 int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title              string    `gorm:"type:text;not null" json:"title"`
	Company            string    `gorm:"type:text;not null" json:"company"`
	Location           string    `gorm:"type:text;not null" json:"location"`
	Salary             *string   `gorm:"type:text" json:"salary"`
	Description        string    `gorm:"type:text;not null" json:"description"`
	Responsibilities   string    `gorm:"type:text;not null" json:"responsibilities"`
	CompanyDescription string    `gorm:"type:text;not null" json:"companyDescription"`
	JobType            string    `gorm:"type:text;not null" json:"jobType"`
	WorkType           string    `gorm:"type:text;not null" json:"workType"`
	ExperienceLevel    string    `gorm:"type:text;not null" json:"experienceLevel"`
	CompanySize        *string   `gorm:"type:text" json:"companySize"`
	CompanyLogo        *string   `gorm:"type:text" json:"companyLogo"`
	PostedDate         time.Time `gorm:"type:timestamp;<-:create" json:"postedDate"`
	IsActive           bool      `gorm:"not null;default:true" json:"isActive"`
}

// ApplyTo merges the non-empty fields of the update onto a job record.
// Id, posted date and ownership of the record are never touched.
func (u JobUpdate) ApplyTo(j *Job) {
	if u.Title != "" {
		j.Title = u.Title
	}
	if u.Company != "" {
		j.Company = u.Company
	}
	if u.Location != "" {
		j.Location = u.Location
	}
	if u.Salary != nil {
		j.Salary = u.Salary
	}
	if u.Description != "" {
		j.Description = u.Description
	}
	if u.Responsibilities != "" {
		j.Responsibilities = u.Responsibilities
	}
	if u.CompanyDescription != "" {
		j.CompanyDescription = u.CompanyDescription
	}
	if u.JobType != "" {
		j.JobType = u.JobType
	}
	if u.WorkType != "" {
		j.WorkType = u.WorkType
	}
	if u.ExperienceLevel != "" {
		j.ExperienceLevel = u.ExperienceLevel
	}
	if u.CompanySize != nil {
		j.CompanySize = u.CompanySize
	}
	if u.CompanyLogo != nil {
		j.CompanyLogo = u.CompanyLogo
	}
	if u.IsActive != nil {
		j.IsActive = *u.IsActive
	}
}

// JobFilters narrows searchJobs results. Every field is optional; empty
// fields match everything. CompanyType is accepted for interface
// compatibility with the client but has no corresponding Job field, so it
// never filters anything.
type JobFilters struct {
	Location        string
	JobType         string
	ExperienceLevel string
	CompanyType     string
	WorkType        string
}
