package model

// RegisterRequest is the payload accepted by POST /api/auth/register.
type RegisterRequest struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
}

// LoginRequest is the payload accepted by POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ApplyRequest is the payload accepted by POST /api/jobs/:id/apply. The
// job id comes from the path; any status supplied by the caller is
// discarded and the stored application always starts as "applied".
type ApplyRequest struct {
	UserID      int     `json:"userId" binding:"required"`
	FullName    string  `json:"fullName" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       string  `json:"phone" binding:"required"`
	Resume      string  `json:"resume" binding:"required"`
	CoverLetter *string `json:"coverLetter"`
}

// SaveJobRequest is the payload accepted by POST /api/jobs/:id/save.
type SaveJobRequest struct {
	UserID int `json:"userId" binding:"required"`
}

// StatusUpdateRequest is the payload accepted by
// PATCH /api/applications/:id/status.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateJobRequest is the payload accepted by POST /api/jobs.
type CreateJobRequest struct {
	Title              string  `json:"title" binding:"required"`
	Company            string  `json:"company" binding:"required"`
	Location           string  `json:"location" binding:"required"`
	Salary             *string `json:"salary"`
	Description        string  `json:"description" binding:"required"`
	Responsibilities   string  `json:"responsibilities" binding:"required"`
	CompanyDescription string  `json:"companyDescription" binding:"required"`
	JobType            string  `json:"jobType" binding:"required"`
	WorkType           string  `json:"workType" binding:"required,worktype"`
	ExperienceLevel    string  `json:"experienceLevel" binding:"required"`
	CompanySize        *string `json:"companySize"`
	CompanyLogo        *string `json:"companyLogo"`
}

// JobUpdate carries a partial job update; empty fields are left
// untouched. Flipping IsActive to false soft-deletes the posting.
type JobUpdate struct {
	Title              string  `json:"title"`
	Company            string  `json:"company"`
	Location           string  `json:"location"`
	Salary             *string `json:"salary"`
	Description        string  `json:"description"`
	Responsibilities   string  `json:"responsibilities"`
	CompanyDescription string  `json:"companyDescription"`
	JobType            string  `json:"jobType"`
	WorkType           string  `json:"workType"`
	ExperienceLevel    string  `json:"experienceLevel"`
	CompanySize        *string `json:"companySize"`
	CompanyLogo        *string `json:"companyLogo"`
	IsActive           *bool   `json:"isActive"`
}

// UserUpdate carries a partial profile update; empty fields are
// left untouched.
type UserUpdate struct {
	FullName    *string `json:"fullName"`
	Phone       *string `json:"phone"`
	Resume      *string `json:"resume"`
	CoverLetter *string `json:"coverLetter"`
}
