// Package model contains the entity and request types shared across the
// storage layer and the HTTP controllers.
package model

import "time"

// User is a registered job seeker. The password is stored as given and is
// never serialized into responses.
type User struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username    string    `gorm:"type:text;uniqueIndex;not null" json:"username"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	Email       string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	FullName    *string   `gorm:"type:text" json:"fullName"`
	Phone       *string   `gorm:"type:text" json:"phone"`
	Resume      *string   `gorm:"type:text" json:"resume"`
	CoverLetter *string   `gorm:"type:text" json:"coverLetter"`
	CreatedAt   time.Time `gorm:"type:timestamp;<-:create" json:"createdAt"`
}
