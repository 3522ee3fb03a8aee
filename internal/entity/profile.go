package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProfileStatus string

const (
	StatusOpenToWork  ProfileStatus = "OpenToWork"
	StatusEmployed    ProfileStatus = "Employed"
	StatusFreelancing ProfileStatus = "Freelancing"
	StatusStudent     ProfileStatus = "Student"
	StatusNotLooking  ProfileStatus = "NotLooking"
)

// UserProfile is the 1:1 public face of a user.
type UserProfile struct {
	UserID      uuid.UUID     `gorm:"type:uuid;primaryKey" json:"userId"`
	FullName    string        `gorm:"size:100;not null" json:"fullName"`
	DateOfBirth *time.Time    `gorm:"type:date" json:"dateOfBirth,omitempty"`
	Status      ProfileStatus `gorm:"size:20;not null" json:"status"`
	Headline    string        `gorm:"size:200" json:"headline"`
	Bio         *string       `gorm:"type:text" json:"bio,omitempty"`
	ImageURL    *string       `gorm:"type:text" json:"imageUrl,omitempty"`
	ResumeURL   *string       `gorm:"type:text" json:"resumeUrl,omitempty"`
	Location    string        `gorm:"size:100" json:"location"`
	IsPublic    bool          `gorm:"default:false" json:"isPublic"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}
