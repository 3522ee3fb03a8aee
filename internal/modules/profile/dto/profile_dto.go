package dto

import (
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"github.com/google/uuid"
)

type UpsertProfileInput struct {
	FullName    string               `json:"fullName" binding:"required,max=100"`
	DateOfBirth *time.Time           `json:"dateOfBirth"`
	Status      entity.ProfileStatus `json:"status" binding:"required,oneof=OpenToWork Employed Freelancing Student NotLooking"`
	Headline    string               `json:"headline" binding:"max=200"`
	Bio         *string              `json:"bio" binding:"omitempty,max=5000"`
	Location    string               `json:"location" binding:"max=100"`
	IsPublic    bool                 `json:"isPublic"`
}

type ProfileResponse struct {
	UserID      uuid.UUID            `json:"userId"`
	Username    string               `json:"username,omitempty"`
	FullName    string               `json:"fullName"`
	DateOfBirth *time.Time           `json:"dateOfBirth,omitempty"`
	Status      entity.ProfileStatus `json:"status"`
	Headline    string               `json:"headline"`
	Bio         *string              `json:"bio,omitempty"`
	ImageURL    *string              `json:"imageUrl,omitempty"`
	ResumeURL   *string              `json:"resumeUrl,omitempty"`
	Location    string               `json:"location"`
	IsPublic    bool                 `json:"isPublic"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

func ToProfileResponse(p *entity.UserProfile) ProfileResponse {
	return ProfileResponse{
		UserID:      p.UserID,
		FullName:    p.FullName,
		DateOfBirth: p.DateOfBirth,
		Status:      p.Status,
		Headline:    p.Headline,
		Bio:         p.Bio,
		ImageURL:    p.ImageURL,
		ResumeURL:   p.ResumeURL,
		Location:    p.Location,
		IsPublic:    p.IsPublic,
		UpdatedAt:   p.UpdatedAt,
	}
}
