package dto

import (
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"github.com/google/uuid"
)

type SocialLinkInput struct {
	Platform     string `json:"platform" binding:"required,max=50"`
	URL          string `json:"url" binding:"required,url"`
	DisplayOrder int    `json:"displayOrder" binding:"gte=0"`
}

func (in SocialLinkInput) Fields() SocialLinkInput { return in }

type CreateSocialLinkRequest struct {
	SocialLinkInput
}

type UpdateSocialLinkRequest struct {
	SocialLinkInput
}

type SocialLinkResponse struct {
	ID           uuid.UUID `json:"id"`
	Platform     string    `json:"platform"`
	URL          string    `json:"url"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func ToSocialLinkResponse(s *entity.SocialLink) SocialLinkResponse {
	return SocialLinkResponse{
		ID:           s.ID,
		Platform:     s.Platform,
		URL:          s.URL,
		DisplayOrder: s.DisplayOrder,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
