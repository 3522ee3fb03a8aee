package dto

import (
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"github.com/google/uuid"
)

type ReviewInput struct {
	ReviewerName  string  `json:"reviewerName" binding:"required,max=100"`
	ReviewerTitle *string `json:"reviewerTitle" binding:"omitempty,max=100"`
	Company       *string `json:"company" binding:"omitempty,max=100"`
	Rating        int     `json:"rating" binding:"required,min=1,max=5"`
	Comment       string  `json:"comment" binding:"required,max=2000"`
	AvatarURL     *string `json:"avatarUrl" binding:"omitempty,url"`
}

func (in ReviewInput) Fields() ReviewInput { return in }

type CreateReviewRequest struct {
	ReviewInput
}

type UpdateReviewRequest struct {
	ReviewInput
}

type ReviewResponse struct {
	ID            uuid.UUID `json:"id"`
	ReviewerName  string    `json:"reviewerName"`
	ReviewerTitle *string   `json:"reviewerTitle,omitempty"`
	Company       *string   `json:"company,omitempty"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	AvatarURL     *string   `json:"avatarUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func ToReviewResponse(r *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:            r.ID,
		ReviewerName:  r.ReviewerName,
		ReviewerTitle: r.ReviewerTitle,
		Company:       r.Company,
		Rating:        r.Rating,
		Comment:       r.Comment,
		AvatarURL:     r.AvatarURL,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
