package dto

import (
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"github.com/google/uuid"
)

type ActivityInput struct {
	Title        string     `json:"title" binding:"required,max=200"`
	Organization string     `json:"organization" binding:"required,max=200"`
	Role         *string    `json:"role" binding:"omitempty,max=100"`
	Description  *string    `json:"description" binding:"omitempty,max=2000"`
	StartDate    time.Time  `json:"startDate" binding:"required"`
	EndDate      *time.Time `json:"endDate"`
}

func (in ActivityInput) Fields() ActivityInput { return in }

type CreateActivityRequest struct {
	ActivityInput
}

type UpdateActivityRequest struct {
	ActivityInput
}

type ActivityResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Organization string     `json:"organization"`
	Role         *string    `json:"role,omitempty"`
	Description  *string    `json:"description,omitempty"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func ToActivityResponse(a *entity.ExtraCurricularActivity) ActivityResponse {
	return ActivityResponse{
		ID:           a.ID,
		Title:        a.Title,
		Organization: a.Organization,
		Role:         a.Role,
		Description:  a.Description,
		StartDate:    a.StartDate,
		EndDate:      a.EndDate,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
