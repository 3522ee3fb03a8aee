package dto

import (
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"github.com/google/uuid"
)

type EducationInput struct {
	Institute  string     `json:"institute" binding:"required,max=200"`
	Department string     `json:"department" binding:"required,max=200"`
	Degree     *string    `json:"degree" binding:"omitempty,max=100"`
	CGPA       float64    `json:"cgpa" binding:"gte=0"`
	Scale      float64    `json:"scale" binding:"required,gt=0,lte=100"`
	StartDate  time.Time  `json:"startDate" binding:"required"`
	EndDate    *time.Time `json:"endDate"`
}

func (in EducationInput) Fields() EducationInput { return in }

type CreateEducationRequest struct {
	EducationInput
}

type UpdateEducationRequest struct {
	EducationInput
}

type EducationResponse struct {
	ID         uuid.UUID  `json:"id"`
	Institute  string     `json:"institute"`
	Department string     `json:"department"`
	Degree     *string    `json:"degree,omitempty"`
	CGPA       float64    `json:"cgpa"`
	Scale      float64    `json:"scale"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func ToEducationResponse(e *entity.Education) EducationResponse {
	return EducationResponse{
		ID:         e.ID,
		Institute:  e.Institute,
		Department: e.Department,
		Degree:     e.Degree,
		CGPA:       e.CGPA,
		Scale:      e.Scale,
		StartDate:  e.StartDate,
		EndDate:    e.EndDate,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
