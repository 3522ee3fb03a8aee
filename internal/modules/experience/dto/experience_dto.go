package dto

import (
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"github.com/google/uuid"
)

type WorkExperienceInput struct {
	Company        string     `json:"company" binding:"required,max=200"`
	Role           string     `json:"role" binding:"required,max=200"`
	Location       *string    `json:"location" binding:"omitempty,max=100"`
	EmploymentType *string    `json:"employmentType" binding:"omitempty,oneof=FullTime PartTime Contract Internship Freelance"`
	StartDate      time.Time  `json:"startDate" binding:"required"`
	EndDate        *time.Time `json:"endDate"`
	Descriptions   []string   `json:"descriptions" binding:"max=20,dive,required,max=500"`
}

func (in WorkExperienceInput) Fields() WorkExperienceInput { return in }

type CreateWorkExperienceRequest struct {
	WorkExperienceInput
}

type UpdateWorkExperienceRequest struct {
	WorkExperienceInput
}

type WorkExperienceResponse struct {
	ID             uuid.UUID  `json:"id"`
	Company        string     `json:"company"`
	Role           string     `json:"role"`
	Location       *string    `json:"location,omitempty"`
	EmploymentType *string    `json:"employmentType,omitempty"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	IsCurrent      bool       `json:"isCurrent"`
	Descriptions   []string   `json:"descriptions"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func ToWorkExperienceResponse(w *entity.WorkExperience) WorkExperienceResponse {
	descriptions := []string(w.Descriptions)
	if descriptions == nil {
		descriptions = []string{}
	}
	return WorkExperienceResponse{
		ID:             w.ID,
		Company:        w.Company,
		Role:           w.Role,
		Location:       w.Location,
		EmploymentType: w.EmploymentType,
		StartDate:      w.StartDate,
		EndDate:        w.EndDate,
		IsCurrent:      w.EndDate == nil,
		Descriptions:   descriptions,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}
