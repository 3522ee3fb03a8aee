package dto

import (
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"github.com/google/uuid"
)

type SkillInput struct {
	Name        string             `json:"name" binding:"required,max=100"`
	Category    *string            `json:"category" binding:"omitempty,max=100"`
	Proficiency entity.Proficiency `json:"proficiency" binding:"required,oneof=Beginner Intermediate Advanced Expert"`
}

func (in SkillInput) Fields() SkillInput { return in }

type CreateSkillRequest struct {
	SkillInput
}

type UpdateSkillRequest struct {
	SkillInput
}

type SkillResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Category    *string            `json:"category,omitempty"`
	Proficiency entity.Proficiency `json:"proficiency"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func ToSkillResponse(s *entity.Skill) SkillResponse {
	return SkillResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Proficiency: s.Proficiency,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
