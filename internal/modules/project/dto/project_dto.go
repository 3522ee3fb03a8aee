package dto

import (
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"github.com/google/uuid"
)

type ProjectLinkInput struct {
	Label string `json:"label" binding:"required,max=50"`
	URL   string `json:"url" binding:"required,url"`
}

type ProjectInput struct {
	Title        string             `json:"title" binding:"required,max=200"`
	Description  string             `json:"description" binding:"required,max=5000"`
	Technologies []string           `json:"technologies" binding:"max=30,dive,required,max=50"`
	Links        []ProjectLinkInput `json:"links" binding:"max=10,dive"`
	ImageURL     *string            `json:"imageUrl" binding:"omitempty,url"`
	IsFeatured   bool               `json:"isFeatured"`
}

func (in ProjectInput) Fields() ProjectInput { return in }

type CreateProjectRequest struct {
	ProjectInput
}

type UpdateProjectRequest struct {
	ProjectInput
}

type ProjectResponse struct {
	ID           uuid.UUID            `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Technologies []string             `json:"technologies"`
	Links        []entity.ProjectLink `json:"links"`
	ImageURL     *string              `json:"imageUrl,omitempty"`
	IsFeatured   bool                 `json:"isFeatured"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

func ToProjectResponse(p *entity.Project) ProjectResponse {
	technologies := []string(p.Technologies)
	if technologies == nil {
		technologies = []string{}
	}
	links := []entity.ProjectLink(p.Links)
	if links == nil {
		links = []entity.ProjectLink{}
	}
	return ProjectResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Technologies: technologies,
		Links:        links,
		ImageURL:     p.ImageURL,
		IsFeatured:   p.IsFeatured,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
