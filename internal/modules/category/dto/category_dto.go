package dto

import (
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"github.com/google/uuid"
)

type CategoryInput struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

func (in CategoryInput) Fields() CategoryInput { return in }

type CreateCategoryRequest struct {
	CategoryInput
}

type UpdateCategoryRequest struct {
	CategoryInput
}

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ToCategoryResponse(c *entity.BlogPostCategory) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
