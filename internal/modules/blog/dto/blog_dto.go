package dto

import (
	"time"

	"anoa.com/portfoliocms/internal/entity"
	commonDto "anoa.com/portfoliocms/pkg/dto"
	"github.com/google/uuid"
)

type BlogPostInput struct {
	Title         string     `json:"title" binding:"required,max=255"`
	Summary       *string    `json:"summary" binding:"omitempty,max=500"`
	Content       string     `json:"content" binding:"required,max=100000"`
	CoverImageURL *string    `json:"coverImageUrl" binding:"omitempty,url,max=2048"`
	CategoryID    *uuid.UUID `json:"categoryId"`
}

type CreateBlogPostRequest struct {
	BlogPostInput
	IsPublished bool `json:"isPublished"`
}

type UpdateBlogPostRequest struct {
	BlogPostInput
}

// BlogPostQuery is bound from the owner list query string.
type BlogPostQuery struct {
	commonDto.PageQuery
	Search      string `form:"search" binding:"omitempty,max=200"`
	IsPublished *bool  `form:"isPublished"`
	CategoryID  string `form:"categoryId" binding:"omitempty,uuid"`
}

type SearchQuery struct {
	commonDto.PageQuery
	Q string `form:"q" binding:"required,max=200"`
}

type CategorySummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BlogPostResponse struct {
	ID            uuid.UUID        `json:"id"`
	Title         string           `json:"title"`
	Slug          string           `json:"slug"`
	Summary       *string          `json:"summary,omitempty"`
	Content       string           `json:"content"`
	CoverImageURL *string          `json:"coverImageUrl,omitempty"`
	CategoryID    *uuid.UUID       `json:"categoryId,omitempty"`
	Category      *CategorySummary `json:"category,omitempty"`
	IsPublished   bool             `json:"isPublished"`
	PublishedAt   *time.Time       `json:"publishedAt,omitempty"`
	ViewCount     int64            `json:"viewCount"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

func ToBlogPostResponse(p *entity.BlogPost) BlogPostResponse {
	res := BlogPostResponse{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Summary:       p.Summary,
		Content:       p.Content,
		CoverImageURL: p.CoverImageURL,
		CategoryID:    p.CategoryID,
		IsPublished:   p.IsPublished,
		PublishedAt:   p.PublishedAt,
		ViewCount:     p.ViewCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.Category != nil && p.Category.ID != uuid.Nil {
		res.Category = &CategorySummary{ID: p.Category.ID, Name: p.Category.Name}
	}
	return res
}
