package dto

import (
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"github.com/google/uuid"
)

type ProblemSolvingInput struct {
	Platform    string  `json:"platform" binding:"required,max=50"`
	Handle      string  `json:"handle" binding:"required,max=100"`
	ProfileURL  string  `json:"profileUrl" binding:"required,url"`
	SolvedCount int     `json:"solvedCount" binding:"gte=0"`
	Rating      *int    `json:"rating" binding:"omitempty,gte=0"`
	Rank        *string `json:"rank" binding:"omitempty,max=50"`
}

func (in ProblemSolvingInput) Fields() ProblemSolvingInput { return in }

type CreateProblemSolvingRequest struct {
	ProblemSolvingInput
}

type UpdateProblemSolvingRequest struct {
	ProblemSolvingInput
}

type ProblemSolvingResponse struct {
	ID          uuid.UUID `json:"id"`
	Platform    string    `json:"platform"`
	Handle      string    `json:"handle"`
	ProfileURL  string    `json:"profileUrl"`
	SolvedCount int       `json:"solvedCount"`
	Rating      *int      `json:"rating,omitempty"`
	Rank        *string   `json:"rank,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ToProblemSolvingResponse(p *entity.ProblemSolving) ProblemSolvingResponse {
	return ProblemSolvingResponse{
		ID:          p.ID,
		Platform:    p.Platform,
		Handle:      p.Handle,
		ProfileURL:  p.ProfileURL,
		SolvedCount: p.SolvedCount,
		Rating:      p.Rating,
		Rank:        p.Rank,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
