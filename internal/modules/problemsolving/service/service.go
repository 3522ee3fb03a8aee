package service

import (
	"anoa.com/portfoliocms/internal/entity"
	crudRepo "anoa.com/portfoliocms/internal/modules/crud/repository"
	crud "anoa.com/portfoliocms/internal/modules/crud/service"
	"anoa.com/portfoliocms/internal/modules/problemsolving/dto"
)

type ProblemSolvingService = crud.Service[dto.ProblemSolvingInput, dto.ProblemSolvingResponse]

func NewProblemSolvingService(repo crudRepo.Repository[entity.ProblemSolving]) ProblemSolvingService {
	return crud.New(repo, crud.Schema[entity.ProblemSolving, dto.ProblemSolvingInput, dto.ProblemSolvingResponse]{
		Resource: "problem solving profile",
		Apply: func(p *entity.ProblemSolving, in dto.ProblemSolvingInput) {
			p.Platform = in.Platform
			p.Handle = in.Handle
			p.ProfileURL = in.ProfileURL
			p.SolvedCount = in.SolvedCount
			p.Rating = in.Rating
			p.Rank = in.Rank
		},
		ToResponse: dto.ToProblemSolvingResponse,
	})
}
