package handler

import (
	crud "anoa.com/portfoliocms/internal/modules/crud/delivery/http"
	"anoa.com/portfoliocms/internal/modules/problemsolving/dto"
	"anoa.com/portfoliocms/internal/modules/problemsolving/service"
)

type ProblemSolvingHandler = crud.Handler[dto.ProblemSolvingInput, dto.ProblemSolvingResponse, dto.CreateProblemSolvingRequest, dto.UpdateProblemSolvingRequest]

func NewProblemSolvingHandler(svc service.ProblemSolvingService) *ProblemSolvingHandler {
	return crud.NewHandler[dto.ProblemSolvingInput, dto.ProblemSolvingResponse, dto.CreateProblemSolvingRequest, dto.UpdateProblemSolvingRequest](svc, "problem solving profile", "problem solving profiles")
}
