package handler

import (
	crud "anoa.com/portfoliocms/internal/modules/crud/delivery/http"
	"anoa.com/portfoliocms/internal/modules/education/dto"
	"anoa.com/portfoliocms/internal/modules/education/service"
)

type EducationHandler = crud.Handler[dto.EducationInput, dto.EducationResponse, dto.CreateEducationRequest, dto.UpdateEducationRequest]

func NewEducationHandler(svc service.EducationService) *EducationHandler {
	return crud.NewHandler[dto.EducationInput, dto.EducationResponse, dto.CreateEducationRequest, dto.UpdateEducationRequest](svc, "education", "educations")
}
