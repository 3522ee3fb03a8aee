package handler

import (
	crud "anoa.com/portfoliocms/internal/modules/crud/delivery/http"
	"anoa.com/portfoliocms/internal/modules/experience/dto"
	"anoa.com/portfoliocms/internal/modules/experience/service"
)

type WorkExperienceHandler = crud.Handler[dto.WorkExperienceInput, dto.WorkExperienceResponse, dto.CreateWorkExperienceRequest, dto.UpdateWorkExperienceRequest]

func NewWorkExperienceHandler(svc service.WorkExperienceService) *WorkExperienceHandler {
	return crud.NewHandler[dto.WorkExperienceInput, dto.WorkExperienceResponse, dto.CreateWorkExperienceRequest, dto.UpdateWorkExperienceRequest](svc, "work experience", "work experiences")
}
