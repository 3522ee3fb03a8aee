package handler

import (
	crud "anoa.com/portfoliocms/internal/modules/crud/delivery/http"
	"anoa.com/portfoliocms/internal/modules/project/dto"
	"anoa.com/portfoliocms/internal/modules/project/service"
)

type ProjectHandler = crud.Handler[dto.ProjectInput, dto.ProjectResponse, dto.CreateProjectRequest, dto.UpdateProjectRequest]

func NewProjectHandler(svc service.ProjectService) *ProjectHandler {
	return crud.NewHandler[dto.ProjectInput, dto.ProjectResponse, dto.CreateProjectRequest, dto.UpdateProjectRequest](svc, "project", "projects")
}
