package service

import (
	"context"

	"anoa.com/portfoliocms/internal/entity"
	crudRepo "anoa.com/portfoliocms/internal/modules/crud/repository"
	crud "anoa.com/portfoliocms/internal/modules/crud/service"
	"anoa.com/portfoliocms/internal/modules/experience/dto"
	"anoa.com/portfoliocms/pkg/validator"
	"github.com/google/uuid"
)

type WorkExperienceService = crud.Service[dto.WorkExperienceInput, dto.WorkExperienceResponse]

func NewWorkExperienceService(repo crudRepo.Repository[entity.WorkExperience]) WorkExperienceService {
	return crud.New(repo, crud.Schema[entity.WorkExperience, dto.WorkExperienceInput, dto.WorkExperienceResponse]{
		Resource: "work experience",
		Validate: func(_ context.Context, _ uuid.UUID, _ *entity.WorkExperience, in dto.WorkExperienceInput) error {
			return validator.CheckDateRange(in.StartDate, in.EndDate)
		},
		Apply: func(w *entity.WorkExperience, in dto.WorkExperienceInput) {
			w.Company = in.Company
			w.Role = in.Role
			w.Location = in.Location
			w.EmploymentType = in.EmploymentType
			w.StartDate = in.StartDate
			w.EndDate = in.EndDate
			w.Descriptions = append([]string{}, in.Descriptions...)
		},
		ToResponse: dto.ToWorkExperienceResponse,
	})
}
