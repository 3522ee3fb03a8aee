package service

import (
	"context"

	"anoa.com/portfoliocms/internal/entity"
	crudRepo "anoa.com/portfoliocms/internal/modules/crud/repository"
	crud "anoa.com/portfoliocms/internal/modules/crud/service"
	"anoa.com/portfoliocms/internal/modules/education/dto"
	"anoa.com/portfoliocms/pkg/apperror"
	"anoa.com/portfoliocms/pkg/validator"
	"github.com/google/uuid"
)

type EducationService = crud.Service[dto.EducationInput, dto.EducationResponse]

func NewEducationService(repo crudRepo.Repository[entity.Education]) EducationService {
	return crud.New(repo, crud.Schema[entity.Education, dto.EducationInput, dto.EducationResponse]{
		Resource: "education",
		Validate: validateEducation,
		Apply: func(e *entity.Education, in dto.EducationInput) {
			e.Institute = in.Institute
			e.Department = in.Department
			e.Degree = in.Degree
			e.CGPA = in.CGPA
			e.Scale = in.Scale
			e.StartDate = in.StartDate
			e.EndDate = in.EndDate
		},
		ToResponse: dto.ToEducationResponse,
	})
}

func validateEducation(_ context.Context, _ uuid.UUID, _ *entity.Education, in dto.EducationInput) error {
	if in.CGPA > in.Scale {
		return apperror.Validation("validation failed", "cgpa must not exceed scale")
	}
	return validator.CheckDateRange(in.StartDate, in.EndDate)
}
