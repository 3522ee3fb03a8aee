package service

import (
	"context"

	"anoa.com/portfoliocms/internal/entity"
	"anoa.com/portfoliocms/internal/modules/activity/dto"
	crudRepo "anoa.com/portfoliocms/internal/modules/crud/repository"
	crud "anoa.com/portfoliocms/internal/modules/crud/service"
	"anoa.com/portfoliocms/pkg/validator"
	"github.com/google/uuid"
)

type ActivityService = crud.Service[dto.ActivityInput, dto.ActivityResponse]

func NewActivityService(repo crudRepo.Repository[entity.ExtraCurricularActivity]) ActivityService {
	return crud.New(repo, crud.Schema[entity.ExtraCurricularActivity, dto.ActivityInput, dto.ActivityResponse]{
		Resource: "activity",
		Validate: func(_ context.Context, _ uuid.UUID, _ *entity.ExtraCurricularActivity, in dto.ActivityInput) error {
			return validator.CheckDateRange(in.StartDate, in.EndDate)
		},
		Apply: func(a *entity.ExtraCurricularActivity, in dto.ActivityInput) {
			a.Title = in.Title
			a.Organization = in.Organization
			a.Role = in.Role
			a.Description = in.Description
			a.StartDate = in.StartDate
			a.EndDate = in.EndDate
		},
		ToResponse: dto.ToActivityResponse,
	})
}
