package service

import (
	"anoa.com/portfoliocms/internal/entity"
	crudRepo "anoa.com/portfoliocms/internal/modules/crud/repository"
	crud "anoa.com/portfoliocms/internal/modules/crud/service"
	"anoa.com/portfoliocms/internal/modules/review/dto"
)

type ReviewService = crud.Service[dto.ReviewInput, dto.ReviewResponse]

func NewReviewService(repo crudRepo.Repository[entity.Review]) ReviewService {
	return crud.New(repo, crud.Schema[entity.Review, dto.ReviewInput, dto.ReviewResponse]{
		Resource: "review",
		Apply: func(r *entity.Review, in dto.ReviewInput) {
			r.ReviewerName = in.ReviewerName
			r.ReviewerTitle = in.ReviewerTitle
			r.Company = in.Company
			r.Rating = in.Rating
			r.Comment = in.Comment
			r.AvatarURL = in.AvatarURL
		},
		ToResponse: dto.ToReviewResponse,
	})
}
