package handler

import (
	crud "anoa.com/portfoliocms/internal/modules/crud/delivery/http"
	"anoa.com/portfoliocms/internal/modules/review/dto"
	"anoa.com/portfoliocms/internal/modules/review/service"
)

type ReviewHandler = crud.Handler[dto.ReviewInput, dto.ReviewResponse, dto.CreateReviewRequest, dto.UpdateReviewRequest]

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return crud.NewHandler[dto.ReviewInput, dto.ReviewResponse, dto.CreateReviewRequest, dto.UpdateReviewRequest](svc, "review", "reviews")
}
