package handler

import (
	"anoa.com/portfoliocms/internal/modules/activity/dto"
	"anoa.com/portfoliocms/internal/modules/activity/service"
	crud "anoa.com/portfoliocms/internal/modules/crud/delivery/http"
)

type ActivityHandler = crud.Handler[dto.ActivityInput, dto.ActivityResponse, dto.CreateActivityRequest, dto.UpdateActivityRequest]

func NewActivityHandler(svc service.ActivityService) *ActivityHandler {
	return crud.NewHandler[dto.ActivityInput, dto.ActivityResponse, dto.CreateActivityRequest, dto.UpdateActivityRequest](svc, "activity", "activities")
}
