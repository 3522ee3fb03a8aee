package handler

import (
	crud "anoa.com/portfoliocms/internal/modules/crud/delivery/http"
	"anoa.com/portfoliocms/internal/modules/skill/dto"
	"anoa.com/portfoliocms/internal/modules/skill/service"
)

type SkillHandler = crud.Handler[dto.SkillInput, dto.SkillResponse, dto.CreateSkillRequest, dto.UpdateSkillRequest]

func NewSkillHandler(svc service.SkillService) *SkillHandler {
	return crud.NewHandler[dto.SkillInput, dto.SkillResponse, dto.CreateSkillRequest, dto.UpdateSkillRequest](svc, "skill", "skills")
}
