package service

import (
	"anoa.com/portfoliocms/internal/entity"
	crudRepo "anoa.com/portfoliocms/internal/modules/crud/repository"
	crud "anoa.com/portfoliocms/internal/modules/crud/service"
	"anoa.com/portfoliocms/internal/modules/skill/dto"
)

type SkillService = crud.Service[dto.SkillInput, dto.SkillResponse]

func NewSkillService(repo crudRepo.Repository[entity.Skill]) SkillService {
	return crud.New(repo, crud.Schema[entity.Skill, dto.SkillInput, dto.SkillResponse]{
		Resource: "skill",
		Apply: func(s *entity.Skill, in dto.SkillInput) {
			s.Name = in.Name
			s.Category = in.Category
			s.Proficiency = in.Proficiency
		},
		ToResponse: dto.ToSkillResponse,
	})
}
