package service

import (
	"strings"

	"anoa.com/portfoliocms/internal/entity"
	crudRepo "anoa.com/portfoliocms/internal/modules/crud/repository"
	crud "anoa.com/portfoliocms/internal/modules/crud/service"
	"anoa.com/portfoliocms/internal/modules/sociallink/dto"
)

type SocialLinkService = crud.Service[dto.SocialLinkInput, dto.SocialLinkResponse]

func NewSocialLinkService(repo crudRepo.Repository[entity.SocialLink]) SocialLinkService {
	return crud.New(repo, crud.Schema[entity.SocialLink, dto.SocialLinkInput, dto.SocialLinkResponse]{
		Resource: "social link",
		Apply: func(s *entity.SocialLink, in dto.SocialLinkInput) {
			s.Platform = strings.TrimSpace(in.Platform)
			s.URL = in.URL
			s.DisplayOrder = in.DisplayOrder
		},
		ToResponse: dto.ToSocialLinkResponse,
	})
}
