package handler

import (
	crud "anoa.com/portfoliocms/internal/modules/crud/delivery/http"
	"anoa.com/portfoliocms/internal/modules/sociallink/dto"
	"anoa.com/portfoliocms/internal/modules/sociallink/service"
)

type SocialLinkHandler = crud.Handler[dto.SocialLinkInput, dto.SocialLinkResponse, dto.CreateSocialLinkRequest, dto.UpdateSocialLinkRequest]

func NewSocialLinkHandler(svc service.SocialLinkService) *SocialLinkHandler {
	return crud.NewHandler[dto.SocialLinkInput, dto.SocialLinkResponse, dto.CreateSocialLinkRequest, dto.UpdateSocialLinkRequest](svc, "social link", "social links")
}
