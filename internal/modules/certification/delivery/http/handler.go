package handler

import (
	"anoa.com/portfoliocms/internal/modules/certification/dto"
	"anoa.com/portfoliocms/internal/modules/certification/service"
	crud "anoa.com/portfoliocms/internal/modules/crud/delivery/http"
)

type CertificationHandler = crud.Handler[dto.CertificationInput, dto.CertificationResponse, dto.CreateCertificationRequest, dto.UpdateCertificationRequest]

func NewCertificationHandler(svc service.CertificationService) *CertificationHandler {
	return crud.NewHandler[dto.CertificationInput, dto.CertificationResponse, dto.CreateCertificationRequest, dto.UpdateCertificationRequest](svc, "certification", "certifications")
}
