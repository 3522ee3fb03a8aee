package service

import (
	"context"
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"anoa.com/portfoliocms/internal/modules/certification/dto"
	crudRepo "anoa.com/portfoliocms/internal/modules/crud/repository"
	crud "anoa.com/portfoliocms/internal/modules/crud/service"
	"anoa.com/portfoliocms/pkg/apperror"
	"github.com/google/uuid"
)

type CertificationService = crud.Service[dto.CertificationInput, dto.CertificationResponse]

func NewCertificationService(repo crudRepo.Repository[entity.Certification]) CertificationService {
	return crud.New(repo, crud.Schema[entity.Certification, dto.CertificationInput, dto.CertificationResponse]{
		Resource: "certification",
		Validate: func(_ context.Context, _ uuid.UUID, _ *entity.Certification, in dto.CertificationInput) error {
			// one day of slack for timezone differences
			if in.DateObtained.After(time.Now().Add(24 * time.Hour)) {
				return apperror.Validation("validation failed", "dateObtained must not be in the future")
			}
			return nil
		},
		Apply: func(c *entity.Certification, in dto.CertificationInput) {
			c.Name = in.Name
			c.Issuer = in.Issuer
			c.DateObtained = in.DateObtained
			c.CredentialID = in.CredentialID
			c.URL = in.URL
		},
		ToResponse: dto.ToCertificationResponse,
	})
}
