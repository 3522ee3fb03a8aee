package dto

import (
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"github.com/google/uuid"
)

type CertificationInput struct {
	Name         string    `json:"name" binding:"required,max=200"`
	Issuer       string    `json:"issuer" binding:"required,max=200"`
	DateObtained time.Time `json:"dateObtained" binding:"required"`
	CredentialID *string   `json:"credentialId" binding:"omitempty,max=200"`
	URL          *string   `json:"url" binding:"omitempty,url"`
}

func (in CertificationInput) Fields() CertificationInput { return in }

type CreateCertificationRequest struct {
	CertificationInput
}

type UpdateCertificationRequest struct {
	CertificationInput
}

type CertificationResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Issuer       string    `json:"issuer"`
	DateObtained time.Time `json:"dateObtained"`
	CredentialID *string   `json:"credentialId,omitempty"`
	URL          *string   `json:"url,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func ToCertificationResponse(c *entity.Certification) CertificationResponse {
	return CertificationResponse{
		ID:           c.ID,
		Name:         c.Name,
		Issuer:       c.Issuer,
		DateObtained: c.DateObtained,
		CredentialID: c.CredentialID,
		URL:          c.URL,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
