package dto

import (
	"time"

	"anoa.com/portfoliocms/internal/entity"
)

type UpdateSystemSettingRequest struct {
	SiteTitle           string  `json:"siteTitle" binding:"required,max=200"`
	SiteDescription     string  `json:"siteDescription" binding:"max=2000"`
	ContactEmailEnabled *bool   `json:"contactEmailEnabled" binding:"required"`
	MaintenanceMessage  *string `json:"maintenanceMessage" binding:"omitempty,max=2000"`
}

type UpdateCorsSettingRequest struct {
	AllowedOrigins []string `json:"allowedOrigins" binding:"max=50,dive,url"`
}

type SystemSettingResponse struct {
	SiteTitle           string    `json:"siteTitle"`
	SiteDescription     string    `json:"siteDescription"`
	ContactEmailEnabled bool      `json:"contactEmailEnabled"`
	MaintenanceMessage  *string   `json:"maintenanceMessage,omitempty"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type CorsSettingResponse struct {
	AllowedOrigins   []string  `json:"allowedOrigins"`
	EffectiveOrigins []string  `json:"effectiveOrigins"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func ToSystemSettingResponse(s *entity.SystemSetting) SystemSettingResponse {
	return SystemSettingResponse{
		SiteTitle:           s.SiteTitle,
		SiteDescription:     s.SiteDescription,
		ContactEmailEnabled: s.ContactEmailEnabled,
		MaintenanceMessage:  s.MaintenanceMessage,
		UpdatedAt:           s.UpdatedAt,
	}
}
