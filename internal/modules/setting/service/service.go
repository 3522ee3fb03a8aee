package setting

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	settingDto "anoa.com/portfoliocms/internal/modules/setting/dto"
	"anoa.com/portfoliocms/internal/modules/setting/repository"
	"gorm.io/datatypes"
)

// OriginReloader receives the stored CORS origins after every change.
type OriginReloader interface {
	Reload(extra []string)
	Origins() []string
}

type SettingService interface {
	GetSystem(ctx context.Context) (*settingDto.SystemSettingResponse, error)
	UpdateSystem(ctx context.Context, req settingDto.UpdateSystemSettingRequest) (*settingDto.SystemSettingResponse, error)
	GetCors(ctx context.Context) (*settingDto.CorsSettingResponse, error)
	UpdateCors(ctx context.Context, req settingDto.UpdateCorsSettingRequest) (*settingDto.CorsSettingResponse, error)
	ReloadCors(ctx context.Context) error
	ContactEmailEnabled(ctx context.Context) bool
}

type settingService struct {
	repo    repository.SettingRepository
	origins OriginReloader
	logger  *slog.Logger
}

func NewSettingService(repo repository.SettingRepository, origins OriginReloader, logger *slog.Logger) SettingService {
	return &settingService{
		repo:    repo,
		origins: origins,
		logger:  logger,
	}
}

func (s *settingService) GetSystem(ctx context.Context) (*settingDto.SystemSettingResponse, error) {
	setting, err := s.repo.GetSystem(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get system setting: %w", err)
	}
	res := settingDto.ToSystemSettingResponse(setting)
	return &res, nil
}

func (s *settingService) UpdateSystem(ctx context.Context, req settingDto.UpdateSystemSettingRequest) (*settingDto.SystemSettingResponse, error) {
	setting, err := s.repo.GetSystem(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get system setting: %w", err)
	}

	setting.SiteTitle = strings.TrimSpace(req.SiteTitle)
	setting.SiteDescription = strings.TrimSpace(req.SiteDescription)
	setting.ContactEmailEnabled = *req.ContactEmailEnabled
	setting.MaintenanceMessage = req.MaintenanceMessage
	if setting.MaintenanceMessage != nil && strings.TrimSpace(*setting.MaintenanceMessage) == "" {
		setting.MaintenanceMessage = nil
	}

	if err := s.repo.SaveSystem(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to save system setting: %w", err)
	}

	s.logger.Info("system setting updated", "contact_email_enabled", setting.ContactEmailEnabled)
	res := settingDto.ToSystemSettingResponse(setting)
	return &res, nil
}

func (s *settingService) GetCors(ctx context.Context) (*settingDto.CorsSettingResponse, error) {
	setting, err := s.repo.GetCors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cors setting: %w", err)
	}
	return &settingDto.CorsSettingResponse{
		AllowedOrigins:   nonNil(setting.AllowedOrigins),
		EffectiveOrigins: s.origins.Origins(),
		UpdatedAt:        setting.UpdatedAt,
	}, nil
}

func (s *settingService) UpdateCors(ctx context.Context, req settingDto.UpdateCorsSettingRequest) (*settingDto.CorsSettingResponse, error) {
	setting, err := s.repo.GetCors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cors setting: %w", err)
	}

	seen := make(map[string]bool, len(req.AllowedOrigins))
	origins := make([]string, 0, len(req.AllowedOrigins))
	for _, origin := range req.AllowedOrigins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin == "" || seen[strings.ToLower(origin)] {
			continue
		}
		seen[strings.ToLower(origin)] = true
		origins = append(origins, origin)
	}
	setting.AllowedOrigins = datatypes.JSONSlice[string](origins)

	if err := s.repo.SaveCors(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to save cors setting: %w", err)
	}

	s.origins.Reload(origins)
	s.logger.Info("cors origins reloaded", "origins", len(origins))

	return &settingDto.CorsSettingResponse{
		AllowedOrigins:   origins,
		EffectiveOrigins: s.origins.Origins(),
		UpdatedAt:        setting.UpdatedAt,
	}, nil
}

// ReloadCors loads the stored origins into the live policy; called at startup.
func (s *settingService) ReloadCors(ctx context.Context) error {
	setting, err := s.repo.GetCors(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cors setting: %w", err)
	}
	s.origins.Reload(setting.AllowedOrigins)
	return nil
}

// ContactEmailEnabled defaults to true when the setting cannot be read.
func (s *settingService) ContactEmailEnabled(ctx context.Context) bool {
	setting, err := s.repo.GetSystem(ctx)
	if err != nil {
		s.logger.Warn("failed to read system setting", "error", err)
		return true
	}
	return setting.ContactEmailEnabled
}

func nonNil(origins []string) []string {
	if origins == nil {
		return []string{}
	}
	return origins
}
