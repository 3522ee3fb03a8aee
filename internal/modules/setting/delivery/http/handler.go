package handler

import (
	settingDto "anoa.com/portfoliocms/internal/modules/setting/dto"
	setting "anoa.com/portfoliocms/internal/modules/setting/service"
	"anoa.com/portfoliocms/pkg/response"
	"anoa.com/portfoliocms/pkg/validator"
	"github.com/gin-gonic/gin"
)

type SettingHandler struct {
	settingService setting.SettingService
}

func NewSettingHandler(settingService setting.SettingService) *SettingHandler {
	return &SettingHandler{
		settingService: settingService,
	}
}

// RegisterAdmin mounts the settings routes on an admin-only group.
func (h *SettingHandler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("/system", h.GetSystemSetting)
	rg.PUT("/system", h.UpdateSystemSetting)
	rg.GET("/cors", h.GetCorsSetting)
	rg.PUT("/cors", h.UpdateCorsSetting)
}

// GetPublicSettings serves the system setting to anonymous visitors.
func (h *SettingHandler) GetPublicSettings(c *gin.Context) {
	h.GetSystemSetting(c)
}

func (h *SettingHandler) GetSystemSetting(c *gin.Context) {
	res, err := h.settingService.GetSystem(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "system setting retrieved successfully", res)
}

func (h *SettingHandler) UpdateSystemSetting(c *gin.Context) {
	var req settingDto.UpdateSystemSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, validator.BindingError(err))
		return
	}

	res, err := h.settingService.UpdateSystem(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "system setting updated successfully", res)
}

func (h *SettingHandler) GetCorsSetting(c *gin.Context) {
	res, err := h.settingService.GetCors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "cors setting retrieved successfully", res)
}

func (h *SettingHandler) UpdateCorsSetting(c *gin.Context) {
	var req settingDto.UpdateCorsSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, validator.BindingError(err))
		return
	}

	res, err := h.settingService.UpdateCors(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "cors setting updated successfully", res)
}
