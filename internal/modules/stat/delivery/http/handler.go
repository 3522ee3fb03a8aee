package handler

import (
	statService "anoa.com/portfoliocms/internal/modules/stat/service"
	"anoa.com/portfoliocms/pkg/response"
	"github.com/gin-gonic/gin"
)

type StatHandler struct {
	statService statService.StatService
}

func NewStatHandler(statService statService.StatService) *StatHandler {
	return &StatHandler{
		statService: statService,
	}
}

func (h *StatHandler) GetDashboard(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.statService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "dashboard retrieved successfully", res)
}

func (h *StatHandler) GetSiteStats(c *gin.Context) {
	res, err := h.statService.GetSiteStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "site stats retrieved successfully", res)
}
