package handler

import (
	portfolio "anoa.com/portfoliocms/internal/modules/portfolio/service"
	"anoa.com/portfoliocms/pkg/response"
	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioService portfolio.PortfolioService
}

func NewPortfolioHandler(portfolioService portfolio.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	res, err := h.portfolioService.GetPortfolio(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "portfolio retrieved successfully", res)
}
