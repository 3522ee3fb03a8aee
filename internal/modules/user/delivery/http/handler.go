package handler

import (
	"anoa.com/portfoliocms/internal/modules/user/dto"
	"anoa.com/portfoliocms/internal/modules/user/service"
	"anoa.com/portfoliocms/pkg/response"
	"anoa.com/portfoliocms/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, validator.BindingError(err))
		return
	}

	res, err := h.service.Register(c.Request.Context(), input, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "registration successful", res)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, validator.BindingError(err))
		return
	}

	res, err := h.service.Login(c.Request.Context(), input, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "login successful", res)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var input dto.RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, validator.BindingError(err))
		return
	}

	res, err := h.service.Refresh(c.Request.Context(), input.RefreshToken, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "token refreshed", res)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var input dto.RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, validator.BindingError(err))
		return
	}

	if err := h.service.Logout(c.Request.Context(), input.RefreshToken); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "logged out", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "user retrieved successfully", res)
}
