package handler

import (
	"anoa.com/portfoliocms/internal/modules/admin/dto"
	adminService "anoa.com/portfoliocms/internal/modules/admin/service"
	"anoa.com/portfoliocms/pkg/response"
	"anoa.com/portfoliocms/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService adminService.AdminService
}

func NewAdminHandler(adminService adminService.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// RegisterAdmin mounts the user management routes on an admin-only group.
func (h *AdminHandler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.GetAllUsers)
	rg.GET("/:id", h.GetUser)
	rg.PUT("/:id/role", h.UpdateUserRole)
	rg.DELETE("/:id", h.DeleteUser)
}

func (h *AdminHandler) GetAllUsers(c *gin.Context) {
	var query dto.UserQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, validator.BindingError(err))
		return
	}

	res, err := h.adminService.ListUsers(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "users retrieved successfully", res)
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.adminService.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "user retrieved successfully", res)
}

func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	actor, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.UpdateUserRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, validator.BindingError(err))
		return
	}

	res, err := h.adminService.UpdateUserRole(c.Request.Context(), actor, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "user role updated successfully", res)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actor, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), actor, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "user deleted successfully", nil)
}
