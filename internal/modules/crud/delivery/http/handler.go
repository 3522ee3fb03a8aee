package handler

import (
	"fmt"

	"anoa.com/portfoliocms/internal/modules/crud/service"
	"anoa.com/portfoliocms/pkg/response"
	"anoa.com/portfoliocms/pkg/validator"
	"github.com/gin-gonic/gin"
)

// Request is a create or update body that exposes its shared input fields.
type Request[In any] interface {
	Fields() In
}

// Handler serves list/get/create/update/delete for one owner-scoped
// resource. C and U are the create and update request bodies.
type Handler[In, Out any, C Request[In], U Request[In]] struct {
	service  service.Service[In, Out]
	resource string
	plural   string
}

func NewHandler[In, Out any, C Request[In], U Request[In]](svc service.Service[In, Out], resource, plural string) *Handler[In, Out, C, U] {
	return &Handler[In, Out, C, U]{service: svc, resource: resource, plural: plural}
}

// Register mounts the five routes on rg. rg must already require auth.
func (h *Handler[In, Out, C, U]) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *Handler[In, Out, C, U]) List(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, fmt.Sprintf("%s retrieved successfully", h.plural), items)
}

func (h *Handler[In, Out, C, U]) Get(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, fmt.Sprintf("%s retrieved successfully", h.resource), item)
}

func (h *Handler[In, Out, C, U]) Create(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, validator.BindingError(err))
		return
	}

	item, err := h.service.Create(c.Request.Context(), userID, req.Fields())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, fmt.Sprintf("%s created successfully", h.resource), item)
}

func (h *Handler[In, Out, C, U]) Update(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, validator.BindingError(err))
		return
	}

	item, err := h.service.Update(c.Request.Context(), userID, id, req.Fields())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, fmt.Sprintf("%s updated successfully", h.resource), item)
}

func (h *Handler[In, Out, C, U]) Delete(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, fmt.Sprintf("%s deleted successfully", h.resource), nil)
}
