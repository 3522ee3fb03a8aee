package handler

import (
	attachment "anoa.com/portfoliocms/internal/modules/attachment/service"
	"anoa.com/portfoliocms/pkg/apperror"
	commonDto "anoa.com/portfoliocms/pkg/dto"
	"anoa.com/portfoliocms/pkg/response"
	"github.com/gin-gonic/gin"
)

type AttachmentHandler struct {
	service attachment.AttachmentService
}

func NewAttachmentHandler(service attachment.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{service: service}
}

func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, apperror.Validation("file is required"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, apperror.Validation("failed to read file"))
		return
	}
	defer f.Close()

	res, err := h.service.Upload(c.Request.Context(), userID, commonDto.UploadFile{
		Reader:   f,
		FileName: fileHeader.Filename,
		Size:     fileHeader.Size,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "file uploaded successfully", res)
}

func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "files retrieved successfully", res)
}

func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
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

	response.OK(c, "file deleted successfully", nil)
}
