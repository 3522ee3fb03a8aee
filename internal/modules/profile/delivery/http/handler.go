package handler

import (
	"context"

	profileDto "anoa.com/portfoliocms/internal/modules/profile/dto"
	profile "anoa.com/portfoliocms/internal/modules/profile/service"
	"anoa.com/portfoliocms/pkg/apperror"
	commonDto "anoa.com/portfoliocms/pkg/dto"
	"anoa.com/portfoliocms/pkg/response"
	"anoa.com/portfoliocms/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	profileService profile.ProfileService
}

func NewProfileHandler(profileService profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

func (h *ProfileHandler) GetCurrentProfile(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.profileService.GetCurrentProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "profile retrieved successfully", res)
}

func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input profileDto.UpsertProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, validator.BindingError(err))
		return
	}

	res, err := h.profileService.UpsertProfile(c.Request.Context(), userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "profile saved successfully", res)
}

func (h *ProfileHandler) UploadImage(c *gin.Context) {
	h.upload(c, "image", h.profileService.UploadImage)
}

func (h *ProfileHandler) UploadResume(c *gin.Context) {
	h.upload(c, "resume", h.profileService.UploadResume)
}

type uploadFunc func(ctx context.Context, userID uuid.UUID, file commonDto.UploadFile) (*profileDto.ProfileResponse, error)

func (h *ProfileHandler) upload(c *gin.Context, field string, fn uploadFunc) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	fileHeader, err := c.FormFile(field)
	if err != nil {
		response.Error(c, apperror.Validation(field+" file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, apperror.Validation("failed to read "+field))
		return
	}
	defer file.Close()

	res, err := fn(c.Request.Context(), userID, commonDto.UploadFile{
		Reader:   file,
		FileName: fileHeader.Filename,
		Size:     fileHeader.Size,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, field+" uploaded successfully", res)
}
