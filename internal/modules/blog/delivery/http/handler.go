package handler

import (
	blogDto "anoa.com/portfoliocms/internal/modules/blog/dto"
	blog "anoa.com/portfoliocms/internal/modules/blog/service"
	commonDto "anoa.com/portfoliocms/pkg/dto"
	"anoa.com/portfoliocms/pkg/response"
	"anoa.com/portfoliocms/pkg/validator"
	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogService blog.BlogService
}

func NewBlogHandler(blogService blog.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

// Register mounts the owner routes on an authenticated group.
func (h *BlogHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.ListPosts)
	rg.GET("/:id", h.GetPost)
	rg.POST("", h.CreatePost)
	rg.PUT("/:id", h.UpdatePost)
	rg.DELETE("/:id", h.DeletePost)
	rg.POST("/:id/publish", h.PublishPost)
	rg.POST("/:id/unpublish", h.UnpublishPost)
}

func (h *BlogHandler) ListPosts(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var query blogDto.BlogPostQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, validator.BindingError(err))
		return
	}

	res, err := h.blogService.List(c.Request.Context(), userID, query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "blog posts retrieved successfully", res)
}

func (h *BlogHandler) GetPost(c *gin.Context) {
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

	res, err := h.blogService.Get(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "blog post retrieved successfully", res)
}

func (h *BlogHandler) CreatePost(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req blogDto.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, validator.BindingError(err))
		return
	}

	res, err := h.blogService.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "blog post created successfully", res)
}

func (h *BlogHandler) UpdatePost(c *gin.Context) {
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

	var req blogDto.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, validator.BindingError(err))
		return
	}

	res, err := h.blogService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "blog post updated successfully", res)
}

func (h *BlogHandler) DeletePost(c *gin.Context) {
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

	if err := h.blogService.Delete(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "blog post deleted successfully", nil)
}

func (h *BlogHandler) PublishPost(c *gin.Context) {
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

	res, err := h.blogService.Publish(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "blog post published successfully", res)
}

func (h *BlogHandler) UnpublishPost(c *gin.Context) {
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

	res, err := h.blogService.Unpublish(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "blog post unpublished successfully", res)
}

func (h *BlogHandler) ListPublicPosts(c *gin.Context) {
	var page commonDto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, validator.BindingError(err))
		return
	}

	res, err := h.blogService.ListPublished(c.Request.Context(), c.Param("username"), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "blog posts retrieved successfully", res)
}

func (h *BlogHandler) GetPublicPost(c *gin.Context) {
	res, err := h.blogService.GetPublished(c.Request.Context(), c.Param("username"), c.Param("slug"), c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "blog post retrieved successfully", res)
}

func (h *BlogHandler) SearchPosts(c *gin.Context) {
	var query blogDto.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, validator.BindingError(err))
		return
	}

	res, err := h.blogService.Search(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "search results retrieved successfully", res)
}
