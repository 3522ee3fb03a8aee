package handler

import (
	"anoa.com/portfoliocms/internal/modules/category/dto"
	category "anoa.com/portfoliocms/internal/modules/category/service"
	crud "anoa.com/portfoliocms/internal/modules/crud/delivery/http"
)

type CategoryHandler = crud.Handler[dto.CategoryInput, dto.CategoryResponse, dto.CreateCategoryRequest, dto.UpdateCategoryRequest]

func NewCategoryHandler(service category.CategoryService) *CategoryHandler {
	return crud.NewHandler[dto.CategoryInput, dto.CategoryResponse, dto.CreateCategoryRequest, dto.UpdateCategoryRequest](service, "blog category", "blog categories")
}
