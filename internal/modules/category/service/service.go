package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"anoa.com/portfoliocms/internal/entity"
	"anoa.com/portfoliocms/internal/modules/category/dto"
	"anoa.com/portfoliocms/internal/modules/category/repository"
	crud "anoa.com/portfoliocms/internal/modules/crud/service"
	"anoa.com/portfoliocms/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryService = crud.Service[dto.CategoryInput, dto.CategoryResponse]

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return crud.New(repo, crud.Schema[entity.BlogPostCategory, dto.CategoryInput, dto.CategoryResponse]{
		Resource: "blog category",
		Validate: func(ctx context.Context, owner uuid.UUID, current *entity.BlogPostCategory, in dto.CategoryInput) error {
			existing, err := repo.FindByName(ctx, owner, in.Name)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil
				}
				return fmt.Errorf("failed to check category name: %w", err)
			}
			if current == nil || existing.ID != current.ID {
				return apperror.Conflict(fmt.Sprintf("category with name %s already exists", in.Name))
			}
			return nil
		},
		Apply: func(c *entity.BlogPostCategory, in dto.CategoryInput) {
			c.Name = strings.TrimSpace(in.Name)
			c.Description = in.Description
		},
		ToResponse: dto.ToCategoryResponse,
	})
}
