package category

import (
	"context"
	"testing"

	"anoa.com/portfoliocms/internal/entity"
	"anoa.com/portfoliocms/internal/modules/category/dto"
	"anoa.com/portfoliocms/internal/modules/category/repository"
	"anoa.com/portfoliocms/internal/testutil"
	"anoa.com/portfoliocms/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryNamesAreUniquePerOwner(t *testing.T) {
	db := testutil.NewDB(t, &entity.BlogPostCategory{})
	svc := NewCategoryService(repository.NewCategoryRepository(db))
	ctx := context.Background()
	owner, other := uuid.New(), uuid.New()

	golang, err := svc.Create(ctx, owner, dto.CategoryInput{Name: "Golang"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, owner, dto.CategoryInput{Name: "golang "})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	_, err = svc.Create(ctx, other, dto.CategoryInput{Name: "Golang"})
	assert.NoError(t, err)

	desc := "posts about Go"
	updated, err := svc.Update(ctx, owner, golang.ID, dto.CategoryInput{Name: "Golang", Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "posts about Go", *updated.Description)

	devops, err := svc.Create(ctx, owner, dto.CategoryInput{Name: "DevOps"})
	require.NoError(t, err)
	_, err = svc.Update(ctx, owner, devops.ID, dto.CategoryInput{Name: "GOLANG"})
	assert.ErrorIs(t, err, apperror.ErrConflict)
}
