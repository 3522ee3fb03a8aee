package profile

import (
	"context"
	"strings"
	"testing"
	"time"

	"anoa.com/portfoliocms/internal/entity"
	profileDto "anoa.com/portfoliocms/internal/modules/profile/dto"
	"anoa.com/portfoliocms/internal/modules/profile/repository"
	"anoa.com/portfoliocms/internal/testutil"
	"anoa.com/portfoliocms/pkg/apperror"
	commonDto "anoa.com/portfoliocms/pkg/dto"
	"anoa.com/portfoliocms/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (ProfileService, *testutil.MemoryStorage, *entity.User) {
	t.Helper()
	db := testutil.NewDB(t, &entity.Role{}, &entity.User{}, &entity.UserProfile{})
	user := &entity.User{Username: "ada", Email: "ada@example.com", PasswordHash: "x"}
	require.NoError(t, db.Omit("Role", "Profile").Create(user).Error)

	files := testutil.NewMemoryStorage()
	return NewProfileService(repository.NewProfileRepository(db), files, nil, 1<<20, logger.Discard()), files, user
}

func TestUpsertProfile(t *testing.T) {
	svc, _, user := setup(t)
	ctx := context.Background()

	_, err := svc.GetCurrentProfile(ctx, user.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	bio := "  Backend engineer.  "
	res, err := svc.UpsertProfile(ctx, user.ID, profileDto.UpsertProfileInput{
		FullName: "Ada Lovelace",
		Status:   entity.StatusOpenToWork,
		Headline: "Go developer",
		Bio:      &bio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Backend engineer.", *res.Bio)

	res, err = svc.UpsertProfile(ctx, user.ID, profileDto.UpsertProfileInput{
		FullName: "Ada King",
		Status:   entity.StatusEmployed,
		IsPublic: true,
	})
	require.NoError(t, err)
	assert.Nil(t, res.Bio)

	got, err := svc.GetCurrentProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada King", got.FullName)
	assert.Equal(t, entity.StatusEmployed, got.Status)
	assert.Empty(t, got.Headline)

	future := time.Now().AddDate(1, 0, 0)
	_, err = svc.UpsertProfile(ctx, user.ID, profileDto.UpsertProfileInput{FullName: "x", Status: entity.StatusStudent, DateOfBirth: &future})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestPublicProfileRequiresIsPublic(t *testing.T) {
	svc, _, user := setup(t)
	ctx := context.Background()

	_, err := svc.UpsertProfile(ctx, user.ID, profileDto.UpsertProfileInput{FullName: "Ada", Status: entity.StatusStudent})
	require.NoError(t, err)

	_, err = svc.GetPublicProfile(ctx, "ada")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.UpsertProfile(ctx, user.ID, profileDto.UpsertProfileInput{FullName: "Ada", Status: entity.StatusStudent, IsPublic: true})
	require.NoError(t, err)

	res, err := svc.GetPublicProfile(ctx, "ADA")
	require.NoError(t, err)
	assert.Equal(t, user.ID, res.UserID)
}

func TestUploadImageReplacesPrevious(t *testing.T) {
	svc, files, user := setup(t)
	ctx := context.Background()
	upload := func(name string) commonDto.UploadFile {
		return commonDto.UploadFile{Reader: strings.NewReader("img"), FileName: name, Size: 3}
	}

	_, err := svc.UploadImage(ctx, user.ID, upload("me.png"))
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.UpsertProfile(ctx, user.ID, profileDto.UpsertProfileInput{FullName: "Ada", Status: entity.StatusStudent})
	require.NoError(t, err)

	first, err := svc.UploadImage(ctx, user.ID, upload("me.png"))
	require.NoError(t, err)
	second, err := svc.UploadImage(ctx, user.ID, upload("me2.png"))
	require.NoError(t, err)

	assert.False(t, files.Has(*first.ImageURL))
	assert.True(t, files.Has(*second.ImageURL))

	_, err = svc.UploadResume(ctx, user.ID, upload("cv.png"))
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	res, err := svc.UploadResume(ctx, user.ID, upload("cv.pdf"))
	require.NoError(t, err)
	require.NotNil(t, res.ResumeURL)
	assert.Equal(t, *second.ImageURL, *res.ImageURL)
}

type visibilityRecorder struct {
	synced []uuid.UUID
}

func (r *visibilityRecorder) SyncOwnerIndex(_ context.Context, owner uuid.UUID) error {
	r.synced = append(r.synced, owner)
	return nil
}

func TestUpsertProfileNotifiesVisibilityChanges(t *testing.T) {
	db := testutil.NewDB(t, &entity.Role{}, &entity.User{}, &entity.UserProfile{})
	user := &entity.User{Username: "ada", Email: "ada@example.com", PasswordHash: "x"}
	require.NoError(t, db.Omit("Role", "Profile").Create(user).Error)

	recorder := &visibilityRecorder{}
	svc := NewProfileService(repository.NewProfileRepository(db), testutil.NewMemoryStorage(), recorder, 1<<20, logger.Discard())
	ctx := context.Background()

	input := profileDto.UpsertProfileInput{FullName: "Ada", Status: entity.StatusEmployed}
	_, err := svc.UpsertProfile(ctx, user.ID, input)
	require.NoError(t, err)
	assert.Empty(t, recorder.synced)

	input.IsPublic = true
	_, err = svc.UpsertProfile(ctx, user.ID, input)
	require.NoError(t, err)
	_, err = svc.UpsertProfile(ctx, user.ID, input)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{user.ID}, recorder.synced)

	input.IsPublic = false
	_, err = svc.UpsertProfile(ctx, user.ID, input)
	require.NoError(t, err)
	assert.Len(t, recorder.synced, 2)
}
