package service

import (
	"context"
	"testing"
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"anoa.com/portfoliocms/internal/modules/user/dto"
	"anoa.com/portfoliocms/internal/modules/user/repository"
	"anoa.com/portfoliocms/internal/testutil"
	"anoa.com/portfoliocms/pkg/apperror"
	"anoa.com/portfoliocms/pkg/logger"
	"anoa.com/portfoliocms/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, allowRegistration bool) (AuthService, repository.TokenRepository) {
	t.Helper()
	db := testutil.NewDB(t, &entity.Role{}, &entity.User{}, &entity.UserProfile{}, &entity.RefreshToken{})
	require.NoError(t, db.Create(&entity.Role{Name: entity.RoleUser}).Error)

	tokens := repository.NewTokenRepository(db)
	svc := NewAuthService(
		repository.NewUserRepository(db),
		tokens,
		token.NewManager("secret", 15*time.Minute, "test"),
		Options{AllowRegistration: allowRegistration, RefreshTokenTTL: time.Hour, BcryptCost: bcrypt.MinCost},
		logger.Discard(),
	)
	return svc, tokens
}

func TestRegisterDisabled(t *testing.T) {
	svc, _ := newTestService(t, false)

	_, err := svc.Register(context.Background(), dto.RegisterInput{Username: "ada", Email: "ada@example.com", Password: "password1"}, "127.0.0.1")
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService(t, true)
	ctx := context.Background()

	res, err := svc.Register(ctx, dto.RegisterInput{Username: "ada", Email: "ada@example.com", Password: "password1"}, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, int64(900), res.ExpiresIn)
	assert.Equal(t, entity.RoleUser, res.User.Role)
	assert.NotEmpty(t, res.RefreshToken)

	_, err = svc.Register(ctx, dto.RegisterInput{Username: "ada2", Email: "ADA@example.com", Password: "password1"}, "127.0.0.1")
	assert.ErrorIs(t, err, apperror.ErrConflict)

	_, err = svc.Login(ctx, dto.LoginInput{Identifier: "ada", Password: "wrong-password"}, "127.0.0.1")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = svc.Login(ctx, dto.LoginInput{Identifier: "nobody", Password: "password1"}, "127.0.0.1")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	byEmail, err := svc.Login(ctx, dto.LoginInput{Identifier: "ada@example.com", Password: "password1"}, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, byEmail.User.ID)

	me, err := svc.Me(ctx, res.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", me.Username)
}

func TestRefreshRotationAndReuse(t *testing.T) {
	svc, tokens := newTestService(t, true)
	ctx := context.Background()

	first, err := svc.Register(ctx, dto.RegisterInput{Username: "ada", Email: "ada@example.com", Password: "password1"}, "127.0.0.1")
	require.NoError(t, err)

	second, err := svc.Refresh(ctx, first.RefreshToken, "127.0.0.1")
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	old, err := tokens.FindByHash(ctx, token.Hash(first.RefreshToken))
	require.NoError(t, err)
	require.NotNil(t, old.RevokedAt)
	require.NotNil(t, old.ReplacedByHash)
	assert.Equal(t, token.Hash(second.RefreshToken), *old.ReplacedByHash)

	// replaying the first token revokes the live successor too
	_, err = svc.Refresh(ctx, first.RefreshToken, "10.0.0.9")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = svc.Refresh(ctx, second.RefreshToken, "127.0.0.1")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = svc.Refresh(ctx, "unknown", "127.0.0.1")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestLogoutRevokes(t *testing.T) {
	svc, _ := newTestService(t, true)
	ctx := context.Background()

	res, err := svc.Register(ctx, dto.RegisterInput{Username: "ada", Email: "ada@example.com", Password: "password1"}, "127.0.0.1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, res.RefreshToken))
	require.NoError(t, svc.Logout(ctx, "never-issued"))

	_, err = svc.Refresh(ctx, res.RefreshToken, "127.0.0.1")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}
