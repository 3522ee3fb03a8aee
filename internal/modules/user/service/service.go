package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"anoa.com/portfoliocms/internal/entity"
	"anoa.com/portfoliocms/internal/modules/user/dto"
	"anoa.com/portfoliocms/internal/modules/user/repository"
	"anoa.com/portfoliocms/pkg/apperror"
	"anoa.com/portfoliocms/pkg/token"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var errInvalidCredentials = apperror.Unauthorized("invalid credentials")

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterInput, clientIP string) (*dto.AuthResponse, error)
	Login(ctx context.Context, input dto.LoginInput, clientIP string) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, rawToken, clientIP string) (*dto.AuthResponse, error)
	Logout(ctx context.Context, rawToken string) error
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type Options struct {
	AllowRegistration bool
	RefreshTokenTTL   time.Duration
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

type authService struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
	jwt    *token.Manager
	opts   Options
	logger *slog.Logger
	now    func() time.Time
}

func NewAuthService(users repository.UserRepository, tokens repository.TokenRepository, jwt *token.Manager, opts Options, logger *slog.Logger) AuthService {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		users:  users,
		tokens: tokens,
		jwt:    jwt,
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}
}

func (s *authService) Register(ctx context.Context, input dto.RegisterInput, clientIP string) (*dto.AuthResponse, error) {
	if !s.opts.AllowRegistration {
		return nil, apperror.Forbidden("registration is disabled")
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperror.Conflict("email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, apperror.Conflict("username is already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	role, err := s.users.FindRoleByName(ctx, entity.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("default role not found: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.opts.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashed),
		RoleID:       &role.ID,
		Role:         *role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("username or email is already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", slog.String("user_id", user.ID.String()))
	return s.buildAuthResponse(ctx, user, clientIP)
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput, clientIP string) (*dto.AuthResponse, error) {
	user, err := s.users.FindByLogin(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, errInvalidCredentials
	}

	return s.buildAuthResponse(ctx, user, clientIP)
}

func (s *authService) Refresh(ctx context.Context, rawToken, clientIP string) (*dto.AuthResponse, error) {
	current, err := s.tokens.FindByHash(ctx, token.Hash(rawToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthorized("invalid refresh token")
		}
		return nil, fmt.Errorf("failed to load refresh token: %w", err)
	}

	now := s.now()
	if current.RevokedAt != nil {
		// a revoked token coming back means it leaked; kill everything issued from it
		s.logger.Warn("refresh token reuse detected",
			slog.String("user_id", current.UserID.String()),
			slog.String("client_ip", clientIP),
		)
		if err := s.tokens.RevokeChain(ctx, current, now); err != nil {
			return nil, fmt.Errorf("failed to revoke token chain: %w", err)
		}
		return nil, apperror.Unauthorized("refresh token has been revoked")
	}
	if !current.IsActive(now) {
		return nil, apperror.Unauthorized("refresh token has expired")
	}

	user, err := s.users.FindByID(ctx, current.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthorized("invalid refresh token")
		}
		return nil, err
	}

	raw, next, err := s.newRefreshToken(user.ID, clientIP)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Rotate(ctx, current, next, now); err != nil {
		if errors.Is(err, repository.ErrTokenNotActive) {
			return nil, apperror.Unauthorized("refresh token has been revoked")
		}
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return s.authResponse(user, raw, next)
}

func (s *authService) Logout(ctx context.Context, rawToken string) error {
	current, err := s.tokens.FindByHash(ctx, token.Hash(rawToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load refresh token: %w", err)
	}
	return s.tokens.Revoke(ctx, current.ID, s.now())
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, err
	}
	res := dto.ToUserResponse(user)
	return &res, nil
}

func (s *authService) buildAuthResponse(ctx context.Context, user *entity.User, clientIP string) (*dto.AuthResponse, error) {
	raw, refresh, err := s.newRefreshToken(user.ID, clientIP)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Create(ctx, refresh); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}
	return s.authResponse(user, raw, refresh)
}

func (s *authService) authResponse(user *entity.User, rawRefresh string, refresh *entity.RefreshToken) (*dto.AuthResponse, error) {
	access, expiresAt, err := s.jwt.Issue(user.ID, user.Role.Name)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:           access,
		TokenType:             "Bearer",
		ExpiresIn:             int64(s.jwt.TTL().Seconds()),
		ExpiresAt:             expiresAt,
		RefreshToken:          rawRefresh,
		RefreshTokenExpiresAt: refresh.ExpiresAt,
		User:                  dto.ToUserResponse(user),
	}, nil
}

func (s *authService) newRefreshToken(userID uuid.UUID, clientIP string) (string, *entity.RefreshToken, error) {
	raw, hash, err := token.NewOpaque()
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return raw, &entity.RefreshToken{
		UserID:      userID,
		TokenHash:   hash,
		ExpiresAt:   s.now().Add(s.opts.RefreshTokenTTL),
		CreatedByIP: clientIP,
	}, nil
}
