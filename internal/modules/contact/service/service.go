package contact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"anoa.com/portfoliocms/internal/entity"
	contactDto "anoa.com/portfoliocms/internal/modules/contact/dto"
	"anoa.com/portfoliocms/internal/modules/contact/repository"
	"anoa.com/portfoliocms/pkg/apperror"
	commonDto "anoa.com/portfoliocms/pkg/dto"
	"anoa.com/portfoliocms/pkg/mailer"
	"anoa.com/portfoliocms/pkg/ratelimiter"
	"anoa.com/portfoliocms/pkg/validator"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	rateLimitAction = "contact"
	emailTimeout    = 2 * time.Minute
)

// Channel is the redis pub/sub channel carrying an owner's new messages.
func Channel(ownerID uuid.UUID) string {
	return fmt.Sprintf("contact_messages:%s", ownerID)
}

type RecipientFinder interface {
	FindPublicByUsername(ctx context.Context, username string) (*entity.UserProfile, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

// EmailToggle reports whether owners get an email per message.
type EmailToggle interface {
	ContactEmailEnabled(ctx context.Context) bool
}

type ContactService interface {
	Send(ctx context.Context, username, senderIP string, req contactDto.SendContactMessageRequest) (*contactDto.SentMessageResponse, error)
	List(ctx context.Context, owner uuid.UUID, query contactDto.ContactMessageQuery) (*commonDto.PagedResult[contactDto.ContactMessageResponse], error)
	UnreadCount(ctx context.Context, owner uuid.UUID) (*contactDto.UnreadCountResponse, error)
	Get(ctx context.Context, owner, id uuid.UUID) (*contactDto.ContactMessageResponse, error)
	MarkRead(ctx context.Context, owner, id uuid.UUID) (*contactDto.ContactMessageResponse, error)
	MarkUnread(ctx context.Context, owner, id uuid.UUID) (*contactDto.ContactMessageResponse, error)
	Delete(ctx context.Context, owner, id uuid.UUID) error
}

type Options struct {
	Cooldown time.Duration
}

type contactService struct {
	repo        repository.ContactMessageRepository
	recipients  RecipientFinder
	users       UserFinder
	emailToggle EmailToggle
	mailer      mailer.Mailer
	limiter     *ratelimiter.Limiter
	redisClient *redis.Client
	opts        Options
	logger      *slog.Logger
	now         func() time.Time
	async       func(func())
}

func NewContactService(
	repo repository.ContactMessageRepository,
	recipients RecipientFinder,
	users UserFinder,
	emailToggle EmailToggle,
	m mailer.Mailer,
	limiter *ratelimiter.Limiter,
	redisClient *redis.Client,
	opts Options,
	logger *slog.Logger,
) ContactService {
	return &contactService{
		repo:        repo,
		recipients:  recipients,
		users:       users,
		emailToggle: emailToggle,
		mailer:      m,
		limiter:     limiter,
		redisClient: redisClient,
		opts:        opts,
		logger:      logger,
		now:         time.Now,
		async:       func(fn func()) { go fn() },
	}
}

func (s *contactService) Send(ctx context.Context, username, senderIP string, req contactDto.SendContactMessageRequest) (*contactDto.SentMessageResponse, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	recipient, err := s.recipients.FindPublicByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("portfolio not found")
		}
		return nil, fmt.Errorf("failed to find recipient: %w", err)
	}

	allowed, wait, err := s.limiter.Allow(ctx, senderIP, rateLimitAction, s.opts.Cooldown)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperror.RateLimited(
			fmt.Sprintf("you are sending messages too fast. Please wait %.0f seconds", wait.Seconds()),
			wait,
		)
	}

	msg := &entity.ContactMessage{
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		Subject:     req.Subject,
		Description: req.Description,
		SenderIP:    senderIP,
	}
	msg.SetOwner(recipient.UserID)

	if err := s.repo.Create(ctx, msg); err != nil {
		if clearErr := s.limiter.Clear(ctx, senderIP, rateLimitAction); clearErr != nil {
			s.logger.Warn("failed to release contact rate limit", "ip", senderIP, "error", clearErr)
		}
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	s.publish(ctx, msg)
	s.notifyOwner(ctx, recipient, msg)

	return &contactDto.SentMessageResponse{ID: msg.ID, CreatedAt: msg.CreatedAt}, nil
}

func (s *contactService) publish(ctx context.Context, msg *entity.ContactMessage) {
	if s.redisClient == nil {
		return
	}

	payload, err := json.Marshal(contactDto.ToContactMessageResponse(msg))
	if err != nil {
		s.logger.Warn("failed to encode contact message event", "error", err)
		return
	}
	if err := s.redisClient.Publish(ctx, Channel(msg.UserID), payload).Err(); err != nil {
		s.logger.Warn("failed to publish contact message event", "message_id", msg.ID, "error", err)
	}
}

// notifyOwner emails the owner in the background; the request does not wait for SMTP.
func (s *contactService) notifyOwner(ctx context.Context, recipient *entity.UserProfile, msg *entity.ContactMessage) {
	if s.mailer == nil || !s.mailer.IsConfigured() {
		return
	}
	if s.emailToggle != nil && !s.emailToggle.ContactEmailEnabled(ctx) {
		return
	}

	owner, err := s.users.FindByID(ctx, recipient.UserID)
	if err != nil {
		s.logger.Warn("failed to load contact recipient", "user_id", recipient.UserID, "error", err)
		return
	}

	body, err := mailer.RenderContactEmail(mailer.ContactEmailData{
		OwnerName:   recipient.FullName,
		SenderName:  msg.SenderName,
		SenderEmail: msg.SenderEmail,
		Subject:     msg.Subject,
		Message:     msg.Description,
	})
	if err != nil {
		s.logger.Error("failed to render contact email", "error", err)
		return
	}

	bg := context.WithoutCancel(ctx)
	s.async(func() {
		sendCtx, cancel := context.WithTimeout(bg, emailTimeout)
		defer cancel()
		subject := fmt.Sprintf("New message: %s", msg.Subject)
		if err := s.mailer.Send(sendCtx, owner.Email, msg.SenderEmail, subject, body); err != nil {
			s.logger.Error("failed to send contact email", "message_id", msg.ID, "error", err)
		}
	})
}

func (s *contactService) List(ctx context.Context, owner uuid.UUID, query contactDto.ContactMessageQuery) (*commonDto.PagedResult[contactDto.ContactMessageResponse], error) {
	page, err := query.PageQuery.Normalize(defaultPageSize)
	if err != nil {
		return nil, err
	}

	messages, total, err := s.repo.FindAll(ctx, owner, repository.Filter{
		IsRead: query.IsRead,
		Search: query.Search,
	}, page.Offset(), page.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}

	res := commonDto.NewPagedResult(commonDto.MapItems(messages, contactDto.ToContactMessageResponse), total, page)
	return &res, nil
}

func (s *contactService) UnreadCount(ctx context.Context, owner uuid.UUID) (*contactDto.UnreadCountResponse, error) {
	count, err := s.repo.CountUnread(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return &contactDto.UnreadCountResponse{Count: count}, nil
}

func (s *contactService) Get(ctx context.Context, owner, id uuid.UUID) (*contactDto.ContactMessageResponse, error) {
	msg, err := s.load(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	res := contactDto.ToContactMessageResponse(msg)
	return &res, nil
}

func (s *contactService) MarkRead(ctx context.Context, owner, id uuid.UUID) (*contactDto.ContactMessageResponse, error) {
	return s.setRead(ctx, owner, id, true)
}

func (s *contactService) MarkUnread(ctx context.Context, owner, id uuid.UUID) (*contactDto.ContactMessageResponse, error) {
	return s.setRead(ctx, owner, id, false)
}

// setRead is idempotent; marking a read message read keeps its original readAt.
func (s *contactService) setRead(ctx context.Context, owner, id uuid.UUID, read bool) (*contactDto.ContactMessageResponse, error) {
	msg, err := s.load(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if msg.IsRead != read {
		msg.IsRead = read
		if read {
			now := s.now()
			msg.ReadAt = &now
		} else {
			msg.ReadAt = nil
		}
		if err := s.repo.UpdateReadState(ctx, msg); err != nil {
			return nil, fmt.Errorf("failed to update contact message: %w", err)
		}
	}

	res := contactDto.ToContactMessageResponse(msg)
	return &res, nil
}

func (s *contactService) Delete(ctx context.Context, owner, id uuid.UUID) error {
	msg, err := s.load(ctx, owner, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, msg); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("contact message not found")
		}
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	return nil
}

func (s *contactService) load(ctx context.Context, owner, id uuid.UUID) (*entity.ContactMessage, error) {
	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("contact message not found")
		}
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}
	if msg.UserID != owner {
		return nil, apperror.NotFound("contact message not found")
	}
	return msg, nil
}
