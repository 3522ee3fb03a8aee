package view

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	pendingKey = "pending:blog_views"
	dedupeTTL  = time.Hour
)

// ViewStore persists flushed view counts.
type ViewStore interface {
	AddViews(ctx context.Context, postID uuid.UUID, delta int64) error
}

type ViewService interface {
	IncrementView(ctx context.Context, postID uuid.UUID, visitor string) error
	SyncViews(ctx context.Context) (int, error)
	StartViewSyncWorker(ctx context.Context, interval time.Duration)
}

type viewService struct {
	redisClient *redis.Client
	store       ViewStore
	logger      *slog.Logger
}

// NewViewService counts views in redis and flushes them to store. With a nil
// client every call is a no-op.
func NewViewService(redisClient *redis.Client, store ViewStore, logger *slog.Logger) ViewService {
	return &viewService{
		redisClient: redisClient,
		store:       store,
		logger:      logger,
	}
}

func viewKey(postID uuid.UUID) string {
	return fmt.Sprintf("blog:views:%s", postID)
}

func visitorKey(postID uuid.UUID, visitor string) string {
	return fmt.Sprintf("blog:visitor_view:%s:%s", postID, visitor)
}

// IncrementView counts at most one view per visitor per post per hour.
func (s *viewService) IncrementView(ctx context.Context, postID uuid.UUID, visitor string) error {
	if s.redisClient == nil {
		return nil
	}

	fresh, err := s.redisClient.SetNX(ctx, visitorKey(postID, visitor), "viewed", dedupeTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to check visitor view: %w", err)
	}
	if !fresh {
		return nil
	}

	pipe := s.redisClient.TxPipeline()
	pipe.Incr(ctx, viewKey(postID))
	pipe.SAdd(ctx, pendingKey, postID.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment view: %w", err)
	}

	return nil
}

// SyncViews moves pending redis counters into the database and returns the
// number of posts flushed.
func (s *viewService) SyncViews(ctx context.Context) (int, error) {
	if s.redisClient == nil {
		return 0, nil
	}

	postIDs, err := s.redisClient.SMembers(ctx, pendingKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get pending blog views: %w", err)
	}

	synced := 0
	for _, raw := range postIDs {
		postID, err := uuid.Parse(raw)
		if err != nil {
			s.logger.Warn("invalid pending blog view id", "id", raw)
			s.redisClient.SRem(ctx, pendingKey, raw)
			continue
		}

		// GETDEL so views landing after the read start a new counter
		countStr, err := s.redisClient.GetDel(ctx, viewKey(postID)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			s.logger.Error("failed to read blog view counter", "post_id", postID, "error", err)
			continue
		}
		s.redisClient.SRem(ctx, pendingKey, raw)

		count, _ := strconv.ParseInt(countStr, 10, 64)
		if count <= 0 {
			continue
		}

		if err := s.store.AddViews(ctx, postID, count); err != nil {
			s.logger.Error("failed to flush blog views", "post_id", postID, "views", count, "error", err)
			// put the views back for the next run
			s.redisClient.IncrBy(ctx, viewKey(postID), count)
			s.redisClient.SAdd(ctx, pendingKey, raw)
			continue
		}
		synced++
	}

	if synced > 0 {
		s.logger.Info("synced blog views", "posts", synced)
	}
	return synced, nil
}

func (s *viewService) StartViewSyncWorker(ctx context.Context, interval time.Duration) {
	if s.redisClient == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := s.SyncViews(ctx); err != nil {
				s.logger.Error("blog view sync failed", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
