package view

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"anoa.com/portfoliocms/pkg/logger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu    sync.Mutex
	views map[uuid.UUID]int64
}

func (m *memStore) AddViews(_ context.Context, postID uuid.UUID, delta int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.views == nil {
		m.views = map[uuid.UUID]int64{}
	}
	m.views[postID] += delta
	return nil
}

func TestWithoutRedisIsNoop(t *testing.T) {
	store := &memStore{}
	svc := NewViewService(nil, store, logger.Discard())
	ctx := context.Background()

	require.NoError(t, svc.IncrementView(ctx, uuid.New(), "1.2.3.4"))
	n, err := svc.SyncViews(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	done := make(chan struct{})
	go func() {
		svc.StartViewSyncWorker(ctx, time.Millisecond)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker should return immediately without redis")
	}
}

// Runs against a real redis when TEST_REDIS_URL is set.
func TestIncrementAndSync(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	rdb := redis.NewClient(opts)
	t.Cleanup(func() { _ = rdb.Close() })

	ctx := context.Background()
	postID := uuid.New()
	t.Cleanup(func() {
		rdb.Del(ctx, viewKey(postID), visitorKey(postID, "a"), visitorKey(postID, "b"))
		rdb.SRem(ctx, pendingKey, postID.String())
	})

	store := &memStore{}
	svc := NewViewService(rdb, store, logger.Discard())

	require.NoError(t, svc.IncrementView(ctx, postID, "a"))
	require.NoError(t, svc.IncrementView(ctx, postID, "a"))
	require.NoError(t, svc.IncrementView(ctx, postID, "b"))

	_, err = svc.SyncViews(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), store.views[postID])

	exists, err := rdb.Exists(ctx, viewKey(postID)).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}
