package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilClientAllowsEverything(t *testing.T) {
	l := New(nil, "rate_limit")

	for i := 0; i < 3; i++ {
		allowed, wait, err := l.Allow(context.Background(), "203.0.113.7", "contact", time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Zero(t, wait)
	}
	assert.NoError(t, l.Clear(context.Background(), "203.0.113.7", "contact"))
}
