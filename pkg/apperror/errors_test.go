package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("skill not found"), http.StatusNotFound},
		{"conflict", Conflict("email already registered"), http.StatusConflict},
		{"validation", Validation("validation failed", "name is required"), http.StatusBadRequest},
		{"unauthorized", Unauthorized("invalid token"), http.StatusUnauthorized},
		{"forbidden", Forbidden("admin access required"), http.StatusForbidden},
		{"rate limited", RateLimited("slow down", 0), http.StatusTooManyRequests},
		{"wrapped", fmt.Errorf("loading post: %w", NotFound("blog post not found")), http.StatusNotFound},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatus(tt.err))
		})
	}
}

func TestIsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("service: %w", NotFound("project not found"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrForbidden))
}

func TestWrapKeepsSafeMessage(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	err := ErrConflict.Wrap(cause)

	appErr, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, "resource already exists", appErr.Message)
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, ErrConflict.Err)
}
