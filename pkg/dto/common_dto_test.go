package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagedResult(t *testing.T) {
	tests := []struct {
		name        string
		total       int64
		page, size  int
		wantPages   int
		wantNext    bool
		wantPrevous bool
	}{
		{"last partial page", 25, 3, 10, 3, false, true},
		{"first page", 25, 1, 10, 3, true, false},
		{"exact multiple", 20, 1, 10, 2, true, false},
		{"empty", 0, 1, 10, 0, false, false},
		{"past the end", 5, 4, 10, 1, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewPagedResult([]int{}, tt.total, PageQuery{Page: tt.page, PageSize: tt.size})
			assert.Equal(t, tt.wantPages, res.TotalPages)
			assert.Equal(t, tt.wantNext, res.HasNextPage)
			assert.Equal(t, tt.wantPrevous, res.HasPreviousPage)
			assert.Equal(t, tt.total, res.TotalCount)
		})
	}
}

func TestNewPagedResultNeverNilItems(t *testing.T) {
	res := NewPagedResult[string](nil, 0, PageQuery{Page: 1, PageSize: 10})
	assert.NotNil(t, res.Items)
}

func TestPageQueryNormalize(t *testing.T) {
	q, err := PageQuery{}.Normalize(20)
	require.NoError(t, err)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.PageSize)
	assert.Equal(t, 0, q.Offset())

	q, err = PageQuery{Page: 3, PageSize: 10}.Normalize(20)
	require.NoError(t, err)
	assert.Equal(t, 20, q.Offset())

	_, err = PageQuery{Page: -1}.Normalize(20)
	assert.Error(t, err)

	_, err = PageQuery{PageSize: 500}.Normalize(20)
	assert.Error(t, err)
}
