package dto

import (
	"io"

	"anoa.com/portfoliocms/pkg/apperror"
)

const MaxPageSize = 100

// PageQuery is the paging part of a list request. Zero values mean "use the default".
type PageQuery struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"pageSize" json:"pageSize"`
}

// Normalize applies defaults and rejects out-of-range values.
func (q PageQuery) Normalize(defaultSize int) (PageQuery, error) {
	if q.Page < 0 {
		return q, apperror.Validation("validation failed", "page must be at least 1")
	}
	if q.PageSize < 0 || q.PageSize > MaxPageSize {
		return q, apperror.Validation("validation failed", "pageSize must be between 1 and 100")
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.PageSize == 0 {
		q.PageSize = defaultSize
	}
	return q, nil
}

func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

type PagedResult[T any] struct {
	Items           []T   `json:"items"`
	TotalCount      int64 `json:"totalCount"`
	Page            int   `json:"page"`
	PageSize        int   `json:"pageSize"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// NewPagedResult derives the page counters from totalCount and the query.
// q must already be normalized.
func NewPagedResult[T any](items []T, totalCount int64, q PageQuery) PagedResult[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := int(totalCount / int64(q.PageSize))
	if totalCount%int64(q.PageSize) != 0 {
		totalPages++
	}

	return PagedResult[T]{
		Items:           items,
		TotalCount:      totalCount,
		Page:            q.Page,
		PageSize:        q.PageSize,
		TotalPages:      totalPages,
		HasNextPage:     q.Page < totalPages,
		HasPreviousPage: q.Page > 1,
	}
}

// MapItems converts a slice while preserving a non-nil result.
func MapItems[S any, T any](items []S, fn func(S) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

type UploadFile struct {
	Reader   io.Reader
	FileName string
	Size     int64
}
