package response

import "github.com/nekogravitycat/share-it-backend/internal/pkg/pagination"

// PageResponse is the standard wrapper for list endpoints.
// Page is the zero-based page actually served, which may differ from the requested offset.
type PageResponse[T any] struct {
	Items    []T `json:"items"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

// NewPageResponse wraps one page of items. A nil slice is rendered as [].
func NewPageResponse[T any](items []T, page pagination.Page, total int) PageResponse[T] {
	if items == nil {
		items = make([]T, 0)
	}

	return PageResponse[T]{
		Items:    items,
		Page:     page.Number,
		PageSize: page.Size,
		Total:    total,
	}
}
