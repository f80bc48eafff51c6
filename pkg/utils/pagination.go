package utils

import "math"

const (
	// DefaultPageSize is used when the caller passes a non-positive size
	DefaultPageSize = 10
	// MaxPageSize caps a single discovery page
	MaxPageSize = 50
)

// PaginationParams holds pagination request parameters
type PaginationParams struct {
	Page int `form:"page"`
	Size int `form:"pageSize"`
}

// PaginationMeta holds pagination response metadata
type PaginationMeta struct {
	Page       int   `json:"pageNumber"`
	Size       int   `json:"pageSize"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// ClampPagination normalizes page and size into valid ranges.
// Out-of-range values are clamped, never rejected.
func ClampPagination(page, size int) PaginationParams {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return PaginationParams{Page: page, Size: size}
}

// Offset returns the SQL offset for the page
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Size
}

// CalculateMeta generates pagination metadata
func CalculateMeta(totalItems int64, page, size int) PaginationMeta {
	if size <= 0 {
		return PaginationMeta{
			Page:       1,
			Size:       int(totalItems),
			TotalItems: totalItems,
			TotalPages: 1,
		}
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(size)))
	if totalPages < 0 {
		totalPages = 0
	}

	return PaginationMeta{
		Page:       page,
		Size:       size,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
