// Package directory holds the pure rules of the business directory:
// listing input normalization and validation, slug candidates and
// pagination arithmetic.
package directory

import "math"

// Pagination describes the position of a page within a result set.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalCount  int64 `json:"total_count"`
	HasMore     bool  `json:"has_more"`
}

// NormalizePage clamps a requested page number to at least 1.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}

	return page
}

// Offset returns the number of rows preceding page, saturating at
// math.MaxInt instead of overflowing.
func Offset(page, pageSize int) int {
	page = NormalizePage(page)
	if pageSize <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}

	return (page - 1) * pageSize
}

// PastEnd reports whether page starts after the last of totalCount rows.
func PastEnd(page, pageSize int, totalCount int64) bool {
	return int64(Offset(page, pageSize)) >= totalCount && NormalizePage(page) > 1
}

// NewPagination computes the page metadata. There is always at least one
// page, and pages past the end report no further pages.
func NewPagination(page, pageSize int, totalCount int64) Pagination {
	page = NormalizePage(page)

	totalPages := 1
	if pageSize > 0 && totalCount > 0 {
		totalPages = int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	}

	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		HasMore:     page < totalPages,
	}
}
