// internal/utils/pagination.go
package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ErrInvalidPagination is returned when page or limit is below 1.
var ErrInvalidPagination = errors.New("invalid pagination input")

type PageMetadata struct {
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// Page is the list envelope returned by every list operation.
type Page[T any] struct {
	Items       []T   `json:"items"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// ToOffsetLimit converts a 1-based page number into an offset/limit window.
func ToOffsetLimit(page, limit int) (offset int, size int, err error) {
	if page < 1 {
		return 0, 0, fmt.Errorf("%w: page must be >= 1, got %d", ErrInvalidPagination, page)
	}
	if limit < 1 {
		return 0, 0, fmt.Errorf("%w: limit must be >= 1, got %d", ErrInvalidPagination, limit)
	}
	return (page - 1) * limit, limit, nil
}

// ToPageMetadata derives page counts from a total row count.
func ToPageMetadata(totalItems int64, limit, page int) PageMetadata {
	totalPages := 0
	if totalItems > 0 && limit > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	}

	return PageMetadata{
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// NewPage assembles the list envelope. A nil items slice is returned as empty.
func NewPage[T any](items []T, totalItems int64, page, limit int) Page[T] {
	if items == nil {
		items = []T{}
	}
	meta := ToPageMetadata(totalItems, limit, page)

	return Page[T]{
		Items:       items,
		TotalItems:  totalItems,
		TotalPages:  meta.TotalPages,
		Page:        page,
		Limit:       limit,
		HasNextPage: meta.HasNextPage,
		HasPrevPage: meta.HasPrevPage,
	}
}

func SetPaginationHeaders(c *gin.Context, totalItems int64, page, limit, totalPages int) {
	c.Header("X-Total-Count", strconv.FormatInt(totalItems, 10))
	c.Header("X-Page", strconv.Itoa(page))
	c.Header("X-Per-Page", strconv.Itoa(limit))
	c.Header("X-Total-Pages", strconv.Itoa(totalPages))
}
