package utils

import (
	"strconv"

	apperrors "ledgerly/internal/errors"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Pagination describes one page of a listing.
type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// PageRequest is a validated page/limit pair.
type PageRequest struct {
	Page  int `json:"page" validate:"min=1"`
	Limit int `json:"limit" validate:"min=1,max=100"`
}

func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// GetPagination extracts page and limit from the query string. Values that
// are not integers or out of range are a validation error.
func GetPagination(c *fiber.Ctx, defaultPage, defaultLimit int) (PageRequest, error) {
	page, err := strconv.Atoi(c.Query("page", strconv.Itoa(defaultPage)))
	if err != nil || page < 1 {
		return PageRequest{}, apperrors.Validation("Invalid pagination parameters")
	}

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > MaxLimit {
		return PageRequest{}, apperrors.Validation("Invalid pagination parameters")
	}

	return PageRequest{Page: page, Limit: limit}, nil
}

// TotalPages calculates the number of pages based on the total items and items per page.
func TotalPages(totalItems int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(totalItems) / limit
	if int(totalItems)%limit > 0 {
		pages++
	}
	return pages
}

// NewPagination builds the metadata for req given the total item count.
func NewPagination(req PageRequest, total int64) Pagination {
	totalPages := TotalPages(total, req.Limit)
	return Pagination{
		Page:        req.Page,
		Limit:       req.Limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: req.Page < totalPages,
		HasPrevPage: req.Page > 1,
	}
}
