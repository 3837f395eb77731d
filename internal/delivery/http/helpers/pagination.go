package helpers

import (
	"net/http"
	"strconv"

	"clubsite/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ParsePagination reads page and limit from the request query string, clamps
// them to valid ranges, and returns domain.PaginationParams. Invalid or
// missing values fall back to defaults.
func ParsePagination(r *http.Request) domain.PaginationParams {
	page := DefaultPage
	if s := r.URL.Query().Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			page = v
		}
	}
	limit := DefaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			limit = v
			if limit > MaxLimit {
				limit = MaxLimit
			}
		}
	}
	return domain.PaginationParams{Page: page, Limit: limit}
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NewPaginationMeta builds PaginationMeta from the current page, limit, and
// total count. TotalPages is ceiling(total / limit); if limit is 0, TotalPages is 0.
func NewPaginationMeta(page, limit, total int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return PaginationMeta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
