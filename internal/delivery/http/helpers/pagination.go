package helpers

import (
	"errors"
	"net/http"
	"strconv"

	"conferenceagenda/internal/domain"
)

// Pagination query parameter defaults and limits. A page_size of 0 asks for every row
// in a single page.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
	AllRows         = 0
)

// ParsePagination reads page and page_size from the query string. Missing values take the
// defaults and page_size above MaxPageSize is clamped. Malformed or negative values are
// rejected with a 400 and ok=false; callers return immediately in that case.
func ParsePagination(w http.ResponseWriter, r *http.Request) (domain.PaginationParams, bool) {
	params, err := paginationFromQuery(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return domain.PaginationParams{}, false
	}
	return params, true
}

func paginationFromQuery(r *http.Request) (domain.PaginationParams, error) {
	q := r.URL.Query()
	page, err := queryInt(q.Get("page"), DefaultPage)
	if err != nil || page < 1 {
		return domain.PaginationParams{}, errors.New("page must be a positive integer")
	}
	pageSize, err := queryInt(q.Get("page_size"), DefaultPageSize)
	if err != nil || pageSize < 0 {
		return domain.PaginationParams{}, errors.New("page_size must be a non-negative integer")
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if pageSize == AllRows {
		// everything fits on the first page
		page = 1
	}
	return domain.PaginationParams{Page: page, PageSize: pageSize}, nil
}

func queryInt(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta builds PaginationMeta from the current page, page size, and total count.
// An unbounded page (pageSize 0) holds all rows, so there is one page unless total is 0.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	totalPages := 0
	switch {
	case pageSize > 0:
		totalPages = (total + pageSize - 1) / pageSize
	case total > 0:
		totalPages = 1
	}
	return PaginationMeta{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
