package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-assigner/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// PageMeta is the paging metadata returned with every list.
type PageMeta struct {
	Count      int64 `json:"count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginationParams clamps page and pageSize into range.
func NewPaginationParams(page, pageSize int) PaginationParams {
	if page < 1 {
		page = 1
	}
	if pageSize < constants.MinPageSize || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   (page - 1) * pageSize,
	}
}

// GetPaginationParams extracts and validates pagination parameters from the request
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))

	return NewPaginationParams(page, pageSize)
}

// Meta computes the metadata for a result set of count rows.
func (p PaginationParams) Meta(count int64) PageMeta {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = int((count + int64(p.PageSize) - 1) / int64(p.PageSize))
	}

	return PageMeta{
		Count:      count,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: totalPages,
	}
}
