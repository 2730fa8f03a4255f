package dto

import "github.com/yukikurage/task-assigner/internal/utils"

// Response is the envelope of every successful API response.
type Response struct {
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Page is a paginated list.
type Page[T any] struct {
	utils.PageMeta
	Results []T `json:"results"`
}

// NewPage converts items with convert and attaches the paging metadata.
func NewPage[M any, T any](items []M, total int64, params utils.PaginationParams, convert func(M) T) Page[T] {
	results := make([]T, len(items))
	for i, item := range items {
		results[i] = convert(item)
	}

	return Page[T]{
		PageMeta: params.Meta(total),
		Results:  results,
	}
}
