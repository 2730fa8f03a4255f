package database

import (
	"gorm.io/gorm"

	"github.com/yukikurage/task-assigner/internal/utils"
)

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.PageSize)
	}
}

// NewestFirst orders by column descending, breaking ties on id.
func NewestFirst(column string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(column + " DESC").Order("id DESC")
	}
}
