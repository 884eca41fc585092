package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/johnquangdev/agency-cms/internal/domain/repositories"
)

// applyFilters narrows a content query. searchColumns are matched with ILIKE.
func applyFilters(query *gorm.DB, filters repositories.ContentFilters, searchColumns ...string) *gorm.DB {
	if filters.Published != nil {
		query = query.Where("published = ?", *filters.Published)
	}
	if filters.Tag != "" {
		tag, _ := json.Marshal([]string{filters.Tag})
		query = query.Where("tags @> ?::jsonb", string(tag))
	}
	if filters.Search != "" && len(searchColumns) > 0 {
		searchPattern := fmt.Sprintf("%%%s%%", filters.Search)
		clauses := make([]string, len(searchColumns))
		args := make([]interface{}, len(searchColumns))
		for i, col := range searchColumns {
			clauses[i] = col + " ILIKE ?"
			args[i] = searchPattern
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}
	return query
}

// applyPage adds ordering and pagination. Unknown sort columns fall back to
// created_at.
func applyPage(query *gorm.DB, filters repositories.ContentFilters, sortable ...string) *gorm.DB {
	sortBy := "created_at"
	for _, col := range append([]string{"created_at", "updated_at", "published_at"}, sortable...) {
		if filters.SortBy == col {
			sortBy = col
			break
		}
	}
	sortOrder := "DESC"
	if strings.EqualFold(filters.SortOrder, "asc") {
		sortOrder = "ASC"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}
	return query
}
