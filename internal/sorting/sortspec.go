// Package sorting validates user-supplied sort parameters against per-kind
// column whitelists. Anything off the list silently falls back to the
// defaults, so a crafted ?sort_column never reaches the ORDER BY.
package sorting

import "strings"

const (
	DefaultColumn    = "id"
	DefaultDirection = "DESC"
)

var sortableColumns = map[string][]string{
	"work":       {"id", "title", "created_at", "updated_at", "word_count", "hits"},
	"bookmark":   {"id", "created_at", "updated_at"},
	"collection": {"id", "name", "title", "created_at"},
	"question":   {"id", "position", "question", "updated_at"},
	"tag":        {"id", "name", "created_at"},
	"user":       {"id", "login", "created_at"},
}

// ValidSortColumn reports whether column is whitelisted for kind.
// Matching is case-insensitive.
func ValidSortColumn(column, kind string) bool {
	cols, ok := sortableColumns[kind]
	if !ok {
		return false
	}
	for _, c := range cols {
		if strings.EqualFold(c, column) {
			return true
		}
	}
	return false
}

// SetSortOrder composes an ORDER BY fragment from untrusted column and
// direction values: whitelisted column or "id", asc/desc (any case) or
// "DESC".
func SetSortOrder(column, direction, kind string) string {
	col := DefaultColumn
	if ValidSortColumn(column, kind) {
		col = strings.ToLower(column)
	}
	dir := DefaultDirection
	switch strings.ToLower(direction) {
	case "asc":
		dir = "ASC"
	case "desc":
		dir = "DESC"
	}
	return col + " " + dir
}
