// Package query builds filter predicates and sort orderings for the
// listing endpoints. Filters are AND-composed case-insensitive substring
// matches; sorts are resolved against a per-entity whitelist and fall back to
// name ascending when the requested field is unknown.
package query

import (
	"strings"

	"gorm.io/gorm"

	"ratehub/internal/model"
)

// Order is a sort direction.
type Order string

const (
	Asc  Order = "ASC"
	Desc Order = "DESC"
)

// Filter restricts listing results. Empty fields impose no restriction.
type Filter struct {
	Name    string
	Email   string
	Address string
	Role    model.Role // users only, exact match
}

// Sort is a requested ordering. A zero Sort resolves to name ascending.
type Sort struct {
	Field string
	Order Order
}

// Sortable columns per entity. Values are the actual column names so the
// resolved ORDER BY never interpolates caller input.
var (
	StoreSortFields = map[string]string{
		"name":       "name",
		"email":      "email",
		"address":    "address",
		"created_at": "created_at",
	}
	UserSortFields = map[string]string{
		"name":       "name",
		"email":      "email",
		"address":    "address",
		"role":       "role",
		"created_at": "created_at",
	}
)

// Scope returns a gorm scope applying all non-empty filter fields.
func (f Filter) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Name != "" {
			db = db.Where("LOWER(name) LIKE ?", LikePattern(f.Name))
		}
		if f.Email != "" {
			db = db.Where("LOWER(email) LIKE ?", LikePattern(f.Email))
		}
		if f.Address != "" {
			db = db.Where("LOWER(address) LIKE ?", LikePattern(f.Address))
		}
		if f.Role != "" {
			db = db.Where("role = ?", f.Role)
		}
		return db
	}
}

// Scope returns a gorm scope applying the resolved ordering.
func (s Sort) Scope(allowed map[string]string) func(db *gorm.DB) *gorm.DB {
	column, order := s.Resolve(allowed)
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(column + " " + string(order))
	}
}

// Resolve maps the requested sort onto a whitelisted column and a normalized
// direction. Unknown or empty fields deterministically resolve to name ASC.
func (s Sort) Resolve(allowed map[string]string) (string, Order) {
	column, ok := allowed[strings.ToLower(s.Field)]
	if !ok {
		return "name", Asc
	}
	if strings.EqualFold(string(s.Order), string(Desc)) {
		return column, Desc
	}
	return column, Asc
}

// LikePattern lowercases the term and wraps it in wildcards for a
// collation-independent substring match.
func LikePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
