// Package search implements the in-memory filter engine shared by every list
// screen: case-insensitive substring matching over an item's searchable
// fields, combined conjunctively with exact-match categorical filters. The
// result is always recomputed in full from the source collection; order is
// preserved and the source slice is never mutated.
package search

import "strings"

// Fields extracts the searchable text of an item. Fields that do not apply
// to a given item (unset optional values, unresolved references) should be
// returned as empty strings; they simply never match.
type Fields[T any] func(T) []string

// Predicate is a categorical filter condition.
type Predicate[T any] func(T) bool

// Equals builds a predicate that requires an exact field value. An empty
// want value disables the filter, matching everything.
func Equals[T any](get func(T) string, want string) Predicate[T] {
	return func(item T) bool {
		if want == "" {
			return true
		}
		return get(item) == want
	}
}

// Apply filters items by a free-text query and any number of categorical
// predicates. An empty query skips text matching entirely; otherwise an item
// is kept when any of its fields contains the query, case-insensitively.
// Predicates compose as AND conditions on top of the text match.
func Apply[T any](items []T, query string, fields Fields[T], filters ...Predicate[T]) []T {
	q := strings.ToLower(strings.TrimSpace(query))

	result := make([]T, 0, len(items))
	for _, item := range items {
		if q != "" && !matchesText(item, q, fields) {
			continue
		}
		if !matchesFilters(item, filters) {
			continue
		}
		result = append(result, item)
	}
	return result
}

func matchesText[T any](item T, q string, fields Fields[T]) bool {
	if fields == nil {
		return false
	}
	for _, f := range fields(item) {
		if f == "" {
			continue
		}
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](item T, filters []Predicate[T]) bool {
	for _, keep := range filters {
		if !keep(item) {
			return false
		}
	}
	return true
}
