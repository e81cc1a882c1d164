// Package listview implements the filter/sort pipeline shared by the
// companies and plans listings: a fold-cased substring search, an
// active/inactive status filter and a stable comparator sort. The pipeline
// is pure: it never mutates its input and is idempotent for a fixed
// configuration.
package listview

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// StatusFilter narrows a listing by status. Inactive means "not active":
// pending and unknown statuses are bucketed under it.
type StatusFilter string

const (
	StatusAll      StatusFilter = "all"
	StatusActive   StatusFilter = "active"
	StatusInactive StatusFilter = "inactive"
)

// SortOrder direction. Descending inverts the comparator result, not the
// input order, so ties keep their relative input position either way.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Config is the transient per-screen filter state. It is never persisted;
// a "clear filters" action resets it to DefaultConfig.
type Config struct {
	Search string
	Status StatusFilter
	SortBy string
	Order  SortOrder
}

// DefaultConfig returns the cleared configuration for a screen whose
// default sort key is sortBy.
func DefaultConfig(sortBy string) Config {
	return Config{Status: StatusAll, SortBy: sortBy, Order: OrderAsc}
}

// Fields adapts a concrete item type to the pipeline.
type Fields[T any] struct {
	// SearchText concatenates the screen-defined searchable fields.
	SearchText func(T) string
	// Active reports whether the item counts as active for the status filter.
	Active func(T) bool
	// Compare holds one comparator per sort key.
	Compare map[string]func(a, b T) int
	// DefaultSort is used when Config.SortBy names no known comparator.
	DefaultSort string
}

// Apply runs search, status filter and sort over items and returns a new
// slice. Equal sort keys preserve their relative input order.
func Apply[T any](items []T, cfg Config, f Fields[T]) []T {
	needle := Fold(strings.TrimSpace(cfg.Search))

	out := make([]T, 0, len(items))
	for _, it := range items {
		if needle != "" && !strings.Contains(Fold(f.SearchText(it)), needle) {
			continue
		}
		switch cfg.Status {
		case StatusActive:
			if !f.Active(it) {
				continue
			}
		case StatusInactive:
			if f.Active(it) {
				continue
			}
		}
		out = append(out, it)
	}

	cmp := f.Compare[cfg.SortBy]
	if cmp == nil {
		cmp = f.Compare[f.DefaultSort]
	}
	if cmp != nil {
		sort.SliceStable(out, func(i, j int) bool {
			c := cmp(out[i], out[j])
			if cfg.Order == OrderDesc {
				c = -c
			}
			return c < 0
		})
	}
	return out
}

// Fold case-folds a string for caseless matching (Unicode fold, not just
// ASCII lowering).
func Fold(s string) string {
	return cases.Fold().String(s)
}

// CompareFold compares two strings caselessly.
func CompareFold(a, b string) int {
	return strings.Compare(Fold(a), Fold(b))
}

// CompareTime compares timestamps; a missing (zero) time sorts as the Unix
// epoch.
func CompareTime(a, b time.Time) int {
	au, bu := unixOrEpoch(a), unixOrEpoch(b)
	switch {
	case au < bu:
		return -1
	case au > bu:
		return 1
	default:
		return 0
	}
}

func unixOrEpoch(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
