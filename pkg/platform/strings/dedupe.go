// Package strings provides string slice utilities.
package strings

import (
	"strings"
)

// DedupeAndTrim removes duplicates and empty strings from a slice,
// trimming whitespace from each element. Order is preserved.
//
// Example:
//
//	DedupeAndTrim([]string{"  foo ", "bar", "foo", "", "  "})
//	// Returns: []string{"foo", "bar"}
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return []string{}
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}

// MoveToFront returns a new slice with v first, any other occurrence of v
// removed, truncated to at most limit elements. values is not modified.
//
// Example:
//
//	MoveToFront([]string{"a", "b", "c"}, "b", 2)
//	// Returns: []string{"b", "a"}
func MoveToFront(values []string, v string, limit int) []string {
	result := make([]string, 0, len(values)+1)
	result = append(result, v)
	for _, existing := range values {
		if existing != v {
			result = append(result, existing)
		}
	}
	return Truncate(result, limit)
}

// Truncate returns values cut to at most limit elements.
func Truncate(values []string, limit int) []string {
	if limit >= 0 && len(values) > limit {
		return values[:limit]
	}
	return values
}
