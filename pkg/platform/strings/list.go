// Package strings holds small string helpers for configuration values.
package strings

import (
	"strings"
)

// SplitList splits a separated setting such as "a, b,,a" into its distinct
// non-empty elements, trimmed and in first-seen order. An input with no
// elements yields nil.
func SplitList(value, sep string) []string {
	return DedupeAndTrim(strings.Split(value, sep))
}

// DedupeAndTrim drops blank and repeated elements after trimming whitespace.
// Comparison is case-sensitive, since CORS origins are matched exactly.
func DedupeAndTrim(values []string) []string {
	var result []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
