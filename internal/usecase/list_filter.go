package usecase

import "strings"

// List endpoints filter in memory: the status pill first, then a
// case-insensitive substring match over the row's concatenated fields.
// Blank inputs are no-ops.

func matchesPillFilter(filter string, active bool) bool {
	switch filter {
	case "active":
		return active
	case "inactive":
		return !active
	default:
		return true
	}
}

func matchesSearch(term string, fields ...string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	haystack := strings.ToLower(strings.Join(fields, " "))
	return strings.Contains(haystack, strings.ToLower(term))
}

// clampPage clamps a 1-based page number to [1, totalPages] where
// totalPages = max(1, ceil(total/pageSize)). Returns the clamped page
// and the page count.
func clampPage(page int, total int64, pageSize int) (int, int) {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return page, totalPages
}
