package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchesPillFilter(t *testing.T) {
	require.True(t, matchesPillFilter("active", true))
	require.False(t, matchesPillFilter("active", false))
	require.True(t, matchesPillFilter("inactive", false))
	require.False(t, matchesPillFilter("inactive", true))

	// Anything else passes everything through
	require.True(t, matchesPillFilter("", true))
	require.True(t, matchesPillFilter("", false))
	require.True(t, matchesPillFilter("all", false))
}

func TestMatchesSearch(t *testing.T) {
	fields := []string{"Jane Doe", "jane@example.com", "01712345678"}

	require.True(t, matchesSearch("jane", fields...))
	require.True(t, matchesSearch("DOE", fields...))
	require.True(t, matchesSearch("example.com", fields...))
	require.True(t, matchesSearch("0171", fields...))
	require.False(t, matchesSearch("john", fields...))

	// Blank and whitespace-only terms match everything
	require.True(t, matchesSearch("", fields...))
	require.True(t, matchesSearch("   ", fields...))

	// The term can span a field boundary through the joined haystack
	require.True(t, matchesSearch("doe jane@", fields...))
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		total          int64
		wantPage       int
		wantTotalPages int
	}{
		{"empty list still has one page", 1, 0, 1, 1},
		{"zero page clamps up", 0, 10, 1, 2},
		{"negative page clamps up", -3, 100, 1, 13},
		{"in range", 2, 17, 2, 3},
		{"past the end clamps down", 5, 17, 3, 3},
		{"exact multiple", 2, 16, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, totalPages := clampPage(tt.page, tt.total, 8)
			require.Equal(t, tt.wantPage, page)
			require.Equal(t, tt.wantTotalPages, totalPages)
		})
	}
}
