package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	cases := []struct {
		name     string
		page     string
		limit    string
		wantPage int
		wantLim  int
		wantOff  int
	}{
		{"defaults when absent", "", "", 1, 4, 0},
		{"explicit values", "3", "8", 3, 8, 16},
		{"non-numeric falls back", "abc", "x", 1, 4, 0},
		{"zero falls back", "0", "0", 1, 4, 0},
		{"negative falls back", "-2", "-5", 1, 4, 0},
		{"page only", "2", "", 2, 4, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := ParsePagination(tc.page, tc.limit)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantLim, p.Limit)
			assert.Equal(t, tc.wantOff, p.Offset)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 4))
	assert.Equal(t, 1, TotalPages(1, 4))
	assert.Equal(t, 1, TotalPages(4, 4))
	assert.Equal(t, 2, TotalPages(5, 4))
	assert.Equal(t, 3, TotalPages(9, 4))
	assert.Equal(t, 0, TotalPages(-1, 4))
}
