package models_test

import (
	"fmt"
	"testing"

	"sportsstore-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagingInfo_TotalPages(t *testing.T) {
	cases := []struct {
		name     string
		info     models.PagingInfo
		expected int
	}{
		{"exact", models.PagingInfo{CurrentPage: 1, ItemsPerPage: 3, TotalItems: 6}, 2},
		{"remainder", models.PagingInfo{CurrentPage: 1, ItemsPerPage: 3, TotalItems: 5}, 2},
		{"empty", models.PagingInfo{CurrentPage: 1, ItemsPerPage: 4, TotalItems: 0}, 0},
		{"single", models.PagingInfo{CurrentPage: 1, ItemsPerPage: 4, TotalItems: 1}, 1},
		{"zero page size", models.PagingInfo{CurrentPage: 1, ItemsPerPage: 0, TotalItems: 3}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.info.TotalPages())
		})
	}
}

func TestPagingInfo_SkipTake(t *testing.T) {
	info := models.PagingInfo{CurrentPage: 2, ItemsPerPage: 3, TotalItems: 5}
	assert.Equal(t, 3, info.Skip())
	assert.Equal(t, 3, info.Take())
}

func TestPagingInfo_PageLinks(t *testing.T) {
	info := models.PagingInfo{CurrentPage: 2, TotalItems: 28, ItemsPerPage: 10}

	links := info.PageLinks(func(i int) string { return fmt.Sprintf("Page%d", i) })

	require.Len(t, links, 3)
	assert.Equal(t, models.PageLink{Page: 1, URL: "Page1"}, links[0])
	assert.Equal(t, models.PageLink{Page: 2, URL: "Page2", Selected: true}, links[1])
	assert.Equal(t, models.PageLink{Page: 3, URL: "Page3"}, links[2])
}

func TestPagingInfo_PageLinksEmptyCatalog(t *testing.T) {
	info := models.PagingInfo{CurrentPage: 1, ItemsPerPage: 4}
	assert.Empty(t, info.PageLinks(func(int) string { return "" }))
}
