package services

import (
	"testing"

	"sportsstore-service/models"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name string
		page int
		size int
		want []int
	}{
		{"first page", 1, 2, []int{1, 2}},
		{"middle page", 2, 2, []int{3, 4}},
		{"short last page", 3, 2, []int{5}},
		{"past the end", 4, 2, []int{}},
		{"zero page size", 1, 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, models.PagingInfo{CurrentPage: tt.page, ItemsPerPage: tt.size, TotalItems: len(items)})
			assert.Equal(t, tt.want, got)
		})
	}
}
