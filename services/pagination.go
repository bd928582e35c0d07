package services

import "sportsstore-service/models"

// Paginate returns the slice of items described by info. items must already be
// in a deterministic order. Pages past the end yield an empty slice.
func Paginate[T any](items []T, info models.PagingInfo) []T {
	skip := info.Skip()
	if info.Take() <= 0 || skip >= len(items) {
		return []T{}
	}
	end := skip + info.Take()
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}
