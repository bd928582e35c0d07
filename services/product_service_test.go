package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func listingRepo() *fakeProductRepo {
	return newFakeProductRepo(
		product(1, "P1", "Cat1", "1"),
		product(2, "P2", "Cat2", "2"),
		product(3, "P3", "Cat1", "3"),
		product(4, "P4", "Cat2", "4"),
		product(5, "P5", "Cat3", "5"),
	)
}

func TestList_Paginates(t *testing.T) {
	svc := NewProductService(listingRepo(), 3, zap.NewNop())

	view, err := svc.List(context.Background(), "", 2)
	require.NoError(t, err)
	require.Len(t, view.Products, 2)
	assert.Equal(t, "P4", view.Products[0].Name)
	assert.Equal(t, "P5", view.Products[1].Name)
	assert.Equal(t, 2, view.PagingInfo.CurrentPage)
	assert.Equal(t, 3, view.PagingInfo.ItemsPerPage)
	assert.Equal(t, 5, view.PagingInfo.TotalItems)
	assert.Equal(t, 2, view.PagingInfo.TotalPages())
}

func TestList_FiltersByCategory(t *testing.T) {
	svc := NewProductService(listingRepo(), 3, zap.NewNop())

	view, err := svc.List(context.Background(), "Cat2", 1)
	require.NoError(t, err)
	require.Len(t, view.Products, 2)
	assert.Equal(t, "P2", view.Products[0].Name)
	assert.Equal(t, "P4", view.Products[1].Name)
	assert.Equal(t, "Cat2", view.CurrentCategory)
	assert.Equal(t, 2, view.PagingInfo.TotalItems)
}

func TestList_CategoryCounts(t *testing.T) {
	svc := NewProductService(listingRepo(), 3, zap.NewNop())
	want := map[string]int{"Cat1": 2, "Cat2": 2, "Cat3": 1, "": 5}

	for category, count := range want {
		view, err := svc.List(context.Background(), category, 1)
		require.NoError(t, err)
		assert.Equal(t, count, view.PagingInfo.TotalItems, "category %q", category)
	}
}

func TestList_PageBelowOneClampsToFirstPage(t *testing.T) {
	svc := NewProductService(listingRepo(), 3, zap.NewNop())

	view, err := svc.List(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, view.PagingInfo.CurrentPage)
	require.Len(t, view.Products, 3)
	assert.Equal(t, "P1", view.Products[0].Name)
}

func TestList_PagePastEndIsEmpty(t *testing.T) {
	svc := NewProductService(listingRepo(), 3, zap.NewNop())

	view, err := svc.List(context.Background(), "", 9)
	require.NoError(t, err)
	assert.Empty(t, view.Products)
	assert.Equal(t, 5, view.PagingInfo.TotalItems)
}

func TestList_UnknownCategoryIsEmpty(t *testing.T) {
	svc := NewProductService(listingRepo(), 3, zap.NewNop())

	view, err := svc.List(context.Background(), "Nope", 1)
	require.NoError(t, err)
	assert.Empty(t, view.Products)
	assert.Equal(t, 0, view.PagingInfo.TotalPages())
}

func TestList_RepositoryError(t *testing.T) {
	repo := listingRepo()
	repo.findErr = errors.New("db down")
	svc := NewProductService(repo, 3, zap.NewNop())

	_, err := svc.List(context.Background(), "", 1)
	assert.Error(t, err)
}

func TestNewProductService_DefaultPageSize(t *testing.T) {
	svc := NewProductService(listingRepo(), 0, zap.NewNop())

	view, err := svc.List(context.Background(), "", 1)
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, view.PagingInfo.ItemsPerPage)
	assert.Len(t, view.Products, DefaultPageSize)
}

func TestCategories_DistinctAndSorted(t *testing.T) {
	repo := newFakeProductRepo(
		product(1, "P1", "Apples", "1"),
		product(2, "P2", "Apples", "1"),
		product(3, "P3", "Plums", "1"),
		product(4, "P4", "Oranges", "1"),
	)
	svc := NewProductService(repo, 3, zap.NewNop())

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Apples", "Oranges", "Plums"}, categories)
}
