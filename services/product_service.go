package services

import (
	"context"
	"sort"

	"sportsstore-service/models"
	"sportsstore-service/repository"

	"go.uber.org/zap"
)

// DefaultPageSize is the listing page size when none is configured.
const DefaultPageSize = 4

// ProductService serves the storefront listing and navigation.
type ProductService interface {
	// List returns one page of products, optionally restricted to category ("" means all).
	List(ctx context.Context, category string, page int) (*models.ProductsListView, error)
	// Categories returns the distinct categories sorted ascending.
	Categories(ctx context.Context) ([]string, error)
}

type productServiceImpl struct {
	repo     repository.ProductRepository
	pageSize int
	logger   *zap.Logger
}

// NewProductService creates a ProductService. pageSize <= 0 falls back to DefaultPageSize.
func NewProductService(repo repository.ProductRepository, pageSize int, logger *zap.Logger) ProductService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &productServiceImpl{repo: repo, pageSize: pageSize, logger: logger}
}

func (s *productServiceImpl) List(ctx context.Context, category string, page int) (*models.ProductsListView, error) {
	if page < 1 {
		page = 1
	}

	all, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to load catalog", zap.Error(err))
		return nil, err
	}

	filtered := make([]models.Product, 0, len(all))
	for _, p := range all {
		if category == "" || p.Category == category {
			filtered = append(filtered, p)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].ID < filtered[j].ID })

	info := models.PagingInfo{
		CurrentPage:  page,
		ItemsPerPage: s.pageSize,
		TotalItems:   len(filtered),
	}

	return &models.ProductsListView{
		Products:        Paginate(filtered, info),
		PagingInfo:      info,
		CurrentCategory: category,
	}, nil
}

func (s *productServiceImpl) Categories(ctx context.Context) ([]string, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to load catalog", zap.Error(err))
		return nil, err
	}

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, p := range all {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories, nil
}
