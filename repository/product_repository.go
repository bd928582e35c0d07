package repository

import (
	"context"
	"errors"

	apperrors "sportsstore-service/common/errors"
	"sportsstore-service/models"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository on Postgres via GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository.
func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	return products, nil
}

func (r *GormProductRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(ErrProductNotFound, err)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	return &product, nil
}

// Save inserts new products and updates the editable columns of existing ones.
func (r *GormProductRepository) Save(ctx context.Context, product *models.Product) error {
	if product.ID == 0 {
		if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
		}
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(product).
		Select("name", "description", "category", "price", "image_key").
		Updates(product)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrDatabaseQuery, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.Wrap(ErrProductNotFound, gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *GormProductRepository) Delete(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}

	if err := r.db.WithContext(ctx).Delete(&product).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabaseQuery, err)
	}
	return &product, nil
}
