package services

import (
	"context"
	"fmt"
	"time"

	apperrors "sportsstore-service/common/errors"
	applog "sportsstore-service/common/logger"
	"sportsstore-service/models"
	aws_pkg "sportsstore-service/pkg/aws"
	"sportsstore-service/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const imageUploadExpiry = 15 * time.Minute

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// AdminService manages the catalog for administrators.
type AdminService interface {
	Products(ctx context.Context) ([]models.Product, error)
	Product(ctx context.Context, id int64) (*models.Product, error)
	// NewProduct returns the empty template used by the create form.
	NewProduct() *models.Product
	// Save creates (id 0) or updates a product. Invalid input is reported in
	// the result's Validation and nothing is written.
	Save(ctx context.Context, id int64, req models.SaveProductRequest) (*models.AdminSaveResult, error)
	// Delete removes a product and returns the confirmation message, or ""
	// when nothing was deleted.
	Delete(ctx context.Context, id int64) (string, error)
	ImageUploadURL(ctx context.Context, id int64, contentType string) (*models.ImageUpload, error)
}

type adminServiceImpl struct {
	repo      repository.ProductRepository
	presigner aws_pkg.URLPresigner
	metrics   aws_pkg.MetricsRecorder
	logger    *zap.Logger
}

func NewAdminService(repo repository.ProductRepository, presigner aws_pkg.URLPresigner, metrics aws_pkg.MetricsRecorder, logger *zap.Logger) AdminService {
	return &adminServiceImpl{repo: repo, presigner: presigner, metrics: metrics, logger: logger}
}

func (s *adminServiceImpl) Products(ctx context.Context) ([]models.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *adminServiceImpl) Product(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *adminServiceImpl) NewProduct() *models.Product {
	return &models.Product{}
}

func (s *adminServiceImpl) Save(ctx context.Context, id int64, req models.SaveProductRequest) (*models.AdminSaveResult, error) {
	if id < 0 {
		return nil, apperrors.Withf(apperrors.ErrInvalidInput, "invalid product id %d", id)
	}

	submitted := req.ToProduct(id)
	validation := submitted.Validate()
	if !validation.Valid() {
		return &models.AdminSaveResult{Product: submitted, Validation: validation}, nil
	}

	target := submitted
	if id != 0 {
		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		existing.Name = submitted.Name
		existing.Description = submitted.Description
		existing.Category = submitted.Category
		existing.Price = submitted.Price
		target = existing
	}

	if err := s.repo.Save(ctx, target); err != nil {
		s.logger.Error("Failed to save product", zap.Int64("product_id", id), zap.String("admin", applog.Actor(ctx)), zap.Error(err))
		return nil, err
	}
	if id == 0 {
		recordCount(s.metrics, aws_pkg.MetricProductsCreated, map[string]string{"Service": "sportsstore"})
	}

	s.logger.Info("Product saved",
		zap.Int64("product_id", target.ID),
		zap.String("name", target.Name),
		zap.String("admin", applog.Actor(ctx)),
	)
	return &models.AdminSaveResult{
		Product:    target,
		Message:    fmt.Sprintf("%s has been saved", target.Name),
		Validation: validation,
	}, nil
}

func (s *adminServiceImpl) Delete(ctx context.Context, id int64) (string, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete product", zap.Int64("product_id", id), zap.String("admin", applog.Actor(ctx)), zap.Error(err))
		return "", err
	}
	if deleted == nil {
		return "", nil
	}
	recordCount(s.metrics, aws_pkg.MetricProductsDeleted, map[string]string{"Service": "sportsstore"})
	s.logger.Info("Product deleted", zap.Int64("product_id", id), zap.String("admin", applog.Actor(ctx)))
	return fmt.Sprintf("%s was deleted", deleted.Name), nil
}

func (s *adminServiceImpl) ImageUploadURL(ctx context.Context, id int64, contentType string) (*models.ImageUpload, error) {
	if s.presigner == nil {
		return nil, apperrors.Withf(apperrors.ErrServiceUnavailable, "image uploads are not configured")
	}
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, apperrors.Withf(apperrors.ErrInvalidInput, "unsupported content type %q", contentType)
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("products/%d/%s%s", id, uuid.NewString(), ext)
	url, headers, err := s.presigner.PresignPut(ctx, key, contentType, imageUploadExpiry)
	if err != nil {
		s.logger.Error("Failed to presign image upload", zap.Int64("product_id", id), zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	product.ImageKey = key
	if err := s.repo.Save(ctx, product); err != nil {
		return nil, err
	}

	return &models.ImageUpload{
		UploadURL: url,
		Headers:   headers,
		Key:       key,
		ExpiresIn: int64(imageUploadExpiry.Seconds()),
	}, nil
}
