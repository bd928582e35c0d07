package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "sportsstore-service/common/errors"
	"sportsstore-service/models"
	"sportsstore-service/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePresigner struct {
	key         string
	contentType string
	err         error
}

func (f *fakePresigner) PresignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, map[string]string, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	f.key = key
	f.contentType = contentType
	return "https://bucket.s3.amazonaws.com/" + key, map[string]string{"Content-Type": contentType}, nil
}

func saveRequest(name string, price string) models.SaveProductRequest {
	return models.SaveProductRequest{
		Name:        name,
		Description: "A thing",
		Category:    "Watersports",
		Price:       decimal.RequireFromString(price),
	}
}

func TestAdmin_ProductsReturnsAll(t *testing.T) {
	svc := NewAdminService(newFakeProductRepo(product(1, "P1", "C", "1"), product(2, "P2", "C", "1")), nil, nil, zap.NewNop())

	products, err := svc.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "P1", products[0].Name)
}

func TestAdmin_ProductNotFound(t *testing.T) {
	svc := NewAdminService(newFakeProductRepo(), nil, nil, zap.NewNop())

	_, err := svc.Product(context.Background(), 42)
	assert.True(t, errors.Is(err, repository.ErrProductNotFound))
}

func TestAdmin_NewProductIsEmpty(t *testing.T) {
	svc := NewAdminService(newFakeProductRepo(), nil, nil, zap.NewNop())

	p := svc.NewProduct()
	assert.Equal(t, int64(0), p.ID)
	assert.Empty(t, p.Name)
}

func TestAdmin_SaveCreatesProduct(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewAdminService(repo, nil, nil, zap.NewNop())

	res, err := svc.Save(context.Background(), 0, saveRequest("Kayak", "275"))
	require.NoError(t, err)
	assert.True(t, res.Validation.Valid())
	assert.Equal(t, "Kayak has been saved", res.Message)
	assert.NotZero(t, res.Product.ID)
	assert.Equal(t, 1, repo.saves)
}

func TestAdmin_SaveUpdatesAndKeepsImage(t *testing.T) {
	existing := product(7, "Old", "C", "1")
	existing.ImageKey = "products/7/img.png"
	repo := newFakeProductRepo(existing)
	svc := NewAdminService(repo, nil, nil, zap.NewNop())

	res, err := svc.Save(context.Background(), 7, saveRequest("New", "9.99"))
	require.NoError(t, err)
	assert.Equal(t, "New has been saved", res.Message)

	stored, err := repo.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "New", stored.Name)
	assert.Equal(t, "products/7/img.png", stored.ImageKey)
	assert.True(t, decimal.RequireFromString("9.99").Equal(stored.Price))
}

func TestAdmin_SaveInvalidDoesNotWrite(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewAdminService(repo, nil, nil, zap.NewNop())

	res, err := svc.Save(context.Background(), 0, saveRequest("", "-1"))
	require.NoError(t, err)
	assert.False(t, res.Validation.Valid())
	assert.Equal(t, "Please enter a product name", res.Validation.Errors["name"])
	assert.Equal(t, "Please enter a positive price", res.Validation.Errors["price"])
	assert.Empty(t, res.Message)
	assert.Equal(t, 0, repo.saves)
}

func TestAdmin_SaveUnknownProduct(t *testing.T) {
	svc := NewAdminService(newFakeProductRepo(), nil, nil, zap.NewNop())

	_, err := svc.Save(context.Background(), 99, saveRequest("Kayak", "275"))
	assert.True(t, errors.Is(err, repository.ErrProductNotFound))
}

func TestAdmin_SaveRepositoryError(t *testing.T) {
	repo := newFakeProductRepo()
	repo.saveErr = errors.New("write failed")
	svc := NewAdminService(repo, nil, nil, zap.NewNop())

	_, err := svc.Save(context.Background(), 0, saveRequest("Kayak", "275"))
	assert.Error(t, err)
}

func TestAdmin_Delete(t *testing.T) {
	repo := newFakeProductRepo(product(3, "Ball", "Soccer", "19.50"))
	svc := NewAdminService(repo, nil, nil, zap.NewNop())

	msg, err := svc.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Ball was deleted", msg)

	msg, err = svc.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, msg)
}

func TestAdmin_ImageUploadURL(t *testing.T) {
	repo := newFakeProductRepo(product(5, "Lifejacket", "Watersports", "48.95"))
	presigner := &fakePresigner{}
	svc := NewAdminService(repo, presigner, nil, zap.NewNop())

	upload, err := svc.ImageUploadURL(context.Background(), 5, "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(upload.Key, "products/5/"))
	assert.True(t, strings.HasSuffix(upload.Key, ".png"))
	assert.Equal(t, presigner.key, upload.Key)
	assert.Equal(t, int64(900), upload.ExpiresIn)

	stored, err := repo.FindByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, upload.Key, stored.ImageKey)
}

func TestAdmin_ImageUploadURLErrors(t *testing.T) {
	repo := newFakeProductRepo(product(5, "Lifejacket", "Watersports", "48.95"))

	_, err := NewAdminService(repo, nil, nil, zap.NewNop()).ImageUploadURL(context.Background(), 5, "image/png")
	assert.Equal(t, 503, apperrors.StatusCode(err))

	svc := NewAdminService(repo, &fakePresigner{}, nil, zap.NewNop())
	_, err = svc.ImageUploadURL(context.Background(), 5, "text/plain")
	assert.Equal(t, 400, apperrors.StatusCode(err))

	_, err = svc.ImageUploadURL(context.Background(), 6, "image/png")
	assert.Equal(t, 404, apperrors.StatusCode(err))

	svc = NewAdminService(repo, &fakePresigner{err: errors.New("no creds")}, nil, zap.NewNop())
	_, err = svc.ImageUploadURL(context.Background(), 5, "image/png")
	assert.Equal(t, 500, apperrors.StatusCode(err))
}
