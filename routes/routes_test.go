package routes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "sportsstore-service/common/errors"
	"sportsstore-service/controllers"
	"sportsstore-service/middleware"
	"sportsstore-service/models"
	"sportsstore-service/routes"
	"sportsstore-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type emptyCatalog struct{}

func (emptyCatalog) FindAll(ctx context.Context) ([]models.Product, error) { return nil, nil }
func (emptyCatalog) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	return nil, apperrors.ErrNotFound
}
func (emptyCatalog) Save(ctx context.Context, p *models.Product) error { return nil }
func (emptyCatalog) Delete(ctx context.Context, id int64) (*models.Product, error) {
	return nil, nil
}

type noopStore struct{}

func (noopStore) Load(ctx context.Context, sessionID string) (*models.Cart, error) {
	return models.NewCart(), nil
}
func (noopStore) Save(ctx context.Context, sessionID string, cart *models.Cart) error { return nil }
func (noopStore) Delete(ctx context.Context, sessionID string) error                 { return nil }

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	catalog := emptyCatalog{}
	products := services.NewProductService(catalog, 4, log)

	r := gin.New()
	r.Use(apperrors.ErrorMiddleware())
	routes.RegisterRoutes(r, routes.Handlers{
		Products: controllers.NewProductController(products),
		Nav:      controllers.NewNavController(products),
		Cart:     controllers.NewCartController(noopStore{}, catalog, services.NewCheckoutService(nil, nil, log)),
		Admin:    controllers.NewAdminController(services.NewAdminService(catalog, nil, nil, log)),
		Account:  controllers.NewAccountController(services.NewAccountService(services.AdminCredentials{}, nil, time.Hour, log)),
	}, middleware.AuthMiddleware([]byte("secret"), true), middleware.AdminOnly())
	return r
}

func TestRoutes_PublicEndpoints(t *testing.T) {
	r := newRouter()
	for _, path := range []string{"/health", "/products", "/nav/categories", "/cart", "/cart/summary"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRoutes_LoginUnconfigured(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/account/login", strings.NewReader(`{"username":"a","password":"b"}`))
	req.Header.Set("Content-Type", "application/json")
	newRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRoutes_AdminRequiresAuth(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/products", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	req.Header.Set("X-User-ID", "admin-1")
	req.Header.Set("X-User-Role", "admin")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
