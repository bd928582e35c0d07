package controllers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"

	apperrors "sportsstore-service/common/errors"
	"sportsstore-service/models"
	"sportsstore-service/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type memCatalog struct {
	mu       sync.Mutex
	products map[int64]models.Product
	err      error
}

func newMemCatalog(products ...models.Product) *memCatalog {
	c := &memCatalog{products: map[int64]models.Product{}}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return c
}

func (c *memCatalog) FindAll(ctx context.Context) ([]models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (c *memCatalog) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	p, ok := c.products[id]
	if !ok {
		return nil, apperrors.Wrap(repository.ErrProductNotFound, errors.New("no row"))
	}
	return &p, nil
}

func (c *memCatalog) Save(ctx context.Context, p *models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p.ID == 0 {
		p.ID = int64(len(c.products) + 1)
	}
	c.products[p.ID] = *p
	return nil
}

func (c *memCatalog) Delete(ctx context.Context, id int64) (*models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.products[id]
	if !ok {
		return nil, nil
	}
	delete(c.products, id)
	return &p, nil
}

type memCartStore struct {
	mu      sync.Mutex
	carts   map[string]models.Cart
	loadErr error
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: map[string]models.Cart{}}
}

func (s *memCartStore) Load(ctx context.Context, sessionID string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	cart, ok := s.carts[sessionID]
	if !ok {
		return models.NewCart(), nil
	}
	lines := append([]models.CartLine{}, cart.Lines...)
	cart.Lines = lines
	return &cart, nil
}

func (s *memCartStore) Save(ctx context.Context, sessionID string, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = *cart
	return nil
}

func (s *memCartStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

type countingProcessor struct {
	calls int
}

func (p *countingProcessor) ProcessOrder(ctx context.Context, cart *models.Cart, details models.ShippingDetails) error {
	p.calls++
	return nil
}

func testProduct(id int64, name, category, price string) models.Product {
	return models.Product{ID: id, Name: name, Description: name, Category: category, Price: decimal.RequireFromString(price)}
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(apperrors.ErrorMiddleware())
	return r
}

func doRequest(r http.Handler, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
