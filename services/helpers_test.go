package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"sportsstore-service/models"
	"sportsstore-service/repository"

	"github.com/shopspring/decimal"
)

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[int64]models.Product
	nextID   int64
	saveErr  error
	findErr  error
	saves    int
}

func newFakeProductRepo(products ...models.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[int64]models.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
	}
	return r
}

func (r *fakeProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &p, nil
}

func (r *fakeProductRepo) Save(ctx context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	if p.ID == 0 {
		r.nextID++
		p.ID = r.nextID
		p.CreatedAt = time.Now()
	} else if _, ok := r.products[p.ID]; !ok {
		return repository.ErrProductNotFound
	}
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id int64) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	delete(r.products, id)
	return &p, nil
}

type recordingProcessor struct {
	mu      sync.Mutex
	calls   int
	orderID string
	lines   int
	details models.ShippingDetails
	err     error
}

func (p *recordingProcessor) ProcessOrder(ctx context.Context, cart *models.Cart, details models.ShippingDetails) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.orderID = cart.CheckoutID
	p.lines = len(cart.Lines)
	p.details = details
	return p.err
}

var errProcessor = errors.New("processor down")

func product(id int64, name, category string, price string) models.Product {
	return models.Product{ID: id, Name: name, Description: name + " description", Category: category, Price: decimal.RequireFromString(price)}
}

func validShipping() models.ShippingDetails {
	return models.ShippingDetails{
		Name:    "Joe Bloggs",
		Line1:   "1 Main Street",
		City:    "Springfield",
		State:   "IL",
		Zip:     "62701",
		Country: "USA",
	}
}
