package repository

import (
	"context"
	"net/http"

	apperrors "sportsstore-service/common/errors"
	"sportsstore-service/models"
)

// ErrProductNotFound is returned (wrapped) when a product id has no row.
var ErrProductNotFound = apperrors.New(http.StatusNotFound, "Product not found", nil)

// ProductRepository is the catalog contract. Adapters use plain Go types so the
// backend (Postgres, MongoDB, DynamoDB) can be swapped by configuration.
type ProductRepository interface {
	// FindAll returns every product ordered by id ascending.
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	// Save inserts when product.ID is 0 (assigning the new id) and updates otherwise.
	Save(ctx context.Context, product *models.Product) error
	// Delete removes the product and returns it, or nil when nothing matched.
	Delete(ctx context.Context, id int64) (*models.Product, error)
}

// CartStore persists session carts.
type CartStore interface {
	// Load returns the session's cart, or an empty cart when none is stored.
	Load(ctx context.Context, sessionID string) (*models.Cart, error)
	Save(ctx context.Context, sessionID string, cart *models.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
