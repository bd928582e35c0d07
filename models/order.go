package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutStatus is the outcome of a checkout attempt.
type CheckoutStatus string

const (
	CheckoutInvalid   CheckoutStatus = "invalid"
	CheckoutCompleted CheckoutStatus = "completed"
)

// CheckoutResult is returned by the checkout service. Invalid results carry
// the validity result to redisplay with the form.
type CheckoutResult struct {
	Status     CheckoutStatus   `json:"status"`
	OrderID    string           `json:"order_id,omitempty"`
	Validation ValidationResult `json:"validation"`
}

// OrderLine is a frozen copy of a cart line.
type OrderLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderPlacedEvent is published by event-based order processors.
type OrderPlacedEvent struct {
	EventType string          `json:"event_type"`
	OrderID   string          `json:"order_id"`
	Lines     []OrderLine     `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	Shipping  ShippingDetails `json:"shipping"`
	GiftWrap  bool            `json:"gift_wrap"`
	PlacedAt  time.Time       `json:"placed_at"`
}

// NewOrderPlacedEvent snapshots cart and details.
func NewOrderPlacedEvent(cart *Cart, details ShippingDetails, placedAt time.Time) OrderPlacedEvent {
	lines := make([]OrderLine, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, OrderLine{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Price:     l.Product.Price,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal(),
		})
	}
	return OrderPlacedEvent{
		EventType: "order_placed",
		OrderID:   cart.CheckoutID,
		Lines:     lines,
		Total:     cart.ComputeTotalValue(),
		Shipping:  details,
		GiftWrap:  details.GiftWrap,
		PlacedAt:  placedAt,
	}
}
