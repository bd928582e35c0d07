package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one product in a cart with its quantity.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is price x quantity for the line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is a session-owned collection of lines, at most one per product ID.
// It is not safe for concurrent mutation; the session layer serializes access.
type Cart struct {
	Lines      []CartLine `json:"lines"`
	CheckoutID string     `json:"checkout_id,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Lines: []CartLine{}}
}

// AddItem increments the line for product or appends a new one.
func (c *Cart) AddItem(product Product, quantity int) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == product.ID {
			c.Lines[i].Quantity += quantity
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{Product: product, Quantity: quantity})
}

// RemoveLine drops the line for product. Absent products are ignored.
func (c *Cart) RemoveLine(product Product) {
	kept := c.Lines[:0]
	for _, l := range c.Lines {
		if l.Product.ID != product.ID {
			kept = append(kept, l)
		}
	}
	c.Lines = kept
}

// ComputeTotalValue sums price x quantity over all lines.
func (c *Cart) ComputeTotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = []CartLine{}
	c.CheckoutID = ""
}

// ItemCount is the sum of quantities.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Line returns the line for productID, if any.
func (c *Cart) Line(productID int64) (CartLine, bool) {
	for _, l := range c.Lines {
		if l.Product.ID == productID {
			return l, true
		}
	}
	return CartLine{}, false
}

// CartView is the JSON shape of a cart returned to clients.
type CartView struct {
	Lines     []CartLineView  `json:"lines"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
}

type CartLineView struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// View renders the cart for a response body.
func (c *Cart) View() CartView {
	lines := make([]CartLineView, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, CartLineView{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Price:     l.Product.Price,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal(),
		})
	}
	return CartView{Lines: lines, ItemCount: c.ItemCount(), Total: c.ComputeTotalValue()}
}

// AddToCartRequest is the payload for adding a product to the session cart.
type AddToCartRequest struct {
	ProductID int64  `json:"product_id" binding:"required,gt=0"`
	Quantity  int    `json:"quantity" binding:"omitempty,gt=0"`
	ReturnURL string `json:"return_url"`
}
