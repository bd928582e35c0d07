package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Identity is the integer ID; everything else is
// editable through the admin surface.
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name" validate:"notblank"`
	Description string          `gorm:"type:text;not null" json:"description" validate:"notblank"`
	Category    string          `gorm:"type:varchar(50);index;not null" json:"category" validate:"notblank"`
	Price       decimal.Decimal `gorm:"type:numeric(16,2);not null" json:"price"`
	ImageKey    string          `gorm:"type:varchar(255)" json:"image_key,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// SaveProductRequest is the admin payload for creating or editing a product.
type SaveProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
}

// ToProduct builds a product carrying id.
func (r SaveProductRequest) ToProduct(id int64) *Product {
	return &Product{
		ID:          id,
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Category:    strings.TrimSpace(r.Category),
		Price:       r.Price,
	}
}

var productMessages = map[string]string{
	"name":        "Please enter a product name",
	"description": "Please enter a description",
	"category":    "Please specify a category",
}

// Validate checks the editable fields of a product.
func (p *Product) Validate() ValidationResult {
	v := checkStruct(p, productMessages)
	if !p.Price.IsPositive() {
		v.Add("price", "Please enter a positive price")
	}
	return v
}
