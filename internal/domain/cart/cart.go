package cart

import (
	"time"

	"storefront/internal/domain/product"
)

type LineItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// Entry is a line item joined with the product it currently points at.
type Entry struct {
	LineItem
	Product product.Product `json:"product"`
}
