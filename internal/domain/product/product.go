package product

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// prices go over the wire as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

// Patch carries a partial update. A nil field was absent from the payload
// and leaves the stored value untouched; a non-nil zero value is applied.
type Patch struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Image       *string          `json:"image"`
	Stock       *int             `json:"stock"`
}

func (p Patch) Apply(dst *Product) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.Image != nil {
		dst.Image = *p.Image
	}
	if p.Stock != nil {
		dst.Stock = *p.Stock
	}
}

// Filter narrows a catalog listing. Zero-valued fields do not filter.
type Filter struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Search   string
}

func (f Filter) Match(p Product) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	return true
}
