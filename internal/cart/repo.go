package cart

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/internal/apperr"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/product"
)

var (
	ErrProductNotFound  = apperr.NotFound("Product not found")
	ErrItemNotFound     = apperr.NotFound("Item not found in cart")
	ErrQuantityTooLarge = apperr.Validation("Quantity is too large")
)

// Catalog resolves product ids for the cart. Products may disappear at any
// time; line items pointing at them are kept but hidden on read.
type Catalog interface {
	Lookup(id string) (product.Product, bool)
}

// Repo holds one ordered line-item list per account.
type Repo struct {
	mu      sync.RWMutex
	carts   map[string][]cart.LineItem
	catalog Catalog
	now     func() time.Time
}

func NewRepo(catalog Catalog) *Repo {
	return &Repo{
		carts:   make(map[string][]cart.LineItem),
		catalog: catalog,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Init gives an account an empty cart unless it already has one.
func (r *Repo) Init(accountID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.carts[accountID]; !ok {
		r.carts[accountID] = []cart.LineItem{}
	}
}

func (r *Repo) GetCart(accountID string) []cart.Entry {
	r.mu.RLock()
	items := make([]cart.LineItem, len(r.carts[accountID]))
	copy(items, r.carts[accountID])
	r.mu.RUnlock()

	out := make([]cart.Entry, 0, len(items))
	for _, it := range items {
		p, ok := r.catalog.Lookup(it.ProductID)
		if !ok {
			continue
		}
		out = append(out, cart.Entry{LineItem: it, Product: p})
	}
	return out
}

// AddItem bumps the quantity of an existing line or appends a new one and
// returns the number of distinct lines. Stock is not consulted.
func (r *Repo) AddItem(accountID, productID string, qty int) (int, error) {
	if _, ok := r.catalog.Lookup(productID); !ok {
		return 0, ErrProductNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[accountID]
	if i := indexOf(items, productID); i >= 0 {
		if items[i].Quantity > math.MaxInt-qty {
			return 0, ErrQuantityTooLarge
		}
		items[i].Quantity += qty
	} else {
		items = append(items, cart.LineItem{
			ID:        uuid.NewString(),
			ProductID: productID,
			Quantity:  qty,
			AddedAt:   r.now(),
		})
	}
	r.carts[accountID] = items
	return len(items), nil
}

// UpdateItem overwrites the quantity; qty <= 0 drops the line.
func (r *Repo) UpdateItem(accountID, productID string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[accountID]
	i := indexOf(items, productID)
	if i < 0 {
		return ErrItemNotFound
	}
	if qty <= 0 {
		r.carts[accountID] = append(items[:i], items[i+1:]...)
		return nil
	}
	items[i].Quantity = qty
	return nil
}

func (r *Repo) RemoveItem(accountID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[accountID]
	i := indexOf(items, productID)
	if i < 0 {
		return ErrItemNotFound
	}
	r.carts[accountID] = append(items[:i], items[i+1:]...)
	return nil
}

func (r *Repo) Clear(accountID string) {
	r.mu.Lock()
	r.carts[accountID] = []cart.LineItem{}
	r.mu.Unlock()
}

func indexOf(items []cart.LineItem, productID string) int {
	for i := range items {
		if items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
