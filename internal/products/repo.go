package products

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/internal/apperr"
	"storefront/internal/domain/product"
)

var ErrProductNotFound = apperr.NotFound("Product not found")

// Repo is the in-memory catalog. Listing order is insertion order.
type Repo struct {
	mu    sync.RWMutex
	items []product.Product
	now   func() time.Time
}

func NewRepo(seed []product.Product) *Repo {
	items := make([]product.Product, len(seed))
	copy(items, seed)
	return &Repo{items: items, now: func() time.Time { return time.Now().UTC() }}
}

func (r *Repo) List(f product.Filter) []product.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]product.Product, 0, len(r.items))
	for _, p := range r.items {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

func (r *Repo) Get(id string) (product.Product, error) {
	p, ok := r.Lookup(id)
	if !ok {
		return product.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Lookup is Get without the error value, for callers that treat a missing
// product as data rather than failure.
func (r *Repo) Lookup(id string) (product.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.items[i], true
	}
	return product.Product{}, false
}

// Create assigns a fresh id and creation time to p and appends it.
func (r *Repo) Create(p product.Product) product.Product {
	p.ID = uuid.NewString()
	p.CreatedAt = r.now()
	p.UpdatedAt = nil

	r.mu.Lock()
	r.items = append(r.items, p)
	r.mu.Unlock()
	return p
}

func (r *Repo) Update(id string, patch product.Patch) (product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return product.Product{}, ErrProductNotFound
	}
	p := r.items[i]
	patch.Apply(&p)
	ts := r.now()
	p.UpdatedAt = &ts
	r.items[i] = p
	return p, nil
}

func (r *Repo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrProductNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

// caller holds mu
func (r *Repo) indexOf(id string) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
