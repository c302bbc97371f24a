package products

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"storefront/internal/domain/product"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func names(ps []product.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func TestListFilters(t *testing.T) {
	r := NewRepo(Seed(time.Now()))

	t.Run("no filter returns seed in order", func(t *testing.T) {
		got := r.List(product.Filter{})
		if len(got) != 8 {
			t.Fatalf("len = %d", len(got))
		}
		for i, p := range got {
			if want := string(rune('1' + i)); p.ID != want {
				t.Fatalf("position %d has id %s, want %s", i, p.ID, want)
			}
		}
	})

	t.Run("category and minPrice compose", func(t *testing.T) {
		got := r.List(product.Filter{Category: "Electronics", MinPrice: dec("100")})
		if len(got) != 1 || got[0].Name != "Smart Watch" {
			t.Fatalf("got %v", names(got))
		}
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		got := r.List(product.Filter{MinPrice: dec("29.99"), MaxPrice: dec("39.99")})
		if len(got) != 2 || got[0].Name != "Cotton T-Shirt" || got[1].Name != "JavaScript Guide" {
			t.Fatalf("got %v", names(got))
		}
	})

	t.Run("search matches name or description case-insensitively", func(t *testing.T) {
		got := r.List(product.Filter{Search: "NOISE"})
		if len(got) != 1 || got[0].Name != "Wireless Headphones" {
			t.Fatalf("got %v", names(got))
		}
		got = r.List(product.Filter{Search: "lamp"})
		if len(got) != 1 || got[0].ID != "8" {
			t.Fatalf("got %v", names(got))
		}
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		got := r.List(product.Filter{Category: "garden"})
		if got == nil || len(got) != 0 {
			t.Fatalf("got %#v", got)
		}
	})
}

func TestUpdateAppliesPresentZeroValues(t *testing.T) {
	r := NewRepo(Seed(time.Now()))

	zero := decimal.Zero
	empty := ""
	noStock := 0
	got, err := r.Update("1", product.Patch{Price: &zero, Description: &empty, Stock: &noStock})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !got.Price.IsZero() || got.Description != "" || got.Stock != 0 {
		t.Fatalf("zero values not applied: %+v", got)
	}
	if got.Name != "Wireless Headphones" || got.Category != "electronics" {
		t.Fatalf("absent fields changed: %+v", got)
	}
	if got.UpdatedAt == nil {
		t.Fatal("updatedAt not set")
	}

	if _, err := r.Update("nope", product.Patch{}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateAndDelete(t *testing.T) {
	r := NewRepo(nil)
	p := r.Create(product.Product{Name: "Mug", Price: decimal.RequireFromString("5"), Category: "home"})
	if p.ID == "" || p.CreatedAt.IsZero() {
		t.Fatalf("id/createdAt not assigned: %+v", p)
	}
	if _, err := r.Get(p.ID); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if err := r.Delete(p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := r.Delete(p.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("second delete: %v", err)
	}
	if _, ok := r.Lookup(p.ID); ok {
		t.Fatal("deleted product still resolvable")
	}
}

func TestConcurrentCreatesKeepEveryProduct(t *testing.T) {
	r := NewRepo(nil)

	const N = 100
	var g errgroup.Group
	for i := 0; i < N; i++ {
		g.Go(func() error {
			r.Create(product.Product{Name: "Item", Price: decimal.NewFromInt(1), Category: "misc"})
			return nil
		})
	}
	_ = g.Wait()

	if got := len(r.List(product.Filter{})); got != N {
		t.Fatalf("expected %d products, got %d", N, got)
	}
}
