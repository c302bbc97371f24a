package products

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newTestRouter() (*gin.Engine, *Repo) {
	gin.SetMode(gin.TestMode)
	repo := NewRepo(Seed(time.Now()))
	h := NewHandler(repo)

	r := gin.New()
	r.GET("/products", h.ListPublic)
	r.GET("/products/:id", h.GetPublic)
	r.POST("/products", h.Create)
	r.PUT("/products/:id", h.Update)
	r.DELETE("/products/:id", h.Delete)
	return r, repo
}

func send(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListEndpoint(t *testing.T) {
	r, _ := newTestRouter()

	w := send(r, http.MethodGet, "/products?category=electronics&minPrice=100", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0]["name"] != "Smart Watch" {
		t.Fatalf("got %v", got)
	}
	if price, ok := got[0]["price"].(float64); !ok || price != 249.99 {
		t.Fatalf("price should be a JSON number, got %#v", got[0]["price"])
	}

	if w := send(r, http.MethodGet, "/products?category=none", ""); w.Body.String() != "[]" {
		t.Fatalf("empty list body = %s", w.Body.String())
	}
	if w := send(r, http.MethodGet, "/products?minPrice=cheap", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad minPrice status %d", w.Code)
	}
}

func TestGetEndpoint(t *testing.T) {
	r, _ := newTestRouter()
	if w := send(r, http.MethodGet, "/products/2", ""); w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	w := send(r, http.MethodGet, "/products/999", "")
	if w.Code != http.StatusNotFound || w.Body.String() != `{"error":"Product not found"}` {
		t.Fatalf("%d %s", w.Code, w.Body.String())
	}
}

func TestCreateEndpoint(t *testing.T) {
	r, repo := newTestRouter()

	t.Run("defaults and string price coercion", func(t *testing.T) {
		w := send(r, http.MethodPost, "/products", `{"name":"Mug","price":"12.50","category":"home"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("status %d: %s", w.Code, w.Body.String())
		}
		var p map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &p)
		if p["price"] != 12.5 || p["description"] != "" || p["image"] != "" || p["stock"] != float64(0) {
			t.Fatalf("unexpected product %v", p)
		}
		if _, ok := repo.Lookup(p["id"].(string)); !ok {
			t.Fatal("created product not stored")
		}
	})

	t.Run("zero price is accepted", func(t *testing.T) {
		w := send(r, http.MethodPost, "/products", `{"name":"Freebie","price":0,"category":"misc"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("status %d: %s", w.Code, w.Body.String())
		}
	})

	cases := map[string]string{
		"missing price":    `{"name":"Mug","category":"home"}`,
		"empty name":       `{"name":"","price":1,"category":"home"}`,
		"missing category": `{"name":"Mug","price":1}`,
		"negative price":   `{"name":"Mug","price":-1,"category":"home"}`,
		"negative stock":   `{"name":"Mug","price":1,"category":"home","stock":-3}`,
		"non-numeric":      `{"name":"Mug","price":"abc","category":"home"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if w := send(r, http.MethodPost, "/products", body); w.Code != http.StatusBadRequest {
				t.Fatalf("status %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestUpdateAndDeleteEndpoints(t *testing.T) {
	r, _ := newTestRouter()

	w := send(r, http.MethodPut, "/products/3", `{"price":0,"stock":0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var p map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &p)
	if p["price"] != float64(0) || p["stock"] != float64(0) || p["name"] != "Cotton T-Shirt" {
		t.Fatalf("unexpected %v", p)
	}
	if p["updatedAt"] == nil {
		t.Fatal("updatedAt missing")
	}

	if w := send(r, http.MethodPut, "/products/404", `{"name":"x"}`); w.Code != http.StatusNotFound {
		t.Fatalf("update missing: %d", w.Code)
	}
	if w := send(r, http.MethodDelete, "/products/3", ""); w.Code != http.StatusOK {
		t.Fatalf("delete: %d", w.Code)
	}
	if w := send(r, http.MethodDelete, "/products/3", ""); w.Code != http.StatusNotFound {
		t.Fatalf("second delete: %d", w.Code)
	}
}
