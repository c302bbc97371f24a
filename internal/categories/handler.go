package categories

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain/category"
	"storefront/internal/domain/product"
	"storefront/internal/util"
)

// Catalog is the slice of the product store this package reads.
type Catalog interface {
	List(f product.Filter) []product.Product
}

type Handler struct {
	catalog Catalog
}

func NewHandler(catalog Catalog) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) ListPublic(c *gin.Context) {
	c.JSON(http.StatusOK, Summarize(h.catalog.List(product.Filter{})))
}

// Summarize groups products by category, case-insensitively. The first
// spelling seen names the group. Output is sorted by name.
func Summarize(ps []product.Product) []category.Category {
	idx := make(map[string]int)
	out := make([]category.Category, 0)
	for _, p := range ps {
		key := strings.ToLower(p.Category)
		if i, ok := idx[key]; ok {
			out[i].ProductCount++
			continue
		}
		idx[key] = len(out)
		out = append(out, category.Category{
			Name:         p.Category,
			Slug:         util.Slugify(p.Category),
			ProductCount: 1,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
