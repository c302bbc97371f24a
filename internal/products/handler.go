package products

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"storefront/internal/apperr"
	"storefront/internal/domain/product"
	"storefront/internal/httpx"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

// Public: list products, optionally filtered by category, minPrice,
// maxPrice and search.
func (h *Handler) ListPublic(c *gin.Context) {
	f, err := filterFromQuery(c)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, h.repo.List(f))
}

func (h *Handler) GetPublic(c *gin.Context) {
	p, err := h.repo.Get(c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Create(c *gin.Context) {
	var req product.Patch
	if !httpx.BindJSON(c, &req) {
		return
	}
	p, err := newProduct(req)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.repo.Create(p))
}

// Update applies only the fields present in the body; zero values count.
func (h *Handler) Update(c *gin.Context) {
	var req product.Patch
	if !httpx.BindJSON(c, &req) {
		return
	}
	if err := validateAmounts(req); err != nil {
		httpx.Error(c, err)
		return
	}
	p, err := h.repo.Update(c.Param("id"), req)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Message(c, http.StatusOK, "Product deleted successfully")
}

func newProduct(req product.Patch) (product.Product, error) {
	if req.Name == nil || *req.Name == "" || req.Price == nil || req.Category == nil || *req.Category == "" {
		return product.Product{}, apperr.Validation("Name, price, and category are required")
	}
	if err := validateAmounts(req); err != nil {
		return product.Product{}, err
	}
	p := product.Product{
		Name:     *req.Name,
		Price:    *req.Price,
		Category: *req.Category,
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	return p, nil
}

func validateAmounts(req product.Patch) error {
	if req.Price != nil && req.Price.IsNegative() {
		return apperr.Validation("Price must be non-negative")
	}
	if req.Stock != nil && *req.Stock < 0 {
		return apperr.Validation("Stock must be non-negative")
	}
	return nil
}

func filterFromQuery(c *gin.Context) (product.Filter, error) {
	f := product.Filter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	var err error
	if f.MinPrice, err = priceParam(c, "minPrice"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = priceParam(c, "maxPrice"); err != nil {
		return f, err
	}
	return f, nil
}

func priceParam(c *gin.Context, key string) (*decimal.Decimal, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, apperr.Validation(key + " must be a number")
	}
	return &d, nil
}
