package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/apperr"
	"storefront/internal/auth"
	"storefront/internal/httpx"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

// caller resolves the account from the verified token. Cart routes never
// take an account id from the request itself.
func caller(c *gin.Context) (string, bool) {
	id, ok := auth.IdentityFrom(c)
	if !ok || id.AccountID == "" {
		httpx.Error(c, auth.ErrMissingToken)
		return "", false
	}
	return id.AccountID, true
}

func (h *Handler) GetMyCart(c *gin.Context) {
	accountID, ok := caller(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.repo.GetCart(accountID))
}

type AddItemReq struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

func (h *Handler) AddItem(c *gin.Context) {
	accountID, ok := caller(c)
	if !ok {
		return
	}

	var req AddItemReq
	if !httpx.BindJSON(c, &req) {
		return
	}
	if req.ProductID == "" {
		httpx.Error(c, apperr.Validation("Product ID is required"))
		return
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	if qty < 1 {
		httpx.Error(c, apperr.Validation("Quantity must be at least 1"))
		return
	}

	count, err := h.repo.AddItem(accountID, req.ProductID, qty)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item added to cart", "cartCount": count})
}

type UpdateQtyReq struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

func (h *Handler) UpdateQty(c *gin.Context) {
	accountID, ok := caller(c)
	if !ok {
		return
	}

	var req UpdateQtyReq
	if !httpx.BindJSON(c, &req) {
		return
	}
	if req.ProductID == "" || req.Quantity == nil {
		httpx.Error(c, apperr.Validation("Product ID and quantity are required"))
		return
	}

	if err := h.repo.UpdateItem(accountID, req.ProductID, *req.Quantity); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Message(c, http.StatusOK, "Cart updated successfully")
}

func (h *Handler) RemoveItem(c *gin.Context) {
	accountID, ok := caller(c)
	if !ok {
		return
	}
	if err := h.repo.RemoveItem(accountID, c.Param("productId")); err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.Message(c, http.StatusOK, "Item removed from cart")
}

func (h *Handler) Clear(c *gin.Context) {
	accountID, ok := caller(c)
	if !ok {
		return
	}
	h.repo.Clear(accountID)
	httpx.Message(c, http.StatusOK, "Cart cleared successfully")
}
