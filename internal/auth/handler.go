package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/apperr"
	"storefront/internal/domain/user"
	"storefront/internal/httpx"
)

var ErrInvalidCredentials = apperr.Credentials("Invalid credentials")

// CartInitializer gives a freshly registered account its empty cart.
type CartInitializer interface {
	Init(accountID string)
}

type Dependencies struct {
	JWT   *JWTManager
	Users *UserRepo
	Carts CartInitializer
}

type Handler struct {
	deps Dependencies
}

func NewHandler(d Dependencies) *Handler {
	return &Handler{deps: d}
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account. The returned user never includes the hash.
func (h *Handler) Register(c *gin.Context) {
	var req registerReq
	if !httpx.BindJSON(c, &req) {
		return
	}

	u, err := h.register(req)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    u.Public(),
	})
}

func (h *Handler) register(req registerReq) (user.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return user.User{}, apperr.Validation("All fields are required")
	}
	if len(req.Password) > MaxPasswordBytes {
		return user.User{}, apperr.Validation("Password must be at most 72 bytes")
	}
	// cheap early exit before paying for bcrypt; Create rechecks under lock
	if _, taken := h.deps.Users.ByEmail(req.Email); taken {
		return user.User{}, ErrUserExists
	}

	pwHash, err := HashPassword(req.Password)
	if err != nil {
		return user.User{}, apperr.Internal("password hash failed", err)
	}

	u, err := h.deps.Users.Create(req.Name, req.Email, pwHash)
	if err != nil {
		return user.User{}, err
	}
	if h.deps.Carts != nil {
		h.deps.Carts.Init(u.ID)
	}
	return u, nil
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if !httpx.BindJSON(c, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.Error(c, apperr.Validation("Email and password are required"))
		return
	}

	// unknown email and wrong password answer identically
	u, ok := h.deps.Users.ByEmail(req.Email)
	if !ok {
		CheckPassword(dummyHash(), req.Password)
		httpx.Error(c, ErrInvalidCredentials)
		return
	}
	if !CheckPassword(u.PasswordHash, req.Password) {
		httpx.Error(c, ErrInvalidCredentials)
		return
	}

	token, _, err := h.deps.JWT.Sign(u.ID, u.Email)
	if err != nil {
		httpx.Error(c, apperr.Internal("token signing failed", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  u.Public(),
	})
}

func (h *Handler) Me(c *gin.Context) {
	id, _ := IdentityFrom(c)

	u, ok := h.deps.Users.ByID(id.AccountID)
	if !ok {
		httpx.Error(c, apperr.NotFound("User not found"))
		return
	}
	c.JSON(http.StatusOK, u.Public())
}
