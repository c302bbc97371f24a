package auth

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/httpx"
)

const ctxIdentityKey = "identity"

func AuthMiddleware(jwtMgr *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := jwtMgr.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.Set(ctxIdentityKey, id)
		c.Next()
	}
}

// IdentityFrom returns the caller set by AuthMiddleware. ok is false on
// routes that are not behind the middleware.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
