package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/cart"
	"storefront/internal/categories"
	"storefront/internal/products"
	"storefront/internal/web"
)

type Deps struct {
	Log         *zap.Logger
	JWT         *auth.JWTManager
	Users       *auth.UserRepo
	Products    *products.Repo
	Carts       *cart.Repo
	CORSOrigins []string
}

// New wires every route onto a fresh engine.
func New(d Deps) *gin.Engine {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}

	r := gin.New()
	r.Use(requestLogger(d.Log), recovery(d.Log), corsMiddleware(d.CORSOrigins))
	r.HandleMethodNotAllowed = false

	authHandler := auth.NewHandler(auth.Dependencies{
		JWT:   d.JWT,
		Users: d.Users,
		Carts: d.Carts,
	})
	prodHandler := products.NewHandler(d.Products)
	catHandler := categories.NewHandler(d.Products)
	cartHandler := cart.NewHandler(d.Carts)
	requireAuth := auth.AuthMiddleware(d.JWT)

	api := r.Group("/api")
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", requireAuth, authHandler.Me)
	}

	// Public catalog routes
	api.GET("/categories", catHandler.ListPublic)
	api.GET("/products", prodHandler.ListPublic)
	api.GET("/products/:id", prodHandler.GetPublic)

	// any verified caller may manage the catalog
	catalog := api.Group("/products", requireAuth)
	{
		catalog.POST("", prodHandler.Create)
		catalog.PUT("/:id", prodHandler.Update)
		catalog.DELETE("/:id", prodHandler.Delete)
	}

	cartGroup := api.Group("/cart", requireAuth)
	{
		cartGroup.GET("", cartHandler.GetMyCart)
		cartGroup.POST("/add", cartHandler.AddItem)
		cartGroup.PUT("/update", cartHandler.UpdateQty)
		cartGroup.DELETE("/remove/:productId", cartHandler.RemoveItem)
		cartGroup.DELETE("/clear", cartHandler.Clear)
	}

	r.GET("/health", health)

	web.Register(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
	return r
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
