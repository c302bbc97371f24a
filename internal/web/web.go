// Package web serves the single-page storefront client.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var static embed.FS

// Register mounts the client under /app/ and points / at it.
func Register(r *gin.Engine) {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/app", http.FS(sub))
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/app/")
	})
}
