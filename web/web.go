// Package web provides the embedded browser views for the profile service.
// Assets are embedded at build time so the binary deploys on its own.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFS embed.FS

// Handler serves the static HTML views and their assets.
type Handler struct {
	assets fs.FS
}

func NewHandler() (*Handler, error) {
	assets, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	return &Handler{assets: assets}, nil
}

// RegisterRoutes mounts the index and profile pages plus the asset tree.
// The profile id in the path is only read by the page's own script.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.page("index.html"))
	r.GET("/profile/:id", h.page("profile.html"))
	r.StaticFS("/static", http.FS(h.assets))
}

func (h *Handler) page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := fs.ReadFile(h.assets, name)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	}
}
