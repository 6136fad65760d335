package api

import (
	"github.com/gin-gonic/gin"

	"github.com/youruser/siteassets/internal/assets"
)

// RegisterRoutes serves the generated files in dir and a listing of the
// artifacts expected there.
func RegisterRoutes(r *gin.Engine, dir string, artifacts []assets.Artifact) {
	h := &handlers{dir: dir, artifacts: artifacts}
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/assets", h.listAssets)
	}
	r.Static("/assets", dir)
}
