package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/youruser/siteassets/internal/assets"
)

type handlers struct {
	dir       string
	artifacts []assets.Artifact
}

type assetInfo struct {
	Name    string      `json:"name"`
	Kind    assets.Kind `json:"kind"`
	URL     string      `json:"url"`
	Bytes   int64       `json:"bytes"`
	Present bool        `json:"present"`
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// listAssets reports each manifest entry and whether it has been generated.
func (h *handlers) listAssets(c *gin.Context) {
	out := make([]assetInfo, 0, len(h.artifacts))
	for _, a := range h.artifacts {
		info := assetInfo{Name: a.Name, Kind: a.Kind, URL: "/assets/" + a.Name}
		fi, err := os.Stat(filepath.Join(h.dir, a.Name))
		if err == nil && fi.Mode().IsRegular() {
			info.Present = true
			info.Bytes = fi.Size()
		}
		out = append(out, info)
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "assets": out})
}
