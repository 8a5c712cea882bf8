// Package web provides the HTTP server and web interface for miniblog
package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/miniblog/miniblog/internal/config"
)

// getOpenAPISchema handles "/api/v1/openapi.json". It walks the route
// table and emits a minimal OpenAPI 3 document covering the non-hidden
// routes only, so the HTML pages never leak into the API docs.
func (s *WebServer) getOpenAPISchema(c *gin.Context) {
	paths := gin.H{}
	for _, r := range s.routes {
		if r.Hidden {
			continue
		}
		paths[r.Path] = gin.H{
			strings.ToLower(r.Method): gin.H{
				"summary": r.Summary,
				"responses": gin.H{
					"200": gin.H{"description": "Successful Response"},
				},
			},
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"openapi": "3.1.0",
		"info": gin.H{
			"title":   s.Config.SiteName,
			"version": config.AppVersion,
		},
		"paths": paths,
	})
}
