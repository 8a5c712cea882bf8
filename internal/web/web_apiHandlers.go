// Package web provides the HTTP server and web interface for miniblog
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/miniblog/miniblog/internal/posts"
)

// getRoot handles "/" and returns the greeting JSON
func (s *WebServer) getRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello, World!"})
}

// getPosts handles "/api/v1/posts" and returns the full post table as JSON.
// No filtering, sorting or pagination: the table is five fixed records.
func (s *WebServer) getPosts(c *gin.Context) {
	c.JSON(http.StatusOK, posts.List())
}
