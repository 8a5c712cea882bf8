// Package web provides the HTTP server and web interface for miniblog
package web

import (
	"github.com/gin-gonic/gin"
	"github.com/miniblog/miniblog/internal/models"
	"github.com/miniblog/miniblog/internal/posts"
)

// HomePageData represents data for the home page
type HomePageData struct {
	TemplateData
	Posts []*models.Post
}

// homePage handles "/home" and renders the post listing through home.html
func (s *WebServer) homePage(c *gin.Context) {
	data := HomePageData{
		TemplateData: s.getBaseTemplateData(c, "Home"),
		Posts:        posts.List(),
	}
	s.renderTemplate(c, "home.html", data)
}
