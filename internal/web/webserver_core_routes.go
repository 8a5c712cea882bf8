// Package web provides the HTTP server and web interface for miniblog
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds a method+path to a handler. Hidden routes are registered
// on the router but excluded from the generated API schema. Aliased
// paths are separate entries sharing one handler.
type Route struct {
	Method  string
	Path    string
	Summary string
	Handler gin.HandlerFunc
	Hidden  bool
}

// setupRoutes builds the route table and registers all HTTP routes
func (s *WebServer) setupRoutes() {
	s.routes = []Route{
		// API routes, visible in the generated schema
		{http.MethodGet, "/", "Get Root", s.getRoot, false},
		{http.MethodGet, "/api/v1/posts", "Get Posts", s.getPosts, false},

		// HTML pages, hidden from the schema
		{http.MethodGet, "/about", "About Page", s.aboutPage, true},
		{http.MethodGet, "/page", "About Page", s.aboutPage, true},
		{http.MethodGet, "/home", "Home Page", s.homePage, true},

		// Housekeeping routes
		{http.MethodGet, "/ping", "Health Check", s.ping, true},
		{http.MethodGet, "/robots.txt", "Robots", s.robotsTxt, true},
		{http.MethodGet, "/favicon.ico", "Favicon", s.favicon, true},
		{http.MethodGet, "/api/v1/openapi.json", "API Schema", s.getOpenAPISchema, true},
	}

	for _, r := range s.routes {
		s.Router.Handle(r.Method, r.Path, r.Handler)
	}

	// Static files from the embedded filesystem
	s.Router.GET("/static/*filepath", EmbeddedStaticHandler("/static/"))

	// Handle API base routes so they land somewhere useful
	s.Router.GET("/api", s.redirectToHome)
	s.Router.GET("/api/", s.redirectToHome)
	s.Router.GET("/api/v1", s.redirectToHome)
	s.Router.GET("/api/v1/", s.redirectToHome)
}

// Routes returns a copy of the route table.
func (s *WebServer) Routes() []Route {
	out := make([]Route, len(s.routes))
	copy(out, s.routes)
	return out
}

func (s *WebServer) redirectToHome(c *gin.Context) {
	c.Redirect(http.StatusMovedPermanently, "/home")
}

func (s *WebServer) ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func (s *WebServer) robotsTxt(c *gin.Context) {
	// Check if we have a physical robots.txt file
	if s.robotsTxtPath != "" {
		c.File(s.robotsTxtPath)
	} else {
		// Fallback to inline robots.txt with all allowed
		c.String(http.StatusOK, "User-agent: *\nDisallow:\n")
	}
}

func (s *WebServer) favicon(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
