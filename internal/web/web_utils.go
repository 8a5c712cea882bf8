// Package web provides the HTTP server and web interface for miniblog
package web

import (
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/miniblog/miniblog/internal/config"
)

// TemplateData represents common template data
type TemplateData struct {
	Title       string
	SiteName    string
	CurrentTime string
	Host        string
	Path        string
	Port        int
	AppVersion  string
}

// GetPort returns the listening port from the config
func (s *WebServer) GetPort() int {
	return s.Config.ListenPort
}

// getBaseTemplateData creates a TemplateData struct with common request information
func (s *WebServer) getBaseTemplateData(c *gin.Context, title string) TemplateData {
	return TemplateData{
		Title:       title,
		SiteName:    s.Config.SiteName,
		CurrentTime: time.Now().Format("2006-01-02 15:04:05"),
		Host:        c.Request.Host,
		Path:        c.Request.URL.Path,
		Port:        s.GetPort(),
		AppVersion:  config.AppVersion,
	}
}

// renderTemplate renders a page template inside base.html and writes the response
func (s *WebServer) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	// Load templates individually to avoid template name conflicts
	tmpl, err := template.ParseFS(EmbeddedTemplatesFS,
		"templates/base.html", "templates/"+templateName)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, "Template error", err.Error())
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := tmpl.ExecuteTemplate(c.Writer, "base.html", data); err != nil {
		s.renderError(c, http.StatusInternalServerError, "Template error", err.Error())
	}
}

// renderError renders an error page
func (s *WebServer) renderError(c *gin.Context, statusCode int, message string, errstring string) {
	errorData := struct {
		TemplateData
		Error      string
		StatusCode int
	}{
		TemplateData: s.getBaseTemplateData(c, "Error"),
		Error:        message,
		StatusCode:   statusCode,
	}
	log.Printf("[ERROR]:internal/web: Error %d: %s - %s", statusCode, message, errstring)

	tmpl, err := template.ParseFS(EmbeddedTemplatesFS,
		"templates/base.html", "templates/error.html")
	if err != nil {
		// Last resort if the error template itself is broken
		c.String(statusCode, "%d %s", statusCode, message)
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(statusCode)
	if err := tmpl.ExecuteTemplate(c.Writer, "base.html", errorData); err != nil {
		log.Printf("[ERROR]:internal/web: failed to render error page: %v", err)
	}
}
