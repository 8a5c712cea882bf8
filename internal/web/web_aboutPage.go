// Package web provides the HTTP server and web interface for miniblog
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// aboutHTML is served as-is, no template pass. The /about and /page
// routes both point here and must return byte-identical bodies.
const aboutHTML = `<html>
    <head>
        <title>About Page</title>
    </head>
    <body>
        <h1>About This Blog</h1>
        <p>This blog is created using FastAPI.</p>
    </body>
</html>
`

// aboutPage handles "/about" and its alias "/page"
func (s *WebServer) aboutPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(aboutHTML))
}
