package web

import (
	"net/http"
	"strings"
	"testing"

	"github.com/miniblog/miniblog/internal/posts"
)

func TestHomePageRendersAllPosts(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodGet, "/home")

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("got content type %q, want text/html", ct)
	}

	body := rec.Body.String()
	for _, p := range posts.List() {
		if !strings.Contains(body, p.Title) {
			t.Errorf("rendered home page missing post title %q", p.Title)
		}
		if !strings.Contains(body, p.Author) {
			t.Errorf("rendered home page missing post author %q", p.Author)
		}
	}
}

func TestHomePageUsesSiteName(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodGet, "/home")

	if !strings.Contains(rec.Body.String(), s.Config.SiteName) {
		t.Errorf("rendered home page missing site name %q", s.Config.SiteName)
	}
}
