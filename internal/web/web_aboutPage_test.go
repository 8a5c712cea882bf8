package web

import (
	"bytes"
	"net/http"
	"strings"
	"testing"
)

func TestAboutPage(t *testing.T) {
	s := newTestServer()
	rec := doRequest(t, s, http.MethodGet, "/about")

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("got content type %q, want text/html", ct)
	}
	if !strings.Contains(rec.Body.String(), "About This Blog") {
		t.Errorf("body missing %q:\n%s", "About This Blog", rec.Body.String())
	}
}

func TestPageAliasMatchesAbout(t *testing.T) {
	s := newTestServer()
	about := doRequest(t, s, http.MethodGet, "/about")
	page := doRequest(t, s, http.MethodGet, "/page")

	if page.Code != about.Code {
		t.Fatalf("status mismatch: /page %d, /about %d", page.Code, about.Code)
	}
	if !bytes.Equal(page.Body.Bytes(), about.Body.Bytes()) {
		t.Error("/page body differs from /about body")
	}
}
