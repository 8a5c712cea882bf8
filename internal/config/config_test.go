package config

import (
	"testing"
)

func TestDefaultWebConfig(t *testing.T) {
	cfg := DefaultWebConfig()

	if cfg.ListenPort != DefaultListenPort {
		t.Errorf("got port %d, want %d", cfg.ListenPort, DefaultListenPort)
	}
	if cfg.SSL {
		t.Error("SSL should be off by default")
	}
	if cfg.SiteName != DefaultSiteName {
		t.Errorf("got site name %q, want %q", cfg.SiteName, DefaultSiteName)
	}
}
