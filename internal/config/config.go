// Package config provides configuration management for miniblog.
package config

var AppVersion = "-unset-" // will be set at build time

const (
	// Default web server ports (SSL port used when -webssl is set without -webport)
	DefaultListenPort = 11980
	DefaultSSLPort    = 19443

	// DefaultSiteName is shown in page titles and the generated API schema
	DefaultSiteName = "miniblog"
)

// WebConfig holds web server configuration
type WebConfig struct {
	ListenPort int    `json:"listen_port"`
	SSL        bool   `json:"ssl"`
	CertFile   string `json:"cert_file,omitempty"`
	KeyFile    string `json:"key_file,omitempty"`
	SiteName   string `json:"site_name"`
}

// DefaultWebConfig returns a WebConfig populated with defaults.
func DefaultWebConfig() *WebConfig {
	return &WebConfig{
		ListenPort: DefaultListenPort,
		SSL:        false,
		SiteName:   DefaultSiteName,
	}
}
