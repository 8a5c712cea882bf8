// Web server for miniblog
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/miniblog/miniblog/internal/config"
	"github.com/miniblog/miniblog/internal/web"
)

var (
	// command-line flags
	webport     int
	webssl      bool
	webcertFile string
	webkeyFile  string
	sitename    string
)

var appVersion = "-unset-"

func main() {
	config.AppVersion = appVersion

	flag.IntVar(&webport, "webport", 0, "Web server port (default: 11980 (no ssl) or 19443 (webssl))")
	flag.BoolVar(&webssl, "webssl", false, "Enable SSL")
	flag.StringVar(&webcertFile, "websslcert", "", "SSL certificate file (/path/to/fullchain.pem)")
	flag.StringVar(&webkeyFile, "websslkey", "", "SSL key file (/path/to/privkey.pem)")
	flag.StringVar(&sitename, "sitename", config.DefaultSiteName, "Site name shown in page titles")
	flag.Parse()

	cfg := config.DefaultWebConfig()
	cfg.SSL = webssl
	cfg.CertFile = webcertFile
	cfg.KeyFile = webkeyFile
	cfg.SiteName = sitename
	switch {
	case webport > 0:
		cfg.ListenPort = webport
	case webssl:
		cfg.ListenPort = config.DefaultSSLPort
	default:
		cfg.ListenPort = config.DefaultListenPort
	}

	server := web.NewServer(cfg)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("[WEB]: server failed: %v", err)
		}
	}()
	log.Printf("[WEB]: miniblog %s listening on port %d", config.AppVersion, cfg.ListenPort)

	// Wait for interrupt
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("[WEB]: received signal %v, shutting down", sig)
}
