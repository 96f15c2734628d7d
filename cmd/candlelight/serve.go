package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/candlelight/internal/platform/tui"
	"github.com/vovakirdan/candlelight/internal/platform/web"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Candlelight servers",
	Long: `Start an SSH server for terminal play and a WebSocket server for browser
clients. Either can be turned off by passing an empty address.

Each SSH connection gets its own session with the mode menu. Saves, progress
and scores are stored per server (all SSH users share one database).
WebSocket clients keep their own saves; the server holds only the live game.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.candlelight/host_key

Examples:
  candlelight serve                          # Addresses from config
  candlelight serve --ssh :2222 --http ""    # SSH only, on port 2222
  candlelight serve --host-key ./host_key    # Use specific host key

Users can connect with:
  ssh localhost -p 23234
  ws://localhost:8080/ws`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "WebSocket server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	catalog := loadCatalog(cfg)

	sshCfg := tui.SSHServerConfigFrom(cfg.Server)
	sshCfg.HostKeyPath = flagHostKey
	sshCfg.DBPath = dbPath(cfg)
	if cmd.Flags().Changed("ssh") {
		sshCfg.Address = flagSSHAddr
	}
	if flagIdleTimeout > 0 {
		sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	httpAddr := cfg.Server.HTTPAddress
	if cmd.Flags().Changed("http") {
		httpAddr = flagHTTPAddr
	}

	if sshCfg.Address == "" && httpAddr == "" {
		fmt.Fprintln(os.Stderr, "Error: nothing to serve, both --ssh and --http are empty")
		os.Exit(1)
	}

	var sshServer *tui.SSHServer
	if sshCfg.Address != "" {
		var err error
		sshServer, err = tui.NewSSHServer(sshCfg, cfg, catalog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("SSH: ssh localhost -p %s\n", port(sshCfg.Address))
	}

	var webServer *web.Server
	if httpAddr != "" {
		webServer = web.NewServer(web.Config{
			Address:     httpAddr,
			IdleTimeout: sshCfg.IdleTimeout,
			VisibleSize: cfg.Queue.VisibleSize,
			Catalog:     catalog,
		})
		go func() {
			if err := webServer.ListenAndServe(); err != nil {
				fmt.Fprintf(os.Stderr, "Web server error: %v\n", err)
			}
		}()
		fmt.Printf("WebSocket: ws://localhost:%s/ws\n", port(httpAddr))
	}
	fmt.Println("Press Ctrl+C to stop")

	// The SSH server blocks on its own signal handling; without it we wait
	// here instead.
	if sshServer != nil {
		if err := sshServer.ListenAndServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		}
	} else {
		done := make(chan os.Signal, 1)
		signal.Notify(done, os.Interrupt, syscall.SIGTERM)
		<-done
	}

	if webServer != nil {
		if err := webServer.Shutdown(); err != nil {
			fmt.Fprintf(os.Stderr, "Web server shutdown error: %v\n", err)
			os.Exit(1)
		}
	}
}

// port returns the port part of a listen address for the hint lines.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
