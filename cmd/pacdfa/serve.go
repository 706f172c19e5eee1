package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pacdfa/internal/platform/tui"
)

var (
	serveSource     levelSource
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pacdfa SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game session starting at the first level.
Levels are loaded and validated once; all sessions share the run history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pacdfa/host_key

Examples:
  pacdfa serve                           # Listen on :23234 with auto-generated key
  pacdfa serve --ssh :2222               # Listen on port 2222
  pacdfa serve --host-key ./my_host_key  # Use specific host key
  pacdfa serve --levels ./my-levels      # Serve a custom level directory

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveSource.register(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger()
	app := loadApp(logger)

	pack, defs, err := serveSource.load(app, logger)
	if err != nil {
		fail("%v", err)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = dbPath(app)
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Pack = pack
	cfg.Levels = defs
	cfg.App = app

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Serving pack %s (%d levels) on %s\n", pack, len(defs), cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		fail("server: %v", err)
	}
}
