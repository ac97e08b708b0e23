package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/erika-arcade/internal/config"
	"github.com/vovakirdan/erika-arcade/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the arcade to browsers",
	Long: `Start an HTTP server with a browser client. Each browser tab opens a
WebSocket, runs its own match on the server and receives rendered frames.

Examples:
  arcade web
  arcade web --addr :8080
  ARCADE_WEB_ADDR=0.0.0.0:9000 arcade web`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr",
		config.GetEnv("ARCADE_WEB_ADDR", web.DefaultConfig().Address), "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger("arcade-web", false)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	svc, closeSvc := openServices(ctx, logger)
	defer closeSvc()

	server := web.NewServer(web.Config{
		Address:  flagWebAddr,
		TickRate: flagFPS,
	}, svc)

	fmt.Printf("Serving the arcade on http://%s\n", flagWebAddr)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(ctx); err != nil {
		closeSvc()
		fatalf("%v", err)
	}
}
