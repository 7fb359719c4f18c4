// Serve command runs the REST API over the configured store.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/httpapi"
)

var serveListenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve exposes the contact store over REST:

  GET    /contacts       list all contacts in ascending id order
  GET    /contacts/:id   point lookup
  POST   /contacts       create (400 on validation failure, 409 on duplicate)
  PUT    /contacts/:id   validated partial update
  DELETE /contacts/:id   delete

Example:
  rolodex serve
  rolodex serve --listen :3000 --backend memory`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveListenAddr, "listen", "", "listen address (default: :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	addr := serveListenAddr
	if addr == "" {
		addr = configListenAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := httpapi.NewServer(addr, store, logger)
	return server.Run(ctx)
}
