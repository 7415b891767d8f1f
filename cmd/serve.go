// =============================================================================
// OCF Ledger Converter - Serve Command
// =============================================================================
//
// COMMAND USAGE:
//   ocfconv serve [--listen :8080]
//
// Runs the HTTP adapter until SIGINT or SIGTERM.
//
// =============================================================================

package cmd

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the converter over HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", "", "Listen address (default from server.listen_addr)")
	if err := v.BindPFlag("server.listen_addr", serveCmd.Flags().Lookup("listen")); err != nil {
		panic(err)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	gate, err := newVersionGate()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(newCodec(), gate, logger)
	if err := srv.ListenAndServe(ctx, mainConfig.Server.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
