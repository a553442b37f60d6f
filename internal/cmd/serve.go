package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/willfong/flight-analytics/internal/api"
)

// shutdownTimeout bounds how long in-flight requests may run after a signal
const shutdownTimeout = 10 * time.Second

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analytics views as a JSON HTTP API",
	Long: `Start an HTTP server exposing the dashboard, search and analytics
views as JSON. Every request shares one connection pool.

Routes:
  GET /healthz
  GET /api/dashboard
  GET /api/cities?from=CITY
  GET /api/flights?source=CITY&destination=CITY&sort=price
  GET /api/analytics/airlines
  GET /api/analytics/airports?limit=N
  GET /api/analytics/daily
  GET /api/about

The server runs until interrupted (Ctrl+C).

Example:
  flightdash serve
  flightdash serve --addr 127.0.0.1:9090`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (env FLIGHTDASH_ADDR, default :8080)")
	if err := viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr")); err != nil {
		panic(fmt.Sprintf("binding flag addr: %v", err))
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	u := newUI()
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, svc, err := openService(ctx, u)
	if err != nil {
		return err
	}
	defer pool.Close()

	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.NewRouter(svc, pool, cfg.Display.BusyAirportsLimit, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	fmt.Fprintln(os.Stderr, u.Success("Listening on "+cfg.Server.Addr))

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		fmt.Fprintln(os.Stderr, u.Warning("Received shutdown signal"))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	spin := u.NewSpinner("Stopping server")
	spin.Start()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		spin.Error(err.Error())
		return reportedError{err}
	}
	spin.Success("stopped")

	stats := pool.Stats()
	logger.Info("server stopped", "queries", stats.TotalQueries, "failed", stats.FailedQueries, "avg_latency", stats.AvgLatency)
	return nil
}
