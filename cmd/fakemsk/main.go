// Command fakemsk serves the in-memory MSK test double over HTTP so mskctl and
// other clients can be pointed at it with --endpoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/nandemo-ya/mskgo/internal/fakemsk"
	"github.com/nandemo-ya/mskgo/internal/logging"
	"github.com/nandemo-ya/mskgo/internal/version"
)

type serverOptions struct {
	port        int
	adminPort   int
	region      string
	accountID   string
	settleAfter int
	pageSize    int
	logLevel    string
	logFormat   string
}

func newRootCmd() *cobra.Command {
	opts := &serverOptions{}
	cmd := &cobra.Command{
		Use:           "fakemsk",
		Short:         "Serve an in-memory Amazon MSK control-plane API for local testing",
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.port, "port", 8080, "Port for the MSK API")
	flags.IntVar(&opts.adminPort, "admin-port", 8081, "Port for the admin server (0 disables it)")
	flags.StringVar(&opts.region, "region", "us-east-1", "Region used in ARNs and broker endpoints")
	flags.StringVar(&opts.accountID, "account-id", "123456789012", "Account used in ARNs")
	flags.IntVar(&opts.settleAfter, "settle-after", 1, "Describe calls a pending cluster change takes to settle")
	flags.IntVar(&opts.pageSize, "page-size", 10, "Page size when a list call omits maxResults")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")
	return cmd
}

func runServer(ctx context.Context, opts *serverOptions) error {
	logging.Initialize(&logging.Config{
		Level:  logging.ParseLevel(opts.logLevel),
		Format: opts.logFormat,
		Output: os.Stderr,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	fake := fakemsk.New(
		fakemsk.WithRegion(opts.region),
		fakemsk.WithAccountID(opts.accountID),
		fakemsk.WithSettleAfter(opts.settleAfter),
		fakemsk.WithPageSize(opts.pageSize),
		fakemsk.WithMetrics(reg),
	)

	apiServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.port),
		Handler:           fake,
		ReadHeaderTimeout: 10 * time.Second,
	}
	ln, err := net.Listen("tcp", apiServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", apiServer.Addr, err)
	}

	errCh := make(chan error, 2)
	go func() {
		logging.Info("Starting fake MSK API", "addr", ln.Addr().String(), "region", opts.region)
		if err := apiServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("API server: %w", err)
		}
	}()

	var admin *fakemsk.AdminServer
	if opts.adminPort != 0 {
		admin = fakemsk.NewAdminServer(fmt.Sprintf(":%d", opts.adminPort), fake, reg)
		go func() {
			if err := admin.Start(); err != nil {
				errCh <- fmt.Errorf("admin server: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		logging.Info("Received signal, shutting down gracefully")
	case err = <-errCh:
		logging.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if admin != nil {
		if stopErr := admin.Stop(shutdownCtx); stopErr != nil {
			logging.Error("Error stopping admin server", "error", stopErr)
		}
	}
	if stopErr := apiServer.Shutdown(shutdownCtx); stopErr != nil {
		logging.Error("Error stopping API server", "error", stopErr)
	}
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
