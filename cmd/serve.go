package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/finchline/finchline/internal/config"
	"github.com/finchline/finchline/internal/dependency"
)

var (
	serveHTTPAddr   string
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the finchline MCP server (stdio by default)",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHTTPAddr, "http", "", "Serve over streamable HTTP on this address instead of stdio")
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to the YAML config file")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if serveHTTPAddr != "" {
		cfg.HTTPAddr = serveHTTPAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// stdout belongs to the stdio transport; all logging goes to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	container, err := dependency.New(cfg)
	if err != nil {
		return fmt.Errorf("wire services: %w", err)
	}

	// Graceful shutdown context.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.HTTPAddr != "" {
		return serveHTTP(ctx, container, cfg.HTTPAddr)
	}
	return serveStdio(ctx, container)
}

func serveStdio(ctx context.Context, container *dependency.Container) error {
	stdio := mcpserver.NewStdioServer(container.Server())
	stdio.SetErrorLogger(log.New(os.Stderr, "", log.LstdFlags))

	slog.Info("serving MCP over stdio")
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func serveHTTP(ctx context.Context, container *dependency.Container, addr string) error {
	httpSrv := mcpserver.NewStreamableHTTPServer(container.Server())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return httpSrv.Start(addr) })
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	slog.Info("serving MCP over HTTP", "addr", addr)
	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	fmt.Fprintln(os.Stderr, "Shutdown complete.")
	return nil
}
