package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/docnav/internal/config"
	"github.com/vango-dev/docnav/internal/watch"
	"github.com/vango-dev/docnav/pkg/manifest"
	"github.com/vango-dev/docnav/pkg/nav"
	"github.com/vango-dev/docnav/pkg/service"
)

func serveCmd() *cobra.Command {
	var (
		port    int
		host    string
		noWatch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the navigation query API",
		Long: `Build the navigation index from the configured manifest and serve
path queries over HTTP.

Endpoints:
  GET /api/nav/lookup      resolve a path to its node
  GET /api/nav/flatten     reading order per channel
  GET /api/nav/sidebar     display list with section headers
  GET /api/nav/breadcrumb  ancestry trail for a path
  GET /api/nav/neighbors   previous/next page in reading order
  GET /api/page            authored page body
  GET /healthz             index health
  GET /metrics             Prometheus metrics
  GET /_docnav/reload      WebSocket rebuild notifications

When the manifest is a local file it is watched for changes and the
index rebuilds in place; a failed rebuild keeps the previous index.

Examples:
  docnav serve
  docnav serve --port=8080
  docnav serve --no-watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host, noWatch)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to bind (default from docnav.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind (default from docnav.json)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not watch the manifest for changes")

	return cmd
}

func runServe(port int, host string, noWatch bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Serve.Port = port
	}
	if host != "" {
		cfg.Serve.Host = host
	}
	if noWatch {
		cfg.Serve.Watch = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src, err := manifestSource(ctx, cfg)
	if err != nil {
		return err
	}

	entries, err := manifest.Load(ctx, src)
	if err != nil {
		return codedError(err)
	}
	tree, err := nav.Build(entries)
	if err != nil {
		return codedError(err)
	}
	ix := nav.NewIndex(tree)

	holder := service.NewHolder(ix)
	srv := service.New(holder, service.Options{
		Logger:  logger,
		Metrics: service.NewMetrics(),
		Content: service.NewDirResolver(cfg.ContentPath()),
	})

	printBanner()
	fmt.Println("  serve")
	fmt.Println()
	success("Index built from %s", src.Describe())
	info("%d stable pages, %d canary pages",
		len(ix.Flatten(nav.ChannelStable)),
		len(ix.Flatten(nav.ChannelCanary)))

	if cfg.Serve.Watch {
		if cfg.HasS3() {
			warn("Manifest watch is only supported for local files")
		} else if err := startWatch(ctx, cfg, srv, src, logger); err != nil {
			return err
		}
	}

	httpServer := &http.Server{
		Addr:    cfg.ServeAddress(),
		Handler: srv.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	info("Listening on http://%s", cfg.ServeAddress())
	fmt.Println()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		fmt.Println("\n\n  Shutting down...")
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	return httpServer.Shutdown(shutdownCtx)
}

// manifestSource picks the configured manifest source. S3 wins when both
// are configured.
func manifestSource(ctx context.Context, cfg *config.Config) (manifest.Source, error) {
	if cfg.HasS3() {
		return manifest.NewS3Source(ctx, cfg.Manifest.S3.Bucket, cfg.Manifest.S3.Key)
	}
	return manifest.NewFileSource(cfg.ManifestPath()), nil
}

// startWatch rebuilds the index whenever the manifest file settles after a
// change.
func startWatch(ctx context.Context, cfg *config.Config, srv *service.Server, src manifest.Source, logger *slog.Logger) error {
	w, err := watch.New(cfg.ManifestPath(), 0, logger)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}

	go func() {
		defer w.Stop()
		for range w.Events() {
			if err := srv.Rebuild(ctx, src); err != nil {
				errorMsg("Rebuild failed: %s", err)
				continue
			}
			success("Index rebuilt, %d frontends notified", srv.Hub().ClientCount())
		}
	}()

	info("Watching %s", cfg.ManifestPath())
	return nil
}
