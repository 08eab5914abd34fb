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

	"github.com/nepalikit/nepalikit"
	"github.com/nepalikit/nepalikit/internal/config"
	"github.com/nepalikit/nepalikit/internal/logging"
	"github.com/nepalikit/nepalikit/internal/presentation/render"
	filecache "github.com/nepalikit/nepalikit/pkg/adapters/file"
	httpadapter "github.com/nepalikit/nepalikit/pkg/adapters/http"
	"github.com/nepalikit/nepalikit/pkg/adapters/memory"
	rediscache "github.com/nepalikit/nepalikit/pkg/adapters/redis"
	"github.com/nepalikit/nepalikit/pkg/ports"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the JSON API over HTTP. The interactive Swagger UI is served at
/swagger and Prometheus metrics at /metrics. Search responses are cached in the
configured backend (in-process memory by default, Redis or on-disk files
optionally).`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			cfg.LogLevel = lvl
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}

		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		logger := logging.NewJSON(level)
		slog.SetDefault(logger)

		cache, err := buildCache(cfg)
		if err != nil {
			fmt.Printf("Error setting up cache: %v\n", err)
			os.Exit(1)
		}
		defer cache.Close()

		handler := httpadapter.NewHandler(
			httpadapter.WithLogger(logger),
			httpadapter.WithCache(cache, time.Duration(cfg.Cache.TTL)),
		)

		srv := &http.Server{
			Addr:    cfg.Server.Addr(),
			Handler: handler,
		}

		if render.IsTerminal() {
			render.PrintBanner(nepalikit.Version)
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("Starting nepalikit server", "addr", srv.Addr, "cache", cfg.Cache.Backend)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("Start shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("Graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("Error killing server", "error", err)
				}
			}
			logger.Info("nepalikit server stopped gracefully")
		}
	},
}

func buildCache(cfg *config.Config) (ports.Cache, error) {
	switch cfg.Cache.Backend {
	case "redis":
		cache := rediscache.New(cfg.Cache.Redis.Addr,
			rediscache.WithPrefix(cfg.Cache.Redis.Prefix),
			rediscache.WithDefaultTTL(time.Duration(cfg.Cache.TTL)),
		)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := cache.Ping(ctx); err != nil {
			cache.Close()
			return nil, fmt.Errorf("redis at %s: %w", cfg.Cache.Redis.Addr, err)
		}
		return cache, nil
	case "file":
		return filecache.NewCache(cfg.Cache.Path), nil
	default:
		return memory.NewCache(), nil
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on (overrides config)")
}
