package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/spf13/cobra"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/catalog"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/config"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/handler"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/router"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/usecase"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/pkg/logger"
)

//	@title			AI Agents România Catalog API
//	@version		0.1.0
//	@description	Browsable catalog of AI agent offerings classified by Romanian CAEN industry codes

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

var (
	cfgFile string
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "catalog-apiserver",
	Short: "Catalog API server for AI Agents România",
	Long: `Catalog API server is a high-performance HTTP API server built with Hertz framework.
It serves a read-only catalog of AI agent offerings classified by Romanian CAEN
industry codes and manages stateful browsing sessions on top of it.`,
	Version: version,
	Run:     runServer,
}

func init() {
	// Define flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configs/config.yaml", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	// Load configuration
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	// Log after logger is initialized
	slog.Info("config loaded successfully", "config_file", cfgFile)
	slog.Info("Catalog API server starting...",
		"version", version,
		"config", cfgFile,
	)

	// Setup Hertz to use slog
	hertzLogger := logger.NewHertzSlogAdapter(slog.Default())
	hlog.SetLogger(hertzLogger)
	hlog.SetLevel(hlog.LevelDebug)

	slog.Debug("hertz logger configured to use slog")

	// Load the catalog dataset; the server cannot run without it
	ds, err := catalog.Load(cfg.Catalog.DatasetPath)
	if err != nil {
		slog.Error("failed to load catalog dataset", "error", err, "path", cfg.Catalog.DatasetPath)
		os.Exit(1)
	}

	slog.Info("catalog dataset loaded",
		"categories", len(ds.Categories()),
		"codes", len(ds.Codes()),
		"agents", len(ds.Agents()),
	)

	// Initialize usecases and handlers
	catalogUsecase := usecase.NewCatalogUsecase(ds)
	catalogHandler := handler.NewCatalogHandler(catalogUsecase)

	browseUsecase := usecase.NewBrowseUsecase(ds, cfg.Catalog.SessionTTL, slog.Default())
	sessionHandler := handler.NewSessionHandler(browseUsecase)

	healthHandler := handler.NewHealthHandler(ds)

	slog.Info("handlers initialized")

	// Expired sessions are purged on a fixed interval
	purgeCtx, stopPurge := context.WithCancel(context.Background())
	defer stopPurge()
	go func() {
		ticker := time.NewTicker(cfg.Catalog.PurgeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-purgeCtx.Done():
				return
			case <-ticker.C:
				if n := browseUsecase.PurgeExpired(purgeCtx); n > 0 {
					slog.Debug("purged expired sessions", "count", n)
				}
			}
		}
	}()

	// Create Hertz server with performance optimization
	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.GetReadTimeout()),
		server.WithWriteTimeout(cfg.GetWriteTimeout()),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
		server.WithTransport(netpoll.NewTransporter),
	)

	// Setup routes
	router.Setup(h, catalogHandler, sessionHandler, healthHandler)

	// Start server
	slog.Info("server started successfully",
		"address", cfg.GetServerAddr(),
		"mode", cfg.Server.Mode,
	)

	// Graceful shutdown
	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	stopPurge()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
