// Package main is the entry point for the PureDesign content server.
// It loads configuration, connects to services, rehydrates the local state,
// syncs with the remote document store, and starts the HTTP server with
// graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"puredesign/internal/config"
	"puredesign/internal/content"
	"puredesign/internal/database"
	"puredesign/internal/docstore"
	"puredesign/internal/handlers"
	"puredesign/internal/router"
	"puredesign/internal/session"
	"puredesign/internal/snapshot"
	"puredesign/internal/state"
	"puredesign/internal/storage"
	"puredesign/internal/store"
	"puredesign/internal/valkey"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"snapshot_backend", cfg.SnapshotBackend,
	)

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("postgres unreachable", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	// Seeding is idempotent; only development gets it.
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("seed failed", "error", err)
			os.Exit(1)
		}
	}

	// Valkey backs sessions and, optionally, the snapshot.
	valkeyClient, err := valkey.Connect(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("valkey unreachable", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Session cookies are Secure everywhere but development.
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Pick the snapshot backend for durable local state.
	var saver snapshot.Saver
	if cfg.SnapshotBackend == "valkey" {
		saver = snapshot.NewValkeyStore(valkeyClient)
	} else {
		saver, err = snapshot.NewFileStore(cfg.SnapshotPath)
		if err != nil {
			slog.Error("snapshot store init failed", "error", err)
			os.Exit(1)
		}
	}

	// Local state: defaults overlaid with the last snapshot.
	st := state.New(saver)

	// Remote document store and the synchronization service.
	docs := docstore.NewPostgres(db)
	svc := content.NewService(st, docs)

	// Initial sync. Failures are logged inside; the site serves local
	// state either way.
	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	svc.FetchGlobalContent(startCtx)
	svc.FetchProjects(startCtx)
	cancelStart()

	userStore := store.NewUserStore(db)

	// Object storage is optional; without it the upload endpoints
	// answer 503.
	var storageClient *storage.Client
	if cfg.S3Enabled() {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey,
			cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("s3 init failed", "error", err)
			os.Exit(1)
		}
		slog.Info("s3 ready", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 not configured, asset uploads disabled")
	}

	adminHandlers := handlers.NewAdmin(st, svc)
	authHandlers := handlers.NewAuth(sessionStore, userStore)
	publicHandlers := handlers.NewPublic(st)
	uploadHandlers := handlers.NewUpload(storageClient)

	r, stopLimiter := router.New(sessionStore, adminHandlers, authHandlers, publicHandlers, uploadHandlers)
	defer stopLimiter()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Serve in a goroutine; main blocks on the shutdown signal below.
	go func() {
		slog.Info("listening", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// On SIGINT/SIGTERM, drain in-flight requests for up to 30s.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown incomplete", "error", err)
		os.Exit(1)
	}

	slog.Info("stopped")
}
