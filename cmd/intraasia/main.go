// Package main is the entry point for the IntraAsia site backend.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"intraasia/internal/catalog"
	"intraasia/internal/config"
	"intraasia/internal/database"
	"intraasia/internal/handlers"
	"intraasia/internal/mail"
	"intraasia/internal/middleware"
	"intraasia/internal/router"
	"intraasia/internal/store"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey for contact rate limiting. Optional — without it the
	// site runs fine, contact submissions just aren't throttled.
	var limiter *middleware.RateLimiter
	if cfg.ValkeyHost != "" {
		valkeyClient, err := middleware.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		limiter = middleware.NewRateLimiter(valkeyClient, cfg.ContactRateLimit, cfg.ContactRateWindow)
	} else {
		slog.Warn("valkey not configured — contact rate limiting disabled")
	}

	// Mail delivery for contact submissions. Optional — without an API key
	// the contact endpoint rejects submissions with a friendly error.
	var mailer mail.Sender
	if cfg.MailConfigured() {
		mailer = mail.New(mail.Config{APIKey: cfg.MailAPIKey, BaseURL: cfg.MailBaseURL})
	} else {
		slog.Warn("mail delivery not configured — contact submissions disabled")
	}

	// Catalog service over the normalized product store.
	catalogStore := store.NewCatalogStore(db)
	catalogService := catalog.NewService(catalogStore)

	// Create handler groups with their dependencies.
	catalogHandlers := handlers.NewCatalog(catalogService)
	contactHandlers := handlers.NewContact(mailer, handlers.ContactConfig{
		Recipients: cfg.ContactRecipients,
		Sender:     cfg.ContactSender,
	})
	imageHandlers := handlers.NewImages(cfg.PublicDir)

	// Set up the Chi router with all middleware and routes.
	r := router.New(catalogHandlers, contactHandlers, imageHandlers, limiter, cfg.PublicDir)

	// Create the HTTP server with sensible timeouts. WriteTimeout covers the
	// outbound mail API call on contact submissions.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
