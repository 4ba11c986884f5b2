package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vishyarjun/fyyur/config"
	_ "github.com/vishyarjun/fyyur/docs"
	"github.com/vishyarjun/fyyur/internal/adapters/email"
	deliveryhttp "github.com/vishyarjun/fyyur/internal/delivery/http"
	"github.com/vishyarjun/fyyur/internal/delivery/http/controllers"
	"github.com/vishyarjun/fyyur/internal/repository/postgres"
	"github.com/vishyarjun/fyyur/internal/services"
)

// @title Fyyur API
// @version 1.0
// @description Venue, artist and show booking API.
// @BasePath /
func main() {
	logger := config.NewLogger()
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := config.SetupTracing(ctx, cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("tracing shutdown failed", "err", err)
		}
	}()

	db, err := postgres.Open(ctx, cfg.DBUrl, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}
	logger.Info("database ready")

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return err
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return err
	}
	notifier := services.NewBookingNotifier(mailer, renderer, cfg.Email.NotifyAddress, logger)

	store := postgres.NewStore(db)
	deps := services.Deps{Logger: logger, Clock: time.Now, ContextTimeout: cfg.RequestTimeout}
	venueService := services.NewVenueService(store, notifier, deps)
	artistService := services.NewArtistService(store, notifier, deps)
	showService := services.NewShowService(store, notifier, deps)

	mux := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Home:   controllers.NewHomeController(logger, store),
		Venue:  controllers.NewVenueController(logger, venueService),
		Artist: controllers.NewArtistController(logger, artistService),
		Show:   controllers.NewShowController(logger, showService),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           deliveryhttp.NewHandler(logger, mux, cfg.CORSAllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
