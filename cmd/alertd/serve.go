package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"disaster-alert/internal/config"
	"disaster-alert/internal/delivery/http/route"
	"disaster-alert/internal/mailer"
	mongorepo "disaster-alert/internal/repository/mongodb"
	"disaster-alert/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func serve(c *cli.Context) error {
	cfg, err := config.Load(c.StringSlice("env-file")...)
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Warn("failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	sender, err := mailer.New(cfg.Mailer())
	if err != nil {
		return err
	}
	// Keep the interface nil so the email service reports the provider as unconfigured.
	var m service.Mailer
	if sender != nil {
		m = sender
	} else {
		logger.Warn("COURIER_API is not set, /api/send_email is disabled")
	}

	gin.SetMode(cfg.GinMode)
	app := gin.New()
	route.SetupRoute(app, store, m, route.Options{
		Secret:       cfg.Hash,
		StrictStatus: cfg.StrictHTTPStatus,
		Logger:       logger,
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: app,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.HTTPAddr), zap.String("email_provider", cfg.EmailProvider))
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

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg config.Config) (*mongorepo.Store, error) {
	store, err := mongorepo.Connect(ctx, cfg.MongoURL, cfg.MongoDatabase, cfg.RequestTimeout)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = store.Close(context.Background())
		return nil, err
	}
	return store, nil
}
