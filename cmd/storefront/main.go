package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/fakhama-store/storefront/internal/advice"
	"github.com/fakhama-store/storefront/internal/auth"
	"github.com/fakhama-store/storefront/internal/catalog"
	"github.com/fakhama-store/storefront/internal/chat"
	"github.com/fakhama-store/storefront/internal/httpserver"
	"github.com/fakhama-store/storefront/internal/platform/config"
	"github.com/fakhama-store/storefront/internal/platform/observability"
	"github.com/fakhama-store/storefront/internal/reporting"
)

func main() {
	logger, err := observability.NewLogger()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Fatal("storefront exited", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cat, err := catalog.Load()
	if err != nil {
		return err
	}
	logger.Info("catalog loaded", zap.Int("products", cat.Len()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The advice credential is optional; without it the widget answers with
	// its local fallback and never attempts a call.
	var generator advice.Generator
	if cfg.AdviceConfigured() {
		gem, err := advice.NewGeminiGenerator(ctx, cfg.Advice.APIKey, cfg.Advice.Model)
		if err != nil {
			return err
		}
		generator = gem
		logger.Info("advice widget configured", zap.String("model", cfg.Advice.Model))
	} else {
		logger.Info("advice credential absent, widget will use local fallback")
	}

	server := httpserver.New(httpserver.Config{
		Catalog:    cat,
		Reports:    reporting.NewStaticService(),
		Advice:     advice.NewService(generator, logger),
		Auth:       auth.NewService(time.Duration(cfg.Auth.SignInDelayMS) * time.Millisecond),
		Logger:     logger,
		CookieName: cfg.Session.CookieName,
		SigningKey: []byte(cfg.Session.SigningKey),
		ChatOpts: chat.Options{
			ReplyDelay: time.Duration(cfg.Chat.ReplyDelayMS) * time.Millisecond,
		},
	})

	httpSrv := server.HTTPServer(
		cfg.Server.Addr,
		time.Duration(cfg.Server.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.Server.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.Server.IdleTimeoutSec)*time.Second,
	)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("storefront listening", zap.String("addr", cfg.Server.Addr))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}
