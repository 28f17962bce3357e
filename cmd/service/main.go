package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/outreach-workspace/internal/client/api"
	"github.com/s21platform/outreach-workspace/internal/client/push"
	"github.com/s21platform/outreach-workspace/internal/config"
	"github.com/s21platform/outreach-workspace/internal/infra"
	"github.com/s21platform/outreach-workspace/internal/pkg/jwt"
	"github.com/s21platform/outreach-workspace/internal/pkg/validator"
	"github.com/s21platform/outreach-workspace/internal/rest"
	"github.com/s21platform/outreach-workspace/internal/store/chat"
	"github.com/s21platform/outreach-workspace/internal/store/sequence"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	apiClient := api.New(cfg)
	defer apiClient.Close()

	jwtSigner := jwt.New(cfg.Push.JWTSecret, cfg.Service.Name)

	pushClient, err := push.New(cfg, jwtSigner)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create push client: %v", err))
		return
	}
	defer pushClient.Close() //nolint:errcheck // .

	vldtr := validator.New()

	chatStore := chat.New(apiClient, vldtr)
	chatStore.Attach(ctx, pushClient)
	defer chatStore.Detach()

	sequenceStore := sequence.New(apiClient, vldtr)
	sequenceStore.Attach(ctx, pushClient)
	defer sequenceStore.Detach()

	chatStore.LoadHistory(ctx)
	sequenceStore.LoadSequences(ctx)

	handler := rest.New(chatStore, sequenceStore)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})

	handler.Register(router)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := pushClient.Run(gCtx); err != nil {
			return fmt.Errorf("push client error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info(fmt.Sprintf("workspace listening on %s", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down HTTP server: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
