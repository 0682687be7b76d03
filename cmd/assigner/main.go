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

	"studentpages/internal/app/config"
	httpapi "studentpages/internal/app/http"
	"studentpages/internal/app/http/handler"
	"studentpages/internal/domain/assign"
	"studentpages/internal/domain/catalog"
	"studentpages/internal/infrastructure/async"
	"studentpages/internal/infrastructure/hubspot"
	"studentpages/internal/infrastructure/logging"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logging.NewLogger()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("assigner starting", zap.Int("port", cfg.Port))

	client := hubspot.NewClient(cfg.HubSpotBaseURL, cfg.HubSpotToken, cfg.DefaultTemplateID, log)

	auditBus := async.NewAuditBus(ctx, 4, log)
	defer auditBus.Close()

	catalogSvc := catalog.NewService(client, log)
	assignSvc := assign.NewService(client, auditBus, cfg.EditURL, log)

	h := handler.New(catalogSvc, nil, assignSvc, cfg.DefaultTemplateID, log)
	router := httpapi.NewAssignerRouter(h, log)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}
