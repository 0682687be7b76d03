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
	"studentpages/internal/domain/catalog"
	"studentpages/internal/domain/pages"
	"studentpages/internal/domain/user"
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

	log.Info("creator starting",
		zap.Int("port", cfg.Port),
		zap.String("default_template_id", cfg.DefaultTemplateID),
	)

	client := hubspot.NewClient(cfg.HubSpotBaseURL, cfg.HubSpotToken, cfg.DefaultTemplateID, log)

	auditBus := async.NewAuditBus(ctx, 4, log)
	defer auditBus.Close()

	catalogSvc := catalog.NewService(client, log)
	userSvc := user.NewService(client, log)
	pagesSvc := pages.NewService(client, userSvc, auditBus, cfg.EditURL, time.Now, log)

	h := handler.New(catalogSvc, pagesSvc, nil, cfg.DefaultTemplateID, log)
	router := httpapi.NewCreatorRouter(h, log)

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
