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

	"diamond-price-service/internal/adapters/primary/http/handlers"
	"diamond-price-service/internal/adapters/primary/http/middleware"
	"diamond-price-service/internal/adapters/secondary/codec"
	"diamond-price-service/internal/config"
	"diamond-price-service/internal/core/domain"
	"diamond-price-service/internal/core/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Artifact codecs, tried in configured order
	codecs, err := codec.NewRegistry().Resolve(cfg.Artifact.Codecs)
	if err != nil {
		log.Fatalf("resolve artifact codecs: %v", err)
	}

	// Loaded once for the life of the process
	loader := services.NewArtifactLoader(afero.NewOsFs(), codecs...)
	result := loader.Load(cfg.Artifact.Path)

	switch r := result.(type) {
	case domain.Loaded:
		log.WithFields(log.Fields{"path": r.Path, "codec": r.Codec}).Info("artifact ready")
	case domain.Failed:
		if errors.Is(r.Kind, domain.ErrArtifactMissing) && cfg.Artifact.Required {
			log.Fatalf("%s", r.Message)
		}
		log.WithFields(log.Fields{"path": r.Path, "detail": r.Detail}).Warn(r.Message + "; prediction disabled")
	}

	// Core Services
	formSvc := services.NewFormService()
	predictionSvc := services.NewPredictionService(result)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(formSvc, predictionSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1/diamond-price")
	h.RegisterRoutes(api)

	router.GET("/healthz", h.Health)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
