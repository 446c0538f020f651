package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"mlflow-packer/internal/adapters/primary/http/handlers"
	"mlflow-packer/internal/adapters/primary/http/middleware"
	"mlflow-packer/internal/adapters/secondary/dockerengine"
	"mlflow-packer/internal/adapters/secondary/dockerhub"
	"mlflow-packer/internal/adapters/secondary/mlflow"
	"mlflow-packer/internal/config"
	"mlflow-packer/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Secondary adapters
	registry := mlflow.NewClient(cfg.Registry)
	hub := dockerhub.NewClient(cfg.Hub)
	engine, err := dockerengine.NewClient(cfg.Hub)
	if err != nil {
		log.Fatalf("create engine client: %v", err)
	}
	log.Info("container engine client initialized")

	// Core services
	modelSvc := services.NewModelService(registry, cfg.Models.Tags)
	imageSvc := services.NewImageService(modelSvc, hub)
	buildSvc := services.NewBuildService(modelSvc, registry, hub, engine, cfg.Hub, cfg.Build)

	// Primary adapter
	h := handlers.New(modelSvc, imageSvc, buildSvc)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	h.RegisterRoutes(router)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

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
