package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	recordsapp "github.com/nvmock/backend/internal/application/records"
	"github.com/nvmock/backend/internal/infrastructure/config"
	"github.com/nvmock/backend/internal/infrastructure/logger"
	"github.com/nvmock/backend/internal/infrastructure/persistence"
	"github.com/nvmock/backend/internal/interfaces/http/handler"
	"github.com/nvmock/backend/internal/interfaces/http/middleware"
	"github.com/nvmock/backend/internal/interfaces/http/router"
	"github.com/nvmock/backend/internal/interfaces/wire"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Netvisor mock",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("data_file", cfg.Mock.DataFile),
	)

	// Load-or-init the record store from the JSON snapshot
	snapshot := persistence.NewSnapshotFile(cfg.Mock.DataFile)
	store, err := recordsapp.NewStore(snapshot)
	if err != nil {
		log.Fatal("Failed to initialize record store", zap.Error(err))
	}

	codec := wire.NewCodec(cfg.Mock.BaseURL, cfg.Mock.InvoicePDF, wire.SystemClock())

	// Set gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	r := router.NewRouter(engine)
	r.Register(handler.NewSystemHandler(store))
	r.Register(handler.NewCustomerHandler(store, codec))
	r.Register(handler.NewSalesInvoiceHandler(store, codec))
	r.Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
