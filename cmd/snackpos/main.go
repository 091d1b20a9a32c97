package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"snackpos/internal/cart"
	"snackpos/internal/catalog"
	"snackpos/internal/config"
	"snackpos/internal/events"
	apphttp "snackpos/internal/http"
	applog "snackpos/internal/log"
	"snackpos/internal/reports"
	"snackpos/internal/sales"
	"snackpos/internal/store"
)

func main() {
	// .env is optional; real environment wins either way
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	backend, err := store.Open(store.Config{
		Driver: cfg.StoreDriver,
		DBPath: cfg.SQLiteDBPath,
	})
	if err != nil {
		logger.Error("Failed to open store", "error", err, "driver", cfg.StoreDriver)
		os.Exit(1)
	}
	tables := store.NewTables(backend)
	defer tables.Close()
	logger.Info("Initialized store", "driver", cfg.StoreDriver)

	var eventsClient *events.Client
	if cfg.AMQPURL != "" {
		eventsClient, err = events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
		} else {
			defer eventsClient.Close()
			logger.Info("Initialized sale events publisher",
				"exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	catalogSvc := catalog.NewService(tables)
	cartSvc := cart.NewService(tables)
	salesSvc := sales.NewService(tables, eventsClient)
	reportsSvc := reports.NewService(tables)

	srv := apphttp.NewServer(":"+cfg.Port, catalogSvc, cartSvc, salesSvc, reportsSvc, apphttp.Options{
		ReportCacheSize: cfg.ReportCacheSize,
		ReportCacheTTL:  cfg.ReportCacheTTL,
	})
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting snackpos server", "port", cfg.Port, "driver", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
