// cmd/server/main.go
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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/unclebandit/campaign-admin/internal/config"
	"github.com/unclebandit/campaign-admin/internal/db"
	"github.com/unclebandit/campaign-admin/internal/logger"
	"github.com/unclebandit/campaign-admin/internal/model"
	"github.com/unclebandit/campaign-admin/internal/queue"
	"github.com/unclebandit/campaign-admin/internal/repository"
	"github.com/unclebandit/campaign-admin/internal/router"
	"github.com/unclebandit/campaign-admin/internal/service"
)

func main() {
	cfg, loadedDotEnv, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.IsProduction())
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if !loadedDotEnv {
		log.Info("no .env file found, relying on OS environment variables")
	}

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = conn.Close() }()
	log.Info("database ready", zap.String("driver", cfg.DB.Driver))

	if cfg.SeedOnStart {
		if err := seed(ctx, cfg, conn, log); err != nil {
			return err
		}
	}

	q, err := queue.Open(cfg.Queue, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := q.Close(); err != nil {
			log.Warn("close queue", zap.Error(err))
		}
	}()

	// memory queue: there is no separate worker process to consume events
	if cfg.Queue.Driver == config.QueueMemory {
		snapshots := service.NewSnapshotWorker(&repository.HierarchyRepository{DB: conn}, cfg.ExportDir, log)
		err := queue.SubscribeChanges(q, cfg.Queue.Name, log, func(ev model.ChangeEvent) error {
			return snapshots.Handle(context.Background(), ev)
		})
		if err != nil {
			return fmt.Errorf("subscribe snapshot worker: %w", err)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: router.New(router.Options{
			DB:       conn,
			Log:      log,
			Events:   &service.Publisher{Queue: q, Topic: cfg.Queue.Name, Log: log},
			Registry: reg,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.HTTPAddr), zap.String("queue", cfg.Queue.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
