package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-admin/internal/config"
	"github.com/unclebandit/campaign-admin/internal/db"
	"github.com/unclebandit/campaign-admin/internal/logger"
	"github.com/unclebandit/campaign-admin/internal/model"
	"github.com/unclebandit/campaign-admin/internal/queue"
	"github.com/unclebandit/campaign-admin/internal/repository"
	"github.com/unclebandit/campaign-admin/internal/service"
)

// The worker consumes change events from RabbitMQ and keeps the complete
// hierarchy export in EXPORT_DIR up to date.
func main() {
	cfg, _, err := config.Load()
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

	if cfg.Queue.Driver != config.QueueAMQP {
		log.Fatal("worker needs QUEUE_DRIVER=amqp", zap.String("queue_driver", cfg.Queue.Driver))
	}

	conn, err := db.Open(cfg.DB)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer func() { _ = conn.Close() }()

	q, err := queue.DialAMQP(cfg.Queue.AMQPURL, log)
	if err != nil {
		log.Fatal("failed to connect to RabbitMQ", zap.Error(err))
	}
	defer func() { _ = q.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := service.NewSnapshotWorker(&repository.HierarchyRepository{DB: conn}, cfg.ExportDir, log)
	if err := consume(ctx, q, cfg.Queue.Name, w, log); err != nil {
		log.Fatal("failed to start consumer", zap.Error(err))
	}

	log.Info("worker running, waiting for messages", zap.String("queue", cfg.Queue.Name))
	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case amqpErr := <-q.NotifyClose():
		log.Error("queue connection closed", zap.Any("reason", amqpErr))
	}
}

// consume writes an initial snapshot and then refreshes it on every change
// event arriving on topic.
func consume(ctx context.Context, q queue.Queue, topic string, w *service.SnapshotWorker, log *zap.Logger) error {
	if err := w.Write(ctx); err != nil {
		return fmt.Errorf("initial snapshot: %w", err)
	}
	return queue.SubscribeChanges(q, topic, log, func(ev model.ChangeEvent) error {
		return w.Handle(ctx, ev)
	})
}
