// replay is the one-shot companion to counterd: it pushes whatever sits
// in the offline queue (filesystem spool or Kafka relay topic) through
// the submission machinery once and exits. Meant for cron or for a
// manual nudge after a long outage.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Kavesh2000/ERP/internal/config"
	"github.com/Kavesh2000/ERP/internal/erpapi"
	"github.com/Kavesh2000/ERP/internal/localstore"
	"github.com/Kavesh2000/ERP/internal/observability"
	"github.com/Kavesh2000/ERP/internal/orderlog"
	"github.com/Kavesh2000/ERP/internal/pkg/breaker"
	"github.com/Kavesh2000/ERP/internal/pkg/pool"
	"github.com/Kavesh2000/ERP/internal/queue"
)

// drainIdle is how long the Kafka drain waits on an empty topic before
// calling it done.
const drainIdle = 5 * time.Second

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := localstore.New(cfg.Store.DataDir, logger)
	if err != nil {
		logger.Fatal("data dir not usable", zap.String("dir", cfg.Store.DataDir), zap.Error(err))
	}
	history := orderlog.New(store, cfg.Store.HistoryCap, logger)

	client, err := erpapi.New(cfg.API.BaseURL, cfg.API.Timeout, logger)
	if err != nil {
		logger.Fatal("api client not built", zap.Error(err))
	}

	replayer := queue.NewReplayer(client, history, breaker.New(cfg.Breaker), cfg.Retry, logger)

	switch cfg.Queue.Mode {
	case config.QueueKafka:
		drainTopic(ctx, cfg, replayer, logger)
	case config.QueueOff:
		logger.Info("queue mode off, nothing to replay")
	default:
		flushSpool(ctx, cfg, client, replayer, logger)
	}
}

func flushSpool(ctx context.Context, cfg config.Config, client *erpapi.Client, replayer *queue.Replayer, logger *zap.Logger) {
	spool, err := queue.NewSpool(cfg.Queue.SpoolDir, logger)
	if err != nil {
		logger.Fatal("spool dir not usable", zap.String("dir", cfg.Queue.SpoolDir), zap.Error(err))
	}

	workers := pool.New(cfg.Workers)
	defer func() {
		workers.Close()
		workers.Wait()
	}()

	flusher := queue.NewFlusher(client, replayer, spool, workers, 0, observability.NewInmem(128), logger)
	settled, err := flusher.FlushOnce(ctx)
	if err != nil {
		logger.Fatal("flush failed", zap.Int("settled", settled), zap.Error(err))
	}

	remaining := 0
	if items, perr := spool.Pending(); perr == nil {
		remaining = len(items)
	}
	logger.Info("replay finished",
		zap.Int("settled", settled),
		zap.Int("remaining", remaining),
	)
}

func drainTopic(ctx context.Context, cfg config.Config, replayer *queue.Replayer, logger *zap.Logger) {
	reader := queue.NewReader(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.Group)
	defer func() { _ = reader.Close() }()

	consumer := queue.NewConsumer(reader, replayer, logger)
	settled, err := consumer.Drain(ctx, drainIdle)
	if err != nil {
		logger.Fatal("drain failed", zap.Int("settled", settled), zap.Error(err))
	}
	logger.Info("replay finished", zap.Int("settled", settled))
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
