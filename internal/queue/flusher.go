package queue

//go:generate mockgen -source=internal/queue/flusher.go -destination=internal/queue/flusher_mock_test.go -package=queue

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Kavesh2000/ERP/internal/pkg/pool"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type handler interface {
	HandleItem(ctx context.Context, item Item) error
}

type spooler interface {
	Pending() ([]Item, error)
	Ack(tempID string)
}

type flushMetrics interface {
	ObserveFlush(durMs float64, ok bool)
}

// Flusher drains the spool whenever the API is reachable again.
type Flusher struct {
	api      pinger
	handler  handler
	spool    spooler
	workers  *pool.Pool
	interval time.Duration
	metrics  flushMetrics
	logger   *zap.Logger
	now      func() time.Time

	// Online, when set, receives the result of every reachability
	// probe (the application state subscribes here).
	Online func(bool)
}

func NewFlusher(api pinger, h handler, spool spooler, workers *pool.Pool, interval time.Duration, metrics flushMetrics, logger *zap.Logger) *Flusher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Flusher{
		api:      api,
		handler:  h,
		spool:    spool,
		workers:  workers,
		interval: interval,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// Run flushes once immediately, then on every tick until ctx is done, so
// a restart with a full spool does not wait out a whole interval.
func (f *Flusher) Run(ctx context.Context) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	f.FlushOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			f.logger.Info("flusher stopped")
			return
		case <-ticker.C:
			f.FlushOnce(ctx)
		}
	}
}

// FlushOnce probes the API and, when reachable, replays pending items
// oldest first through the worker pool. Settled items are acked. An open
// circuit or a transport failure ends the cycle, leaving the remainder
// for the next one; only a spool read error is returned. The settled
// count is reported either way.
func (f *Flusher) FlushOnce(ctx context.Context) (int, error) {
	start := f.now()

	if err := f.api.Ping(ctx); err != nil {
		f.setOnline(false)
		f.logger.Debug("api unreachable, keeping spool", zap.Error(err))
		f.observe(start, false)
		return 0, nil
	}
	f.setOnline(true)

	items, err := f.spool.Pending()
	if err != nil {
		f.observe(start, false)
		return 0, err
	}
	if len(items) == 0 {
		f.observe(start, true)
		return 0, nil
	}

	settled := 0
	for _, item := range items {
		item := item
		err := f.workers.Do(func() error {
			return f.handler.HandleItem(ctx, item)
		})
		switch {
		case err == nil:
			f.spool.Ack(item.TempID)
			settled++
		case errors.Is(err, ErrCircuitOpen):
			f.logger.Warn("circuit open, ending flush cycle",
				zap.Int("settled", settled),
				zap.Int("remaining", len(items)-settled))
			f.observe(start, false)
			return settled, nil
		default:
			f.logger.Warn("replay failed, ending flush cycle",
				zap.String("temp_id", item.TempID),
				zap.Int("settled", settled),
				zap.Error(err))
			f.observe(start, false)
			return settled, nil
		}
	}

	f.logger.Info("spool flushed", zap.Int("settled", settled))
	f.observe(start, true)
	return settled, nil
}

func (f *Flusher) setOnline(v bool) {
	if f.Online != nil {
		f.Online(v)
	}
}

func (f *Flusher) observe(start time.Time, ok bool) {
	if f.metrics == nil {
		return
	}
	f.metrics.ObserveFlush(float64(f.now().Sub(start).Microseconds())/1000.0, ok)
}
