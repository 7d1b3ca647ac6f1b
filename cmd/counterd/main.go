// counterd is the counter-side agent: it keeps the order history and
// panel captures on local disk, accepts order submissions while the ERP
// API is unreachable, replays the offline queue, and serves the
// dashboards over HTTP and websocket.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Kavesh2000/ERP/internal/appstate"
	"github.com/Kavesh2000/ERP/internal/cache"
	"github.com/Kavesh2000/ERP/internal/config"
	"github.com/Kavesh2000/ERP/internal/domain"
	"github.com/Kavesh2000/ERP/internal/erpapi"
	"github.com/Kavesh2000/ERP/internal/localstore"
	"github.com/Kavesh2000/ERP/internal/observability"
	"github.com/Kavesh2000/ERP/internal/orderlog"
	"github.com/Kavesh2000/ERP/internal/panel"
	"github.com/Kavesh2000/ERP/internal/pkg/breaker"
	"github.com/Kavesh2000/ERP/internal/pkg/pool"
	"github.com/Kavesh2000/ERP/internal/queue"
	"github.com/Kavesh2000/ERP/internal/reports"
	"github.com/Kavesh2000/ERP/internal/submit"
)

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

	reg := prometheus.NewRegistry()
	metrics := observability.NewProm(reg)

	mem, err := cache.New(cfg.Store.CacheCap)
	if err != nil {
		logger.Fatal("cache not built", zap.Error(err))
	}
	mem.Warm(store, reports.CacheKeys())

	state := appstate.New()
	hub := panel.NewHub(logger)
	go hub.Run(ctx)
	state.Subscribe(func(string) {
		hub.Broadcast("state", state.Snapshot())
	})

	workers := pool.New(cfg.Workers)

	loader := reports.New(client, mem, store, workers, cfg.Store.CacheTTL, metrics, logger)
	loader.OnRefresh = func(p string) {
		hub.Broadcast("panel_refresh", map[string]string{"panel": p})
	}

	var (
		spool  *queue.Spool
		bridge *queue.Bridge
	)
	switch cfg.Queue.Mode {
	case config.QueueSpool:
		spool, err = queue.NewSpool(cfg.Queue.SpoolDir, logger)
		if err != nil {
			logger.Fatal("spool dir not usable", zap.String("dir", cfg.Queue.SpoolDir), zap.Error(err))
		}
	case config.QueueKafka:
		if err := queue.EnsureTopic(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic, 1, 1, logger); err != nil {
			logger.Warn("relay topic not verified", zap.Error(err))
		}
		bridge = queue.NewBridge(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		defer func() { _ = bridge.Close() }()
	case config.QueueOff:
		logger.Info("offline queue disabled, unsent orders stay local only")
	}

	var enqueuer interface {
		Enqueue(tempID string, req domain.OrderRequest) error
	}
	switch {
	case spool != nil:
		enqueuer = spool
	case bridge != nil:
		enqueuer = bridge
	}

	notifier := panel.NewNotifier(hub, logger)
	flow := submit.New(client, history, enqueuer, notifier, loader, metrics, logger)

	if spool != nil {
		brk := breaker.New(cfg.Breaker)
		replayer := queue.NewReplayer(client, history, brk, cfg.Retry, logger)
		flusher := queue.NewFlusher(client, replayer, spool, workers, cfg.Queue.FlushInterval, metrics, logger)
		flusher.Online = state.SetOnline
		go flusher.Run(ctx)
	} else {
		// Without a flusher cycle something still has to feed the
		// online indicator.
		go probeLoop(ctx, client, state, cfg.Queue.FlushInterval)
	}

	// Best-effort boot prefetch; the dashboards render sooner when the
	// session and catalog are already in the snapshot.
	go func() {
		bootCtx, cancel := context.WithTimeout(ctx, cfg.API.Timeout+2*time.Second)
		defer cancel()
		if user, err := client.Whoami(bootCtx); err == nil {
			state.SetUser(user)
		}
		if products, err := client.ListProducts(bootCtx); err == nil {
			state.SetProducts(products)
		}
	}()

	srv := panel.New(panel.Deps{
		Flow:           flow,
		History:        history,
		Reports:        loader,
		Session:        client,
		State:          state,
		Hub:            hub,
		Metrics:        metrics,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		StaticDir:      cfg.Panel.StaticDir,
		Logger:         logger,
	})

	if err := srv.ListenAndServe(ctx, cfg.Panel.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("panel server failed", zap.Error(err))
	}

	workers.Close()
	workers.Wait()
	logger.Info("agent stopped")
}

// probeLoop pings the API on the flush cadence so the appstate online
// flag stays honest when no flusher is running.
func probeLoop(ctx context.Context, client *erpapi.Client, state *appstate.State, every time.Duration) {
	if every <= 0 {
		every = 30 * time.Second
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		state.SetOnline(client.Ping(ctx) == nil)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
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
