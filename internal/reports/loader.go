// Package reports builds the dashboard panels: each loader pulls one or
// two API resources through the two-tier cache (memory over the
// persistent store) and aggregates them locally, so panels keep working
// from the last captured data while the API is away.
package reports

//go:generate mockgen -source=internal/reports/loader.go -destination=internal/reports/loader_mock_test.go -package=reports

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Kavesh2000/ERP/internal/domain"
	"github.com/Kavesh2000/ERP/internal/localstore"
	"github.com/Kavesh2000/ERP/internal/observability"
	"github.com/Kavesh2000/ERP/internal/pkg/pool"
)

// Panel cache keys, one per API resource. Price history is cached per
// product under keyPriceHistory(id).
const (
	keyOrders         = "panels:orders"
	keyProducts       = "panels:products"
	keyStock          = "panels:stock"
	keySources        = "panels:sources"
	keyProductSources = "panels:product_sources"
	keyMovements      = "panels:movements"
	keyDailySummary   = "panels:daily_summary"
)

func keyPriceHistory(productID int64) string {
	return fmt.Sprintf("panels:price_history:%d", productID)
}

// CacheKeys lists the fixed keys the loader populates, for warming the
// memory tier from the persistent store at boot. Per-product keys warm
// on first access instead.
func CacheKeys() []string {
	return []string{
		keyOrders, keyProducts, keyStock, keySources,
		keyProductSources, keyMovements, keyDailySummary,
	}
}

type api interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListStock(ctx context.Context) ([]domain.StockRecord, error)
	ListSources(ctx context.Context) ([]domain.Source, error)
	ListProductSources(ctx context.Context) ([]domain.ProductSource, error)
	ListMovements(ctx context.Context) ([]domain.Movement, error)
	ProductPriceHistory(ctx context.Context, productID int64) ([]domain.PriceChange, error)
	DailySummary(ctx context.Context) (*domain.DailySummary, error)
}

type memCache interface {
	Get(key string, maxAge time.Duration) ([]byte, bool)
	Set(key string, raw []byte)
	SetAt(key string, raw []byte, capturedAt time.Time)
	Remove(key string)
}

type store interface {
	Get(key string, dest any, maxAge time.Duration) localstore.Result
	Put(key string, value any) error
	Remove(key string) error
}

type Loader struct {
	api     api
	mem     memCache
	store   store
	workers *pool.Pool
	ttl     time.Duration
	logger  *zap.Logger
	metrics observability.Metrics
	now     func() time.Time

	// OnRefresh, when set, is called with the panel name after the
	// refresh cascade reloads it (the websocket hub broadcasts it).
	OnRefresh func(panel string)
}

func New(api api, mem memCache, store store, workers *pool.Pool, ttl time.Duration, metrics observability.Metrics, logger *zap.Logger) *Loader {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Loader{
		api:     api,
		mem:     mem,
		store:   store,
		workers: workers,
		ttl:     ttl,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
}

// fetch serves one API resource through the tiers: memory, then the
// persistent store, then the API. Whichever tier answers repopulates the
// tiers above it; an API answer is captured in both.
func fetch[T any](ctx context.Context, l *Loader, panel, key string, call func(context.Context) (T, error)) (T, LoadStats, error) {
	st := LoadStats{Panel: panel}

	tMem := time.Now()
	if raw, ok := l.mem.Get(key, l.ttl); ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			st.Source = SourceMemory
			st.MemMs = convertToMs(tMem)
			l.metrics.IncCacheHit()
			l.metrics.ObserveLoad(panel, string(st.Source), st.MemMs, 0, 0)
			l.logger.Debug("panel served from memory",
				zap.String("panel", panel),
				zap.Float64("mem_ms", st.MemMs),
			)
			return v, st, nil
		}
		l.mem.Remove(key)
	}
	l.metrics.IncCacheMiss()
	st.MemMs = convertToMs(tMem)

	tStore := time.Now()
	var raw json.RawMessage
	if res := l.store.Get(key, &raw, l.ttl); res.OK() {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			st.Source = SourceStore
			st.StoreMs = convertToMs(tStore)
			l.mem.SetAt(key, raw, res.CapturedAt)
			l.metrics.ObserveLoad(panel, string(st.Source), st.MemMs, st.StoreMs, 0)
			l.logger.Info("panel served from store",
				zap.String("panel", panel),
				zap.Float64("store_ms", st.StoreMs),
			)
			return v, st, nil
		}
	}
	st.StoreMs = convertToMs(tStore)

	tAPI := time.Now()
	v, err := call(ctx)
	if err != nil {
		l.logger.Warn("panel load failed",
			zap.String("panel", panel),
			zap.Error(err),
		)
		var zero T
		return zero, st, err
	}
	st.Source = SourceAPI
	st.APIMs = convertToMs(tAPI)

	if captured, merr := json.Marshal(v); merr == nil {
		l.mem.Set(key, captured)
		_ = l.store.Put(key, json.RawMessage(captured))
	}

	l.metrics.ObserveLoad(panel, string(st.Source), st.MemMs, st.StoreMs, st.APIMs)
	l.logger.Info("panel served from api",
		zap.String("panel", panel),
		zap.Float64("api_ms", st.APIMs),
	)
	return v, st, nil
}

func (l *Loader) orders(ctx context.Context, panel string) ([]domain.Order, LoadStats, error) {
	return fetch(ctx, l, panel, keyOrders, l.api.ListOrders)
}

func (l *Loader) products(ctx context.Context, panel string) ([]domain.Product, LoadStats, error) {
	return fetch(ctx, l, panel, keyProducts, l.api.ListProducts)
}

// SalesByDate groups orders by calendar day.
func (l *Loader) SalesByDate(ctx context.Context) ([]DateRow, LoadStats, error) {
	orders, st, err := l.orders(ctx, "sales_by_date")
	if err != nil {
		return nil, st, err
	}
	return AggregateSalesByDate(orders), st, nil
}

// SalesByPayment splits orders into the Cash and Mpesa buckets.
func (l *Loader) SalesByPayment(ctx context.Context) ([]PaymentRow, LoadStats, error) {
	orders, st, err := l.orders(ctx, "sales_by_payment")
	if err != nil {
		return nil, st, err
	}
	return AggregateSalesByPayment(orders), st, nil
}

// SalesByCategory joins orders to the product catalog and groups revenue
// by product category.
func (l *Loader) SalesByCategory(ctx context.Context) ([]CategoryRow, LoadStats, error) {
	orders, stOrders, err := l.orders(ctx, "sales_by_category")
	if err != nil {
		return nil, stOrders, err
	}
	products, stProducts, err := l.products(ctx, "sales_by_category")
	if err != nil {
		return nil, stOrders.merge(stProducts), err
	}
	return AggregateSalesByCategory(orders, products), stOrders.merge(stProducts), nil
}

// StockLevels reports current stock with low-stock flags.
func (l *Loader) StockLevels(ctx context.Context) ([]StockRow, LoadStats, error) {
	stock, st, err := fetch(ctx, l, "stock", keyStock, l.api.ListStock)
	if err != nil {
		return nil, st, err
	}
	return BuildStockLevels(stock), st, nil
}

// Movements passes the stock movement history through.
func (l *Loader) Movements(ctx context.Context) ([]domain.Movement, LoadStats, error) {
	return fetch(ctx, l, "movements", keyMovements, l.api.ListMovements)
}

// SourceOverview joins water sources to the products they supply.
func (l *Loader) SourceOverview(ctx context.Context) ([]SourceRow, LoadStats, error) {
	sources, stSources, err := fetch(ctx, l, "sources", keySources, l.api.ListSources)
	if err != nil {
		return nil, stSources, err
	}
	supplies, stSupplies, err := fetch(ctx, l, "sources", keyProductSources, l.api.ListProductSources)
	if err != nil {
		return nil, stSources.merge(stSupplies), err
	}
	return BuildSourceOverview(sources, supplies), stSources.merge(stSupplies), nil
}

// PriceHistory passes one product's recorded price changes through.
func (l *Loader) PriceHistory(ctx context.Context, productID int64) ([]domain.PriceChange, LoadStats, error) {
	return fetch(ctx, l, "price_history", keyPriceHistory(productID),
		func(ctx context.Context) ([]domain.PriceChange, error) {
			return l.api.ProductPriceHistory(ctx, productID)
		})
}

// Daily passes the server-computed daily summary through.
func (l *Loader) Daily(ctx context.Context) (*domain.DailySummary, LoadStats, error) {
	return fetch(ctx, l, "daily_summary", keyDailySummary, l.api.DailySummary)
}

// RefreshAfterOrder invalidates and reloads the panels a confirmed order
// changes: orders (all three sales panels share that resource), stock
// and the daily summary. Reloads run through the worker pool, each one
// guarded independently and detached from the request's cancellation, so
// a broken panel can neither fail the submission nor starve the others.
func (l *Loader) RefreshAfterOrder(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	l.invalidate(keyOrders)
	l.invalidate(keyStock)
	l.invalidate(keyDailySummary)

	jobs := []struct {
		panel string
		run   func(context.Context) error
	}{
		{"sales_by_date", func(ctx context.Context) error {
			_, _, err := l.SalesByDate(ctx)
			return err
		}},
		{"stock", func(ctx context.Context) error {
			_, _, err := l.StockLevels(ctx)
			return err
		}},
		{"daily_summary", func(ctx context.Context) error {
			_, _, err := l.Daily(ctx)
			return err
		}},
	}

	for _, job := range jobs {
		job := job
		l.workers.Submit(func() {
			defer func() {
				if r := recover(); r != nil {
					l.logger.Error("panel refresh panicked",
						zap.String("panel", job.panel),
						zap.Any("panic", r),
					)
				}
			}()
			if err := job.run(ctx); err != nil {
				l.logger.Warn("panel refresh failed",
					zap.String("panel", job.panel),
					zap.Error(err),
				)
				return
			}
			if l.OnRefresh != nil {
				l.OnRefresh(job.panel)
			}
		})
	}
}

func (l *Loader) invalidate(key string) {
	l.mem.Remove(key)
	if err := l.store.Remove(key); err != nil {
		l.logger.Warn("stale panel capture not removed",
			zap.String("key", key), zap.Error(err))
	}
}
