package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Prom exports the Metrics events to a Prometheus registry. Durations
// arrive in milliseconds and are published in seconds per convention.
type Prom struct {
	loads     *prometheus.HistogramVec
	submits   *prometheus.CounterVec
	submitDur *prometheus.HistogramVec
	flushes   *prometheus.HistogramVec
	httpReqs  *prometheus.CounterVec
	httpDur   *prometheus.HistogramVec
	cacheHits prometheus.Counter
	cacheMiss prometheus.Counter
}

func NewProm(reg prometheus.Registerer) *Prom {
	p := &Prom{
		loads: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "erp_panel_load_duration_seconds",
			Help:    "Panel data load time by serving tier.",
			Buckets: prometheus.DefBuckets,
		}, []string{"panel", "source"}),
		submits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "erp_submit_total",
			Help: "Order submission flow invocations by outcome.",
		}, []string{"outcome"}),
		submitDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "erp_submit_duration_seconds",
			Help:    "Order submission flow duration by outcome.",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
		flushes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "erp_flush_duration_seconds",
			Help:    "Queued-order replay duration.",
			Buckets: prometheus.DefBuckets,
		}, []string{"ok"}),
		httpReqs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "erp_http_requests_total",
			Help: "Panel HTTP requests.",
		}, []string{"method", "route", "code"}),
		httpDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "erp_http_request_duration_seconds",
			Help:    "Panel HTTP request duration.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "erp_cache_hits_total",
			Help: "Hot-tier cache hits.",
		}),
		cacheMiss: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "erp_cache_misses_total",
			Help: "Hot-tier cache misses.",
		}),
	}
	reg.MustRegister(
		p.loads, p.submits, p.submitDur, p.flushes,
		p.httpReqs, p.httpDur, p.cacheHits, p.cacheMiss,
	)
	return p
}

func (p *Prom) ObserveLoad(panel, source string, memMs, storeMs, apiMs float64) {
	p.loads.WithLabelValues(panel, source).Observe((memMs + storeMs + apiMs) / 1000.0)
}

func (p *Prom) ObserveSubmit(outcome string, durMs float64) {
	p.submits.WithLabelValues(outcome).Inc()
	p.submitDur.WithLabelValues(outcome).Observe(durMs / 1000.0)
}

func (p *Prom) ObserveFlush(durMs float64, ok bool) {
	p.flushes.WithLabelValues(strconv.FormatBool(ok)).Observe(durMs / 1000.0)
}

func (p *Prom) ObserveHTTP(method, route string, status int, durMs float64) {
	p.httpReqs.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.httpDur.WithLabelValues(method, route).Observe(durMs / 1000.0)
}

func (p *Prom) IncCacheHit()  { p.cacheHits.Inc() }
func (p *Prom) IncCacheMiss() { p.cacheMiss.Inc() }
