package observability

import "sync"

// observe is one recorded event; which fields are set depends on Kind.
type observe struct {
	Kind    string
	Panel   string
	Source  string
	Outcome string
	Method  string
	Route   string
	Status  int
	MemMs   float64
	StoreMs float64
	APIMs   float64
	Dur     float64
	OK      bool
}

// Inmem keeps the last max events in a ring plus running cache totals.
// Handy in tests and for the one-shot replay binary.
type Inmem struct {
	mu     sync.Mutex
	last   []observe
	max    int
	totals struct {
		cacheHits, cacheMiss int
	}
}

func NewInmem(max int) *Inmem {
	return &Inmem{
		max: max,
	}
}

func (m *Inmem) push(v observe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[1:]
	}
}

func (m *Inmem) ObserveLoad(panel, source string, memMs, storeMs, apiMs float64) {
	m.push(observe{Kind: "load", Panel: panel, Source: source, MemMs: memMs, StoreMs: storeMs, APIMs: apiMs})
}

func (m *Inmem) ObserveSubmit(outcome string, durMs float64) {
	m.push(observe{Kind: "submit", Outcome: outcome, Dur: durMs})
}

func (m *Inmem) ObserveFlush(durMs float64, ok bool) {
	m.push(observe{Kind: "flush", Dur: durMs, OK: ok})
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.push(observe{Kind: "http", Method: method, Route: route, Status: status, Dur: durMs})
}

func (m *Inmem) IncCacheHit() {
	m.mu.Lock()
	m.totals.cacheHits++
	m.mu.Unlock()
}

func (m *Inmem) IncCacheMiss() {
	m.mu.Lock()
	m.totals.cacheMiss++
	m.mu.Unlock()
}
