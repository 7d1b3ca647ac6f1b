package observability

// Metrics receives the agent's behavioural events. Implementations must be
// safe for concurrent use.
type Metrics interface {
	// ObserveLoad records a panel data load and which tier served it.
	ObserveLoad(panel, source string, memMs, storeMs, apiMs float64)
	// ObserveSubmit records one submission flow outcome.
	ObserveSubmit(outcome string, durMs float64)
	// ObserveFlush records one queued-order replay attempt.
	ObserveFlush(durMs float64, ok bool)
	ObserveHTTP(method, route string, status int, durMs float64)
	IncCacheHit()
	IncCacheMiss()
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveLoad(string, string, float64, float64, float64) {}
func (Noop) ObserveSubmit(string, float64)                         {}
func (Noop) ObserveFlush(float64, bool)                            {}
func (Noop) ObserveHTTP(string, string, int, float64)              {}
func (Noop) IncCacheHit()                                          {}
func (Noop) IncCacheMiss()                                         {}
