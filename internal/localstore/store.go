// Package localstore is the agent's persistence layer: file-per-key JSON
// under a data directory, each value wrapped in a capture-time envelope so
// reads can apply an age constraint. It is a best-effort cache by contract:
// write and delete failures are logged and reported, never escalated, and a
// failed read degrades to absence. Result tells callers that need to know
// whether absence means "never stored", "too old", "corrupt" or "storage
// unavailable".
package localstore

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

const namespace = "erp:"

// Kind classifies the outcome of a read.
type Kind uint8

const (
	// Hit means the value was recovered and satisfied the age constraint.
	Hit Kind = iota
	// Miss means nothing is stored under the key.
	Miss
	// Expired means data exists but is older than the caller's max age.
	Expired
	// Corrupt means the stored bytes could not be decoded.
	Corrupt
	// Unavailable means the storage itself failed (I/O error).
	Unavailable
)

func (k Kind) String() string {
	switch k {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Expired:
		return "expired"
	case Corrupt:
		return "corrupt"
	case Unavailable:
		return "unavailable"
	}
	return "unknown"
}

// Result reports how a read resolved. Callers that only care about presence
// use OK(); the Kind keeps recovered-vs-unavailable distinguishable.
type Result struct {
	Kind       Kind
	CapturedAt time.Time
	Err        error
}

func (r Result) OK() bool { return r.Kind == Hit }

// entry is the stored envelope.
type entry struct {
	CapturedAt time.Time       `json:"capturedAt"`
	Value      json.RawMessage `json:"value"`
}

type Store struct {
	dir    string
	logger *zap.Logger
	now    func() time.Time

	mu sync.Mutex
}

func New(dir string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{
		dir:    dir,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Put stores value under key with the current capture time. The returned
// error is already logged; cache-style callers are free to ignore it.
func (s *Store) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("store put: marshal failed", zap.String("key", key), zap.Error(err))
		return err
	}
	data, err := json.Marshal(entry{CapturedAt: s.now(), Value: raw})
	if err != nil {
		s.logger.Warn("store put: envelope marshal failed", zap.String("key", key), zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := writeAtomic(s.path(key), data); err != nil {
		s.logger.Warn("store put failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Get reads key into dest. maxAge <= 0 means no age constraint. dest is
// only written on a Hit.
func (s *Store) Get(key string, dest any, maxAge time.Duration) Result {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Kind: Miss}
		}
		s.logger.Warn("store get failed", zap.String("key", key), zap.Error(err))
		return Result{Kind: Unavailable, Err: err}
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		s.logger.Warn("store get: corrupt entry", zap.String("key", key), zap.Error(err))
		return Result{Kind: Corrupt, Err: err}
	}

	if maxAge > 0 && s.now().Sub(e.CapturedAt) > maxAge {
		return Result{Kind: Expired, CapturedAt: e.CapturedAt}
	}

	if err := json.Unmarshal(e.Value, dest); err != nil {
		s.logger.Warn("store get: corrupt value", zap.String("key", key), zap.Error(err))
		return Result{Kind: Corrupt, Err: err}
	}
	return Result{Kind: Hit, CapturedAt: e.CapturedAt}
}

// Remove deletes key. Missing keys are not an error.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("store remove failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// path maps a namespaced key to a file name. Query-escaping keeps distinct
// keys distinct and the name filesystem-safe.
func (s *Store) path(key string) string {
	return filepath.Join(s.dir, url.QueryEscape(namespace+key)+".json")
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".put-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
