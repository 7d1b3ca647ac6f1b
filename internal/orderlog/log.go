// Package orderlog keeps the local record of order submission attempts,
// newest first, persisted as one array under a single store key. Records are
// keyed by their client-generated temp id and only ever change through
// Append and Patch; the log itself never deletes records.
package orderlog

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Kavesh2000/ERP/internal/domain"
	"github.com/Kavesh2000/ERP/internal/localstore"
)

//go:generate mockgen -source internal/orderlog/log.go -destination=internal/orderlog/log_mock_test.go -package=orderlog

const storeKey = "orders:history"

type store interface {
	Put(key string, value any) error
	Get(key string, dest any, maxAge time.Duration) localstore.Result
}

// Patch is a partial update for one record. Nil fields are left untouched,
// so "not set" and "set to the zero value" stay distinguishable.
type Patch struct {
	Synced      *bool
	ServerID    *int64
	ServerTS    *string
	ServerError *string
}

type Log struct {
	store  store
	logger *zap.Logger
	cap    int

	mu sync.Mutex
}

// New builds a log over the given store. cap limits the number of retained
// records at append time; 0 keeps everything.
func New(store store, cap int, logger *zap.Logger) *Log {
	return &Log{
		store:  store,
		logger: logger,
		cap:    cap,
	}
}

// List returns all records, newest first. Any read failure degrades to an
// empty list.
func (l *Log) List() []domain.LocalOrder {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list()
}

func (l *Log) list() []domain.LocalOrder {
	recs := make([]domain.LocalOrder, 0)
	res := l.store.Get(storeKey, &recs, 0)
	if !res.OK() {
		if res.Kind != localstore.Miss {
			l.logger.Warn("order history unreadable, treating as empty",
				zap.String("kind", res.Kind.String()),
				zap.Error(res.Err),
			)
		}
		return []domain.LocalOrder{}
	}
	return recs
}

// Append inserts rec at the front and persists the whole list. It reports
// false only when persistence failed.
func (l *Log) Append(rec domain.LocalOrder) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	recs := append([]domain.LocalOrder{rec}, l.list()...)
	if l.cap > 0 && len(recs) > l.cap {
		recs = recs[:l.cap]
	}
	return l.persist(recs)
}

// Patch merges p into the record with the given temp id, preserving its
// position. A missing temp id is a false no-op; callers cannot tell it
// apart from a storage failure.
func (l *Log) Patch(tempID string, p Patch) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	recs := l.list()
	for i := range recs {
		if recs[i].TempID != tempID {
			continue
		}
		if p.Synced != nil {
			recs[i].Synced = *p.Synced
		}
		if p.ServerID != nil {
			id := *p.ServerID
			recs[i].ServerID = &id
		}
		if p.ServerTS != nil {
			recs[i].ServerTS = *p.ServerTS
		}
		if p.ServerError != nil {
			recs[i].ServerError = *p.ServerError
		}
		return l.persist(recs)
	}
	return false
}

func (l *Log) persist(recs []domain.LocalOrder) bool {
	if err := l.store.Put(storeKey, recs); err != nil {
		l.logger.Warn("order history not persisted", zap.Int("records", len(recs)), zap.Error(err))
		return false
	}
	return true
}
