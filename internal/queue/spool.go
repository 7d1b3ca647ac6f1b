// Package queue holds orders that could not reach the ERP API. The
// default mode is a file-per-payload spool drained by a periodic
// flusher; an optional Kafka bridge publishes payloads to a relay topic
// instead. Both satisfy the submission flow's fire-and-forget enqueue
// contract: the flow never retries on its own.
package queue

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Kavesh2000/ERP/internal/domain"
)

// Item is one queued submission. Like the other local artifacts it is
// stored in camelCase, not the API wire format.
type Item struct {
	TempID   string              `json:"tempId"`
	Payload  domain.OrderRequest `json:"payload"`
	QueuedAt time.Time           `json:"queuedAt"`
}

// Spool keeps one JSON file per pending order under a directory, so a
// crash between enqueue and flush loses nothing.
type Spool struct {
	dir    string
	logger *zap.Logger
	now    func() time.Time

	mu sync.Mutex
}

func NewSpool(dir string, logger *zap.Logger) (*Spool, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create spool dir: %w", err)
	}
	return &Spool{dir: dir, logger: logger, now: time.Now}, nil
}

// Enqueue writes the payload as <tempID>.json atomically.
func (s *Spool) Enqueue(tempID string, req domain.OrderRequest) error {
	raw, err := json.Marshal(Item{TempID: tempID, Payload: req, QueuedAt: s.now()})
	if err != nil {
		return fmt.Errorf("marshal spool item: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, ".enqueue-*")
	if err != nil {
		return fmt.Errorf("spool temp file: %w", err)
	}
	if _, err = tmp.Write(raw); err == nil {
		err = tmp.Close()
	} else {
		tmp.Close()
	}
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write spool item: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(tempID)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("place spool item: %w", err)
	}

	s.logger.Info("order spooled", zap.String("temp_id", tempID))
	return nil
}

// Pending returns the spooled items oldest first. Unreadable or corrupt
// entries are skipped with a warning and left in place.
func (s *Spool) Pending() ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read spool dir: %w", err)
	}

	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			s.logger.Warn("unreadable spool entry",
				zap.String("file", e.Name()), zap.Error(err))
			continue
		}
		var item Item
		if err := json.Unmarshal(raw, &item); err != nil {
			s.logger.Warn("corrupt spool entry skipped",
				zap.String("file", e.Name()), zap.Error(err))
			continue
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].QueuedAt.Before(items[j].QueuedAt)
	})
	return items, nil
}

// Ack removes a settled item. Acking an absent item is a no-op.
func (s *Spool) Ack(tempID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(tempID)); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("spool ack failed",
			zap.String("temp_id", tempID), zap.Error(err))
	}
}

func (s *Spool) path(tempID string) string {
	return filepath.Join(s.dir, url.QueryEscape(tempID)+".json")
}
