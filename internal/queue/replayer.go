package queue

//go:generate mockgen -source=internal/queue/replayer.go -destination=internal/queue/replayer_mock_test.go -package=queue

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Kavesh2000/ERP/internal/config"
	"github.com/Kavesh2000/ERP/internal/domain"
	"github.com/Kavesh2000/ERP/internal/erpapi"
	"github.com/Kavesh2000/ERP/internal/orderlog"
	"github.com/Kavesh2000/ERP/internal/pkg/retry"
)

var (
	// ErrCircuitOpen means the breaker refused the attempt; the item
	// stays queued and the flush cycle should end.
	ErrCircuitOpen = errors.New("circuit open")
	// ErrReplay means every retry of the attempt failed on transport;
	// the item stays queued for the next cycle.
	ErrReplay = errors.New("replay failed")
)

type submitter interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error)
}

type recorder interface {
	Patch(tempID string, p orderlog.Patch) bool
}

type brk interface {
	Allow() error
	Success()
	Failure()
}

// Replayer pushes one queued payload through a guarded submission
// attempt and patches the history record with the verdict. Unlike the
// interactive flow it retries transport failures, because nobody is
// waiting at the counter.
type Replayer struct {
	api     submitter
	history recorder
	breaker brk
	policy  config.Retry
	logger  *zap.Logger
}

func NewReplayer(api submitter, history recorder, breaker brk, policy config.Retry, logger *zap.Logger) *Replayer {
	return &Replayer{
		api:     api,
		history: history,
		breaker: breaker,
		policy:  policy,
		logger:  logger,
	}
}

// HandleItem replays one queued payload. A nil return means the item is
// settled (confirmed or terminally rejected) and may be acked;
// ErrCircuitOpen and ErrReplay mean it must stay queued.
func (r *Replayer) HandleItem(ctx context.Context, item Item) error {
	if err := r.breaker.Allow(); err != nil {
		return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}

	var (
		order  *domain.Order
		apiErr *erpapi.APIError
	)
	err := retry.Do(ctx, r.policy, func() error {
		o, callErr := r.api.CreateOrder(ctx, item.Payload)
		if callErr == nil {
			order = o
			return nil
		}
		// A rejection is a server verdict, not a transport fault;
		// stop retrying and settle the record below.
		if errors.As(callErr, &apiErr) {
			return nil
		}
		return callErr
	})
	if err != nil {
		r.breaker.Failure()
		return fmt.Errorf("%w: %v", ErrReplay, err)
	}
	r.breaker.Success()

	if apiErr != nil {
		synced := false
		reason := apiErr.Message
		r.history.Patch(item.TempID, orderlog.Patch{Synced: &synced, ServerError: &reason})
		r.logger.Warn("queued order rejected by server",
			zap.String("temp_id", item.TempID),
			zap.Int("status", apiErr.Status),
			zap.String("reason", reason))
		return nil
	}

	synced := true
	p := orderlog.Patch{Synced: &synced}
	var serverID int64
	if order != nil {
		if order.ID > 0 {
			serverID = order.ID
			p.ServerID = &serverID
		}
		if order.Timestamp != "" {
			p.ServerTS = &order.Timestamp
		}
	}
	r.history.Patch(item.TempID, p)
	r.logger.Info("queued order synced",
		zap.String("temp_id", item.TempID),
		zap.Int64("server_id", serverID))
	return nil
}
