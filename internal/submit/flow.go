// Package submit implements the offline-first order submission flow.
// An order is appended to the local history log before any network
// attempt, the remote API is called exactly once, and the record is
// patched with the outcome. A server rejection is terminal: it is
// recorded and notified but never enqueued or retried. Only a transport
// failure hands the payload to the offline queue.
package submit

//go:generate mockgen -source=internal/submit/flow.go -destination=internal/submit/flow_mock_test.go -package=submit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Kavesh2000/ERP/internal/domain"
	"github.com/Kavesh2000/ERP/internal/erpapi"
	"github.com/Kavesh2000/ERP/internal/orderlog"
)

// ErrBadPayload marks an order the counter rejected locally: nothing was
// stored and no network call was made.
var ErrBadPayload = errors.New("bad order payload")

// Outcome of a submission attempt.
type Outcome string

const (
	OutcomeInvalid   Outcome = "invalid"
	OutcomeConfirmed Outcome = "confirmed"
	OutcomeRejected  Outcome = "rejected"
	OutcomePending   Outcome = "pending"
)

// Receipt reports how a single submission resolved.
type Receipt struct {
	TempID   string
	Outcome  Outcome
	ServerID int64  // zero when the server confirmed without an id
	Err      string // server's rejection message, set only on Rejected
}

type api interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error)
}

type history interface {
	Append(rec domain.LocalOrder) bool
	Patch(tempID string, p orderlog.Patch) bool
}

type queue interface {
	Enqueue(tempID string, req domain.OrderRequest) error
}

type notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

type refresher interface {
	RefreshAfterOrder(ctx context.Context)
}

type metrics interface {
	ObserveSubmit(outcome string, durMs float64)
}

// Flow runs submissions. queue, notify, refresh and metrics may be nil;
// api and history are required.
type Flow struct {
	api     api
	history history
	queue   queue
	notify  notifier
	refresh refresher
	metrics metrics
	logger  *zap.Logger

	now    func() time.Time
	tempID func() string
}

func New(api api, history history, queue queue, notify notifier, refresh refresher, metrics metrics, logger *zap.Logger) *Flow {
	return &Flow{
		api:     api,
		history: history,
		queue:   queue,
		notify:  notify,
		refresh: refresh,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
		tempID:  func() string { return "tmp-" + uuid.NewString() },
	}
}

// Submit runs one full submission: validate, save locally, one remote
// attempt, patch the record with the outcome. The returned error is
// non-nil only for validation failures; rejection and network trouble
// are reported through the Receipt.
func (f *Flow) Submit(ctx context.Context, req domain.OrderRequest) (Receipt, error) {
	start := f.now()

	if err := Validate(req, start); err != nil {
		f.observe(OutcomeInvalid, start)
		return Receipt{Outcome: OutcomeInvalid}, err
	}

	if req.ClientTimestamp == "" {
		req.ClientTimestamp = start.Format(time.RFC3339)
	}

	rec := domain.LocalOrder{
		TempID:    f.tempID(),
		Payload:   req,
		CreatedAt: start,
	}
	if !f.history.Append(rec) {
		// The submission still goes out; the record just won't survive
		// a restart.
		f.logger.Warn("order not persisted locally, continuing",
			zap.String("temp_id", rec.TempID))
	}

	order, err := f.api.CreateOrder(ctx, req)
	if err == nil {
		return f.confirmed(ctx, rec.TempID, order, start), nil
	}

	var apiErr *erpapi.APIError
	if errors.As(err, &apiErr) {
		return f.rejected(rec.TempID, apiErr, start), nil
	}
	return f.pending(rec.TempID, req, err, start), nil
}

func (f *Flow) confirmed(ctx context.Context, tempID string, order *domain.Order, start time.Time) Receipt {
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
	if !f.history.Patch(tempID, p) {
		f.logger.Warn("confirmed order missing from local log",
			zap.String("temp_id", tempID))
	}

	f.refreshPanels(ctx)

	msg := "order recorded"
	if serverID > 0 {
		msg = fmt.Sprintf("order #%d recorded", serverID)
	}
	if f.notify != nil {
		f.notify.Success(msg)
	}
	f.logger.Info("order confirmed",
		zap.String("temp_id", tempID),
		zap.Int64("server_id", serverID))

	f.observe(OutcomeConfirmed, start)
	return Receipt{TempID: tempID, Outcome: OutcomeConfirmed, ServerID: serverID}
}

func (f *Flow) rejected(tempID string, apiErr *erpapi.APIError, start time.Time) Receipt {
	synced := false
	reason := apiErr.Message
	if !f.history.Patch(tempID, orderlog.Patch{Synced: &synced, ServerError: &reason}) {
		f.logger.Warn("rejected order missing from local log",
			zap.String("temp_id", tempID))
	}

	if f.notify != nil {
		f.notify.Error("order rejected: " + reason)
	}
	f.logger.Warn("order rejected by server",
		zap.String("temp_id", tempID),
		zap.Int("status", apiErr.Status),
		zap.String("reason", reason))

	f.observe(OutcomeRejected, start)
	return Receipt{TempID: tempID, Outcome: OutcomeRejected, Err: reason}
}

func (f *Flow) pending(tempID string, req domain.OrderRequest, cause error, start time.Time) Receipt {
	if f.queue != nil {
		if qerr := f.queue.Enqueue(tempID, req); qerr != nil {
			f.logger.Error("offline enqueue failed",
				zap.String("temp_id", tempID), zap.Error(qerr))
		}
	}

	if f.notify != nil {
		f.notify.Info("order saved locally, will sync when back online")
	}
	f.logger.Info("order deferred to offline queue",
		zap.String("temp_id", tempID), zap.Error(cause))

	f.observe(OutcomePending, start)
	return Receipt{TempID: tempID, Outcome: OutcomePending}
}

// refreshPanels must not change the submission outcome, so panics from
// the refresh cascade stop here.
func (f *Flow) refreshPanels(ctx context.Context) {
	if f.refresh == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("panel refresh panicked", zap.Any("panic", r))
		}
	}()
	f.refresh.RefreshAfterOrder(ctx)
}

func (f *Flow) observe(outcome Outcome, start time.Time) {
	if f.metrics == nil {
		return
	}
	f.metrics.ObserveSubmit(string(outcome), float64(f.now().Sub(start).Microseconds())/1000.0)
}
