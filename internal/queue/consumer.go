package queue

//go:generate mockgen -source=internal/queue/consumer.go -destination=internal/queue/consumer_mock_test.go -package=queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Reader is the subset of kafka.Reader the consumer needs.
type Reader interface {
	Config() kafka.ReaderConfig
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// NewReader builds the relay-topic reader for the replay binary.
func NewReader(brokers []string, topic, group string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  group,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})
}

// Consumer drains the relay topic through the replay machinery. Offsets
// are committed one by one, only after the item settles, so nothing is
// lost on a crash mid-drain.
type Consumer struct {
	reader  Reader
	handler handler
	logger  *zap.Logger
}

func NewConsumer(reader Reader, h handler, logger *zap.Logger) *Consumer {
	return &Consumer{reader: reader, handler: h, logger: logger}
}

// Drain consumes queued items until ctx is done or the topic stays idle
// for idleAfter. It returns the number of settled items; an unsettled
// item ends the drain with its offset uncommitted so the next run
// retries it.
func (c *Consumer) Drain(ctx context.Context, idleAfter time.Duration) (int, error) {
	rc := c.reader.Config()
	c.logger.Info("draining relay topic",
		zap.Strings("brokers", rc.Brokers),
		zap.String("group", rc.GroupID),
		zap.String("topic", rc.Topic),
	)

	settled := 0
	for {
		if ctx.Err() != nil {
			return settled, nil
		}

		fetchCtx, cancel := context.WithTimeout(ctx, idleAfter)
		msg, err := c.reader.FetchMessage(fetchCtx)
		cancel()
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || isBenignFetchTimeout(err) {
				// Idle topic or shutdown: the drain is done.
				return settled, nil
			}
			return settled, fmt.Errorf("fetch message: %w", err)
		}

		var item Item
		if err := json.Unmarshal(msg.Value, &item); err != nil {
			c.logger.Warn("corrupt relay message skipped",
				zap.Int64("offset", msg.Offset), zap.Error(err))
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				return settled, fmt.Errorf("commit offset: %w", err)
			}
			continue
		}

		if err := c.handler.HandleItem(ctx, item); err != nil {
			c.logger.Warn("item not settled, leaving offset uncommitted",
				zap.String("temp_id", item.TempID),
				zap.Int64("offset", msg.Offset),
				zap.Error(err))
			return settled, err
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			return settled, fmt.Errorf("commit offset: %w", err)
		}
		settled++
	}
}

func isBenignFetchTimeout(err error) bool {
	s := err.Error()
	return strings.Contains(s, "Request Timed Out") ||
		strings.Contains(s, "no messages received from kafka within the allocated time")
}
