package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Kavesh2000/ERP/internal/domain"
)

// Bridge publishes queued payloads to a Kafka relay topic instead of the
// local spool, for shops where a back office replays them. It satisfies
// the same enqueue contract as the Spool.
type Bridge struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewBridge(brokers []string, topic string, logger *zap.Logger) *Bridge {
	return &Bridge{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
			BatchSize:    100,
		},
		logger: logger,
	}
}

// Enqueue marshals the item and publishes it keyed by tempID. The
// submission flow treats enqueue as fire-and-forget, so the write runs
// under its own short deadline rather than the request context.
func (b *Bridge) Enqueue(tempID string, req domain.OrderRequest) error {
	raw, err := json.Marshal(Item{TempID: tempID, Payload: req, QueuedAt: time.Now()})
	if err != nil {
		return fmt.Errorf("marshal queue item: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := b.writer.WriteMessages(ctx, kafka.Message{Key: []byte(tempID), Value: raw}); err != nil {
		return fmt.Errorf("publish to relay topic: %w", err)
	}

	b.logger.Info("order published to relay topic", zap.String("temp_id", tempID))
	return nil
}

func (b *Bridge) Close() error {
	return b.writer.Close()
}

// EnsureTopic guarantees the relay topic exists: if it does not, it is
// created and the call waits until the partitions become visible in the
// metadata. Idempotent and safe for concurrent calls.
func EnsureTopic(ctx context.Context, brokers []string, topic string, numPartitions, replicationFactor int, log *zap.Logger) error {
	if len(brokers) == 0 {
		return fmt.Errorf("no kafka brokers configured")
	}
	if strings.TrimSpace(topic) == "" {
		return fmt.Errorf("empty topic")
	}

	dialer := &kafka.Dialer{Timeout: 10 * time.Second}

	conn, err := dialer.DialContext(ctx, "tcp", brokers[0])
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	defer conn.Close()

	if parts, err := conn.ReadPartitions(topic); err == nil && len(parts) > 0 {
		log.Info("kafka topic exists", zap.String("topic", topic), zap.Int("partitions", len(parts)))
		return nil
	}

	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("get controller: %w", err)
	}
	ctrlAddr := net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port))

	ctrlConn, err := dialer.DialContext(ctx, "tcp", ctrlAddr)
	if err != nil {
		return fmt.Errorf("dial controller %s: %w", ctrlAddr, err)
	}
	defer ctrlConn.Close()

	log.Info("creating kafka topic (if not exists)",
		zap.String("topic", topic),
		zap.Int("partitions", numPartitions),
		zap.Int("replication", replicationFactor),
	)
	err = ctrlConn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     numPartitions,
		ReplicationFactor: replicationFactor,
	})
	if err != nil && !strings.Contains(strings.ToLower(err.Error()), "exists") {
		return fmt.Errorf("create topic: %w", err)
	}

	deadline := time.Now().Add(10 * time.Second)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		parts, err := conn.ReadPartitions(topic)
		if err == nil && len(parts) >= numPartitions {
			log.Info("kafka topic is ready", zap.String("topic", topic), zap.Int("partitions", len(parts)))
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("topic %s not visible after creation", topic)
		}
		time.Sleep(500 * time.Millisecond)
	}
}
