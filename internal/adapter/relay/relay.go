// Package relay forwards recovered aggregate payloads to a secondary consumer.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azqueue"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/facts-mng/internal/config"
)

// Message is what the relay forwards for each recovered event.
type Message struct {
	AggregateID string         `json:"aid"`
	EventType   string         `json:"et"`
	ModType     string         `json:"modType"`
	Data        map[string]any `json:"data"`
}

// Sink receives relay messages.
type Sink interface {
	Send(ctx context.Context, msg Message) error
}

// New builds the sink selected by cfg.Driver. rc is only used by the redis driver.
func New(cfg config.RelayConfig, rc *redis.Client) (Sink, error) {
	switch cfg.Driver {
	case config.RelayNone, "":
		return Noop{}, nil
	case config.RelayRedis:
		if rc == nil {
			return nil, fmt.Errorf("relay: redis driver needs a client")
		}
		return NewRedisSink(rc, cfg.Target), nil
	case config.RelayAzQueue:
		return NewAzQueueSink(cfg.ConnectionString, cfg.Target)
	default:
		return nil, fmt.Errorf("relay: unknown driver %q", cfg.Driver)
	}
}

// ---------------------------------------------------------------------------
// Noop
// ---------------------------------------------------------------------------

// Noop discards every message.
type Noop struct{}

func (Noop) Send(context.Context, Message) error { return nil }

// ---------------------------------------------------------------------------
// Azure Storage Queue
// ---------------------------------------------------------------------------

type queueClient interface {
	EnqueueMessage(ctx context.Context, content string, o *azqueue.EnqueueMessageOptions) (azqueue.EnqueueMessagesResponse, error)
}

// AzQueueSink enqueues messages on an Azure Storage Queue.
type AzQueueSink struct {
	queue queueClient
}

// NewAzQueueSink connects to queue using an account connection string.
func NewAzQueueSink(connStr, queue string) (*AzQueueSink, error) {
	opts := azqueue.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{
				MaxRetries:    5,
				TryTimeout:    time.Minute,
				RetryDelay:    time.Second,
				MaxRetryDelay: 30 * time.Second,
				StatusCodes:   []int{408, 429, 500, 502, 503, 504},
			},
		},
	}
	qc, err := azqueue.NewQueueClientFromConnectionString(connStr, queue, &opts)
	if err != nil {
		return nil, fmt.Errorf("relay: azqueue client: %w", err)
	}
	return &AzQueueSink{queue: qc}, nil
}

func (s *AzQueueSink) Send(ctx context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("relay: encode: %w", err)
	}
	if _, err := s.queue.EnqueueMessage(ctx, string(data), nil); err != nil {
		return fmt.Errorf("relay: enqueue %s: %w", msg.AggregateID, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Redis channel
// ---------------------------------------------------------------------------

// RedisSink publishes messages on a Redis channel.
type RedisSink struct {
	rc      *redis.Client
	channel string
}

// NewRedisSink creates a sink publishing on channel.
func NewRedisSink(rc *redis.Client, channel string) *RedisSink {
	return &RedisSink{rc: rc, channel: channel}
}

func (s *RedisSink) Send(ctx context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("relay: encode: %w", err)
	}
	if err := s.rc.Publish(ctx, s.channel, data).Err(); err != nil {
		return fmt.Errorf("relay: publish %s: %w", s.channel, err)
	}
	return nil
}
