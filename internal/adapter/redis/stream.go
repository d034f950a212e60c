package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

const eventField = "event"

// StreamMessage is one entry read from the event stream. Err is set when the
// entry could not be decoded; it must still be acknowledged.
type StreamMessage struct {
	ID    string
	Event domain.Event
	Err   error
}

// EventStream publishes domain events to a Redis stream and reads them back
// through a consumer group.
type EventStream struct {
	rc       *redis.Client
	stream   string
	group    string
	consumer string
	block    time.Duration
}

// NewEventStream creates a stream handle. consumer names this process inside group.
func NewEventStream(rc *redis.Client, stream, group, consumer string, block time.Duration) *EventStream {
	return &EventStream{rc: rc, stream: stream, group: group, consumer: consumer, block: block}
}

// Publish appends e to the stream.
func (s *EventStream) Publish(ctx context.Context, e domain.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	err = s.rc.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{eventField: string(data)},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", s.stream, err)
	}
	return nil
}

// EnsureGroup creates the consumer group (and the stream) if missing.
// New groups start at the end of the stream; history is covered by Sync.
func (s *EventStream) EnsureGroup(ctx context.Context) error {
	err := s.rc.XGroupCreateMkStream(ctx, s.stream, s.group, "$").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("create group %s: %w", s.group, err)
	}
	return nil
}

// Read returns up to count new entries for this consumer, blocking for the
// configured timeout. An empty slice means the timeout elapsed.
func (s *EventStream) Read(ctx context.Context, count int64) ([]StreamMessage, error) {
	res, err := s.rc.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    s.group,
		Consumer: s.consumer,
		Streams:  []string{s.stream, ">"},
		Count:    count,
		Block:    s.block,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("xreadgroup %s: %w", s.stream, err)
	}

	var out []StreamMessage
	for _, st := range res {
		for _, m := range st.Messages {
			out = append(out, decodeMessage(m))
		}
	}
	return out, nil
}

// Ack acknowledges handled entries.
func (s *EventStream) Ack(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.rc.XAck(ctx, s.stream, s.group, ids...).Err(); err != nil {
		return fmt.Errorf("xack %s: %w", s.stream, err)
	}
	return nil
}

func decodeMessage(m redis.XMessage) StreamMessage {
	msg := StreamMessage{ID: m.ID}
	raw, ok := m.Values[eventField].(string)
	if !ok {
		msg.Err = fmt.Errorf("entry %s has no %q field", m.ID, eventField)
		return msg
	}
	if err := json.Unmarshal([]byte(raw), &msg.Event); err != nil {
		msg.Err = fmt.Errorf("decode entry %s: %w", m.ID, err)
	}
	return msg
}
