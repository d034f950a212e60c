package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

// Notifier publishes materialized view updates on a Pub/Sub channel and
// serves filtered subscriptions to them.
type Notifier struct {
	rc      *redis.Client
	channel string
	log     *slog.Logger
}

// NewNotifier creates a notifier on domain.NotificationTopic.
func NewNotifier(rc *redis.Client, log *slog.Logger) *Notifier {
	return &Notifier{
		rc:      rc,
		channel: domain.NotificationTopic,
		log:     log.With("adapter", "redis.notifier"),
	}
}

// Publish sends payload wrapped in the notification envelope.
func (n *Notifier) Publish(ctx context.Context, payload map[string]any) error {
	data, err := json.Marshal(domain.Notification{Event: domain.NotificationEvent, Data: payload})
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	if err := n.rc.Publish(ctx, n.channel, data).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", n.channel, err)
	}
	return nil
}

// Subscribe returns notifications whose aggregate id equals filterID, or all
// of them when filterID is domain.SubscribeAll or empty. The channel is closed
// when ctx is done.
func (n *Notifier) Subscribe(ctx context.Context, filterID string) (<-chan domain.Notification, error) {
	sub := n.rc.Subscribe(ctx, n.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", n.channel, err)
	}

	out := make(chan domain.Notification)
	go func() {
		defer close(out)
		defer sub.Close()

		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var note domain.Notification
				if err := json.Unmarshal([]byte(msg.Payload), &note); err != nil {
					n.log.WarnContext(ctx, "drop malformed notification", slog.String("error", err.Error()))
					continue
				}
				if !matches(note, filterID) {
					continue
				}
				select {
				case out <- note:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func matches(note domain.Notification, filterID string) bool {
	if filterID == "" || filterID == domain.SubscribeAll {
		return true
	}
	return note.ID() == filterID
}
