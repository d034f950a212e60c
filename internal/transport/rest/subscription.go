package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/facts-mng/internal/domain"
	"github.com/heartmarshall/facts-mng/internal/service/sharkattack"
	"github.com/heartmarshall/facts-mng/pkg/ctxutil"
)

const keepAliveInterval = 15 * time.Second

type subscriber interface {
	Subscribe(ctx context.Context, filterID string) (<-chan domain.Notification, error)
}

// SubscriptionHandler streams materialized view notifications as
// server-sent events.
type SubscriptionHandler struct {
	notes     subscriber
	keepAlive time.Duration
	log       *slog.Logger
}

// NewSubscriptionHandler creates a SubscriptionHandler.
func NewSubscriptionHandler(notes subscriber, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		notes:     notes,
		keepAlive: keepAliveInterval,
		log:       logger.With("handler", "subscription"),
	}
}

// SharkAttacks handles GET /api/subscriptions/shark-attacks?id=<id|ANY>.
func (h *SubscriptionHandler) SharkAttacks(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.IdentityFromCtx(r.Context()); !ok {
		writeError(w, r, h.log, domain.ErrUnauthorized)
		return
	}
	if !ctxutil.HasAnyRole(r.Context(), sharkattack.RoleRead) {
		writeError(w, r, h.log, domain.ErrForbidden)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, r, h.log, fmt.Errorf("streaming unsupported"))
		return
	}

	filterID := r.URL.Query().Get("id")
	if filterID == "" {
		filterID = domain.SubscribeAll
	}

	notes, err := h.notes.Subscribe(r.Context(), filterID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	// The server WriteTimeout is absolute per connection; a stream must
	// outlive it.
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		h.log.DebugContext(r.Context(), "clear write deadline", slog.String("error", err.Error()))
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case note, ok := <-notes:
			if !ok {
				return
			}
			data, err := json.Marshal(note.Data)
			if err != nil {
				h.log.WarnContext(r.Context(), "encode notification", slog.String("error", err.Error()))
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", note.Event, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
