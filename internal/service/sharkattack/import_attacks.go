package sharkattack

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/facts-mng/internal/adapter/feed"
	"github.com/heartmarshall/facts-mng/internal/domain"
	"github.com/heartmarshall/facts-mng/pkg/ctxutil"
)

// Import upserts every feed record as an active attack of the caller's
// organization and emits a SharkAttackReported event for each. Records that
// fail are reported in the result and do not count as imported.
func (s *Service) Import(ctx context.Context) (*ImportResult, error) {
	caller, err := s.authorize(ctx, OpImport)
	if err != nil {
		return nil, err
	}

	records, err := s.feed.FetchRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("import shark attacks: %w", err)
	}

	var (
		mu       sync.Mutex
		imported int
		failures = []ImportError{}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxInFlight)
	currentYear := time.Now().Year()

	for _, rec := range records {
		g.Go(func() error {
			id, err := s.importRecord(gctx, caller, rec, currentYear)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.log.WarnContext(gctx, "import record failed",
					slog.String("id", id),
					slog.String("error", err.Error()),
				)
				failures = append(failures, ImportError{ID: id, Error: err.Error()})
				return nil
			}
			imported++
			return nil
		})
	}
	_ = g.Wait()

	s.log.InfoContext(ctx, "shark attacks imported",
		slog.Int("imported", imported),
		slog.Int("total", len(records)),
		slog.String("user", caller.Username),
	)

	return &ImportResult{
		CommandResult: domain.CommandResult{
			Code:    http.StatusOK,
			Message: fmt.Sprintf("%d imported out of %d", imported, len(records)),
		},
		Imported: imported,
		Total:    len(records),
		Errors:   failures,
	}, nil
}

func (s *Service) importRecord(ctx context.Context, caller ctxutil.Identity, rec feed.Record, currentYear int) (string, error) {
	id := rec.OriginalOrder()
	if id == "" {
		id = s.newID()
	}

	props := domain.PropertiesFromPayload(rec)
	props[domain.FieldActive] = true
	props[domain.FieldOrganizationID] = caller.OrganizationID

	if errs := validateProperties(props, currentYear); len(errs) > 0 {
		return id, domain.NewValidationErrors(errs)
	}

	attack, err := s.attacks.Upsert(ctx, id, props, caller.Username)
	if err != nil {
		return id, fmt.Errorf("upsert: %w", err)
	}

	payload := attack.Payload()
	e := domain.NewModifiedEvent(domain.ModCreate, id, caller.Username, payload, domain.EventSharkAttackReported)
	if err := s.propagate(ctx, e, payload, attack); err != nil {
		return id, err
	}
	return id, nil
}
