package sharkattack

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

// Create stores a new attack under input.ID or a generated id. Active
// defaults to false. An existing id fails with domain.ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.SharkAttack, error) {
	caller, err := s.authorize(ctx, OpCreate)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	props := input.Properties()
	if _, ok := props[domain.FieldActive]; !ok {
		props[domain.FieldActive] = false
	}

	id := input.ID
	if id == "" {
		id = s.newID()
	}
	attack, err := s.attacks.Create(ctx, id, props, caller.Username)
	if err != nil {
		return nil, fmt.Errorf("create shark attack: %w", err)
	}

	payload := attack.Payload()
	e := domain.NewModifiedEvent(domain.ModCreate, id, caller.Username, payload, "")
	if err := s.propagate(ctx, e, payload, attack); err != nil {
		return attack, err
	}

	s.log.InfoContext(ctx, "shark attack created",
		slog.String("id", id),
		slog.String("user", caller.Username),
	)

	return attack, nil
}
