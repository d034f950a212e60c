package sharkattack

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

// Update merges input into the attack when Merge is set, otherwise replaces
// all of its fields. Returns nil, nil when the attack does not exist.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.SharkAttack, error) {
	caller, err := s.authorize(ctx, OpUpdate)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	props := input.Input.Properties()
	kind := domain.ModUpdateReplace

	var attack *domain.SharkAttack
	if input.Merge {
		kind = domain.ModUpdateMerge
		attack, err = s.attacks.Update(ctx, input.ID, props, caller.Username)
	} else {
		attack, err = s.attacks.Replace(ctx, input.ID, props)
	}
	if err != nil {
		return nil, fmt.Errorf("update shark attack: %w", err)
	}
	if attack == nil {
		return nil, nil
	}

	payload := attack.Payload()
	e := domain.NewModifiedEvent(kind, input.ID, caller.Username, payload, "")
	if err := s.propagate(ctx, e, payload, attack); err != nil {
		return attack, err
	}

	s.log.InfoContext(ctx, "shark attack updated",
		slog.String("id", input.ID),
		slog.String("mod_type", string(kind)),
		slog.String("user", caller.Username),
	)

	return attack, nil
}
