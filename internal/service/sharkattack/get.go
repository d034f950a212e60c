package sharkattack

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

// Get returns the attack with id, optionally scoped to organizationID.
// Returns nil, nil when it does not exist.
func (s *Service) Get(ctx context.Context, id, organizationID string) (*domain.SharkAttack, error) {
	if _, err := s.authorize(ctx, OpGet); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	attack, err := s.attacks.Get(ctx, id, organizationID)
	if err != nil {
		return nil, fmt.Errorf("get shark attack: %w", err)
	}
	return attack, nil
}
