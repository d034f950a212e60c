package sharkattack

import (
	"context"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

// Stats returns the dashboard aggregation. recordLimit <= 0 uses the default.
func (s *Service) Stats(ctx context.Context, recordLimit int) (domain.Stats, error) {
	if _, err := s.authorize(ctx, OpStats); err != nil {
		return domain.Stats{}, err
	}
	return s.attacks.AggregateStats(ctx, recordLimit), nil
}
