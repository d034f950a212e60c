package sharkattack

import (
	"context"
	"fmt"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

// List returns one page of attacks and, when requested, the total match count.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if _, err := s.authorize(ctx, OpList); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	items, err := s.attacks.List(ctx, input.Filter, input.Pagination, input.Sort)
	if err != nil {
		return nil, fmt.Errorf("list shark attacks: %w", err)
	}
	if items == nil {
		items = []domain.SharkAttack{}
	}

	result := &ListResult{Listing: items}
	if input.Pagination.QueryTotalResultCount {
		total, err := s.attacks.Count(ctx, input.Filter)
		if err != nil {
			return nil, fmt.Errorf("count shark attacks: %w", err)
		}
		result.QueryTotalResultCount = &total
	}

	return result, nil
}
