package sharkattack

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/facts-mng/internal/adapter/feed"
	"github.com/heartmarshall/facts-mng/internal/domain"
)

// ByCountry looks up recent attacks for country in the external feed.
// Feed failures are logged and reported as an empty list.
func (s *Service) ByCountry(ctx context.Context, country string) ([]domain.CountryAttack, error) {
	if _, err := s.authorize(ctx, OpByCountry); err != nil {
		return nil, err
	}
	country = strings.TrimSpace(country)
	if country == "" {
		return nil, domain.NewValidationError("country", "required")
	}

	records, err := s.feed.ByCountry(ctx, country)
	if err != nil {
		s.log.ErrorContext(ctx, "feed lookup by country failed",
			slog.String("country", country),
			slog.String("error", err.Error()),
		)
		return []domain.CountryAttack{}, nil
	}

	out := make([]domain.CountryAttack, 0, len(records))
	for _, r := range records {
		out = append(out, toCountryAttack(r, country))
	}
	return out, nil
}

func toCountryAttack(r feed.Record, country string) domain.CountryAttack {
	return domain.CountryAttack{
		ID:      firstNonEmpty(r.OriginalOrder(), r.String(domain.FieldCaseNumber), "unknown"),
		Name:    firstNonEmpty(r.String(domain.FieldName), "Unknown"),
		Country: firstNonEmpty(r.String(domain.FieldCountry), country),
		Age:     firstNonEmpty(r.String(domain.FieldAge), "Unknown"),
		Type:    firstNonEmpty(r.String(domain.FieldType), "Unknown"),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
