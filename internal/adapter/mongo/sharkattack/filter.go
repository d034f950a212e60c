package sharkattack

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

// listProjection is the field set returned by List.
var listProjection = bson.D{
	{Key: "_id", Value: 1},
	{Key: domain.FieldDate, Value: 1},
	{Key: domain.FieldCountry, Value: 1},
	{Key: domain.FieldType, Value: 1},
	{Key: domain.FieldSpecies, Value: 1},
	{Key: domain.FieldActive, Value: 1},
}

// buildFilter translates f into a query document. Text fields match as
// case-insensitive literal substrings; the rest are exact.
func buildFilter(f domain.SharkAttackFilter) bson.D {
	filter := bson.D{}

	for _, c := range []struct{ field, value string }{
		{domain.FieldName, f.Name},
		{domain.FieldCountry, f.Country},
		{domain.FieldType, f.Type},
	} {
		if c.value != "" {
			filter = append(filter, bson.E{
				Key:   c.field,
				Value: primitive.Regex{Pattern: regexp.QuoteMeta(c.value), Options: "i"},
			})
		}
	}

	if f.OrganizationID != "" {
		filter = append(filter, bson.E{Key: domain.FieldOrganizationID, Value: f.OrganizationID})
	}
	if f.Year != nil {
		filter = append(filter, bson.E{Key: domain.FieldYear, Value: *f.Year})
	}
	if f.Active != nil {
		filter = append(filter, bson.E{Key: domain.FieldActive, Value: *f.Active})
	}

	return filter
}

// buildFindOptions applies paging, ordering and the listing projection.
func buildFindOptions(p domain.Pagination, s domain.Sort) *options.FindOptions {
	count := p.Count
	if count <= 0 {
		count = domain.DefaultPageCount
	}
	page := max(p.Page, 0)

	sort := bson.D{{Key: domain.FieldCreatedAt, Value: -1}}
	if s.Field != "" {
		dir := -1
		if s.Asc {
			dir = 1
		}
		sort = bson.D{{Key: s.Field, Value: dir}}
	}

	return options.Find().
		SetSkip(int64(page) * int64(count)).
		SetLimit(int64(count)).
		SetSort(sort).
		SetProjection(listProjection)
}
