// Package sharkattack implements the SharkAttack materialized view using MongoDB.
// The collection is keyed by the aggregate id (_id) and scoped by organizationId.
package sharkattack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mongostore "github.com/heartmarshall/facts-mng/internal/adapter/mongo"
	"github.com/heartmarshall/facts-mng/internal/domain"
)

const (
	entity = "shark attack"

	defaultStatsLimit = 5
	maxStatsLimit     = 50
)

// Repo provides SharkAttack persistence backed by a MongoDB collection.
type Repo struct {
	coll *mongo.Collection
	log  *slog.Logger
	now  func() time.Time
}

// New creates a new SharkAttack repository over coll.
func New(coll *mongo.Collection, log *slog.Logger) *Repo {
	return &Repo{
		coll: coll,
		log:  log.With("adapter", "mongo.sharkattack"),
		now:  time.Now,
	}
}

// EnsureIndexes creates the secondary indexes used by listings.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: domain.FieldOrganizationID, Value: 1}, {Key: domain.FieldCreatedAt, Value: -1}}},
		{Keys: bson.D{{Key: domain.FieldCountry, Value: 1}}},
		{Keys: bson.D{{Key: domain.FieldYear, Value: -1}}},
	})
	if err != nil {
		return mongostore.MapError(err, entity, "indexes")
	}
	return nil
}

func (r *Repo) nowMillis() int64 {
	return r.now().UnixMilli()
}

// writable strips the keys a caller may never set through props.
func writable(props domain.Properties) bson.M {
	return bson.M(props.Without(domain.FieldID, "_id", domain.FieldMetadata))
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the aggregate with id, scoped to organizationID when it is not empty.
// Returns nil, nil when no such document exists.
func (r *Repo) Get(ctx context.Context, id, organizationID string) (*domain.SharkAttack, error) {
	filter := bson.D{{Key: "_id", Value: id}}
	if organizationID != "" {
		filter = append(filter, bson.E{Key: domain.FieldOrganizationID, Value: organizationID})
	}

	var out domain.SharkAttack
	if err := r.coll.FindOne(ctx, filter).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, mongostore.MapError(err, entity, id)
	}
	return &out, nil
}

// List returns one page of attacks matching f.
func (r *Repo) List(ctx context.Context, f domain.SharkAttackFilter, p domain.Pagination, s domain.Sort) ([]domain.SharkAttack, error) {
	cur, err := r.coll.Find(ctx, buildFilter(f), buildFindOptions(p, s))
	if err != nil {
		return nil, mongostore.MapError(err, entity, "list")
	}

	out := []domain.SharkAttack{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, mongostore.MapError(err, entity, "list")
	}
	return out, nil
}

// Count returns the number of attacks matching f.
func (r *Repo) Count(ctx context.Context, f domain.SharkAttackFilter) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, buildFilter(f))
	if err != nil {
		return 0, mongostore.MapError(err, entity, "count")
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Command writes (stamp metadata)
// ---------------------------------------------------------------------------

// Create inserts a new aggregate. A duplicate id returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, id string, props domain.Properties, actor string) (*domain.SharkAttack, error) {
	now := r.nowMillis()
	doc := props.Without(domain.FieldID, domain.FieldMetadata).Apply(domain.SharkAttack{
		ID: id,
		Metadata: domain.Metadata{
			CreatedBy: actor,
			CreatedAt: now,
			UpdatedBy: actor,
			UpdatedAt: now,
		},
	})

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, mongostore.MapError(err, entity, id)
	}
	return &doc, nil
}

// Upsert writes props to id, creating the document when absent. Creation
// metadata is only set on insert.
func (r *Repo) Upsert(ctx context.Context, id string, props domain.Properties, actor string) (*domain.SharkAttack, error) {
	now := r.nowMillis()

	set := writable(props)
	set["metadata.updatedBy"] = actor
	set["metadata.updatedAt"] = now

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"metadata.createdBy": actor,
			"metadata.createdAt": now,
		},
	}

	return r.findOneAndUpdate(ctx, id, update, true)
}

// Update merges props into id. Unspecified fields keep their value.
// Returns nil, nil when no such document exists.
func (r *Repo) Update(ctx context.Context, id string, props domain.Properties, actor string) (*domain.SharkAttack, error) {
	set := writable(props)
	set["metadata.updatedBy"] = actor
	set["metadata.updatedAt"] = r.nowMillis()

	return r.findOneAndUpdate(ctx, id, bson.M{"$set": set}, false)
}

// Replace overwrites every non-key field of id with props. Fields missing from
// props are cleared; _id and metadata are preserved and metadata is not stamped.
// Returns nil, nil when no such document exists.
func (r *Repo) Replace(ctx context.Context, id string, props domain.Properties) (*domain.SharkAttack, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$replaceWith", Value: bson.M{
			"$mergeObjects": bson.A{
				bson.M{"_id": "$_id", domain.FieldMetadata: "$" + domain.FieldMetadata},
				bson.M{"$literal": writable(props)},
			},
		}}},
	}

	return r.findOneAndUpdate(ctx, id, pipeline, false)
}

func (r *Repo) findOneAndUpdate(ctx context.Context, id string, update any, upsert bool) (*domain.SharkAttack, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(upsert).
		SetReturnDocument(options.After)

	var out domain.SharkAttack
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, mongostore.MapError(err, entity, id)
	}
	return &out, nil
}

// Delete removes id. A missing id is not an error.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}}); err != nil {
		return mongostore.MapError(err, entity, id)
	}
	return nil
}

// DeleteMany removes every id and reports whether at least one document was removed.
func (r *Repo) DeleteMany(ctx context.Context, ids []string) (bool, error) {
	if len(ids) == 0 {
		return false, nil
	}
	res, err := r.coll.DeleteMany(ctx, bson.D{{Key: "_id", Value: bson.M{"$in": ids}}})
	if err != nil {
		return false, mongostore.MapError(err, entity, fmt.Sprint(ids))
	}
	return res.DeletedCount > 0, nil
}

// ---------------------------------------------------------------------------
// Recovery writes (no metadata stamping)
// ---------------------------------------------------------------------------

// InsertIfAbsent creates id from props and never touches an existing document.
func (r *Repo) InsertIfAbsent(ctx context.Context, id string, props domain.Properties) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.M{"$setOnInsert": bson.M(props.Without(domain.FieldID, "_id"))},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, mongostore.MapError(err, entity, id)
	}
	return res.UpsertedCount == 1, nil
}

// ApplyRecovered sets props on id, creating it when absent. Metadata carried
// in props is written as-is.
func (r *Repo) ApplyRecovered(ctx context.Context, id string, props domain.Properties) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.M{"$set": bson.M(props.Without(domain.FieldID, "_id"))},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return mongostore.MapError(err, entity, id)
	}
	return nil
}

// ReplaceRecovered overwrites every non-key field of id with props, creating
// it when absent. Existing metadata survives unless props carry their own.
func (r *Repo) ReplaceRecovered(ctx context.Context, id string, props domain.Properties) error {
	pipeline := mongo.Pipeline{
		{{Key: "$replaceWith", Value: bson.M{
			"$mergeObjects": bson.A{
				bson.M{"_id": "$_id", domain.FieldMetadata: "$" + domain.FieldMetadata},
				bson.M{"$literal": bson.M(props.Without(domain.FieldID, "_id"))},
			},
		}}},
	}

	_, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		pipeline,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return mongostore.MapError(err, entity, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Aggregations
// ---------------------------------------------------------------------------

type statsFacet struct {
	Countries []domain.CountryStat `bson:"countries"`
	Years     []domain.YearStat    `bson:"years"`
	Total     []struct {
		Count int64 `bson:"count"`
	} `bson:"total"`
}

// AggregateStats returns the top countries and the most recent years, each
// capped at limit (default 5, max 50), and the total number of attacks.
// Failures are logged and reported as empty stats.
func (r *Repo) AggregateStats(ctx context.Context, limit int) domain.Stats {
	if limit <= 0 {
		limit = defaultStatsLimit
	}
	limit = min(limit, maxStatsLimit)

	pipeline := mongo.Pipeline{
		{{Key: "$facet", Value: bson.M{
			"countries": bson.A{
				bson.M{"$match": bson.M{domain.FieldCountry: bson.M{"$nin": bson.A{nil, ""}}}},
				bson.M{"$group": bson.M{"_id": "$" + domain.FieldCountry, "total": bson.M{"$sum": 1}}},
				bson.M{"$sort": bson.D{{Key: "total", Value: -1}, {Key: "_id", Value: 1}}},
				bson.M{"$limit": limit},
			},
			"years": bson.A{
				bson.M{"$match": bson.M{domain.FieldYear: bson.M{"$type": "number"}}},
				bson.M{"$group": bson.M{"_id": "$" + domain.FieldYear, "total": bson.M{"$sum": 1}}},
				bson.M{"$sort": bson.D{{Key: "_id", Value: -1}}},
				bson.M{"$limit": limit},
			},
			"total": bson.A{
				bson.M{"$count": "count"},
			},
		}}},
	}

	stats := domain.EmptyStats()

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		r.log.ErrorContext(ctx, "aggregate stats", slog.String("error", err.Error()))
		return stats
	}

	var facets []statsFacet
	if err := cur.All(ctx, &facets); err != nil {
		r.log.ErrorContext(ctx, "decode stats", slog.String("error", err.Error()))
		return stats
	}
	if len(facets) == 0 {
		return stats
	}

	f := facets[0]
	if f.Countries != nil {
		stats.Countries = f.Countries
	}
	if f.Years != nil {
		stats.Years = f.Years
	}
	if len(f.Total) > 0 {
		stats.TotalSharkAttacks = f.Total[0].Count
	}
	return stats
}
