// Package mongorecord is the document source over a MongoDB collection.
package mongorecord

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mongodb "github.com/kailas-cloud/loksabha/internal/db/mongo"
	"github.com/kailas-cloud/loksabha/internal/domain"
	"github.com/kailas-cloud/loksabha/internal/domain/election"
)

// collection is the consumer interface over *mongo.Collection (ISP).
type collection interface {
	Find(ctx context.Context, filter any, opts ...*options.FindOptions) (*mongo.Cursor, error)
	Aggregate(ctx context.Context, pipeline any, opts ...*options.AggregateOptions) (*mongo.Cursor, error)
	Distinct(ctx context.Context, fieldName string, filter any, opts ...*options.DistinctOptions) ([]any, error)
	InsertMany(ctx context.Context, documents []any, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error)
}

// Repo implements usecase/election.Source over a Mongo collection.
type Repo struct {
	coll collection
}

// New creates a Mongo record repository.
func New(c collection) *Repo {
	return &Repo{coll: c}
}

// Find returns all records matching q in natural order.
func (r *Repo) Find(ctx context.Context, q election.Query) ([]election.Record, error) {
	cur, err := r.coll.Find(ctx, r.filter(q), options.Find().SetProjection(bson.D{{Key: "_id", Value: 0}}))
	if err != nil {
		return nil, fmt.Errorf("find records: %w: %w", domain.ErrSourceUnavailable, err)
	}
	defer cur.Close(ctx)

	out := make([]election.Record, 0)
	for cur.Next(ctx) {
		var m bson.M
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		rec, err := election.RecordFromMap(m)
		if err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		out = append(out, rec)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w: %w", domain.ErrSourceUnavailable, err)
	}
	return out, nil
}

type seatGroupRow struct {
	ID struct {
		Party    string `bson:"party"`
		State    string `bson:"state"`
		Alliance string `bson:"alliance"`
	} `bson:"_id"`
	TotalSeats int `bson:"totalSeats"`
}

// GroupSeats counts records per (party, state, alliance). Groups are ordered
// by their smallest _id, which follows insertion order for ObjectIDs.
func (r *Repo) GroupSeats(ctx context.Context, q election.Query) ([]election.SeatGroup, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: r.filter(q)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "party", Value: "$" + election.KeyPartyName},
				{Key: "state", Value: "$" + election.KeyStateName},
				{Key: "alliance", Value: "$" + election.KeyAlliance},
			}},
			{Key: "totalSeats", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "firstSeen", Value: bson.D{{Key: "$min", Value: "$_id"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "firstSeen", Value: 1}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate seats: %w: %w", domain.ErrSourceUnavailable, err)
	}
	defer cur.Close(ctx)

	var rows []seatGroupRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode seat groups: %w", err)
	}

	groups := make([]election.SeatGroup, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, election.SeatGroup{
			PartyName:  row.ID.Party,
			StateName:  row.ID.State,
			Alliance:   row.ID.Alliance,
			TotalSeats: row.TotalSeats,
		})
	}
	return groups, nil
}

// DistinctStates returns the sorted distinct state names matching q.
func (r *Repo) DistinctStates(ctx context.Context, q election.Query) ([]string, error) {
	return r.distinctStrings(ctx, election.KeyStateName, q)
}

// DistinctPCNames returns the sorted distinct constituency names matching q.
func (r *Repo) DistinctPCNames(ctx context.Context, q election.Query) ([]string, error) {
	return r.distinctStrings(ctx, election.KeyPCName, q)
}

// DistinctYears returns the sorted distinct years. Years stored as strings
// and as numbers collapse to the same value.
func (r *Repo) DistinctYears(ctx context.Context) ([]int, error) {
	values, err := r.coll.Distinct(ctx, election.KeyYear, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("distinct years: %w: %w", domain.ErrSourceUnavailable, err)
	}

	seen := make(map[int]struct{}, len(values))
	years := make([]int, 0, len(values))
	for _, v := range values {
		y, err := election.ParseYear(v)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[y]; ok || y == 0 {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	sort.Ints(years)
	return years, nil
}

// Import inserts records in order. Returns the number inserted.
func (r *Repo) Import(ctx context.Context, records []election.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	docs := make([]any, 0, len(records))
	for i := range records {
		docs = append(docs, records[i].Document())
	}

	res, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		return 0, fmt.Errorf("insert records: %w: %w", domain.ErrSourceUnavailable, err)
	}
	return len(res.InsertedIDs), nil
}

func (r *Repo) distinctStrings(ctx context.Context, key string, q election.Query) ([]string, error) {
	values, err := r.coll.Distinct(ctx, key, r.filter(q))
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w: %w", key, domain.ErrSourceUnavailable, err)
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *Repo) filter(q election.Query) bson.D {
	return mongodb.BuildFilter(q.Expression(), election.DocumentKeys)
}
