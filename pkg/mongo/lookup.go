package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Counter is the part of *mongo.Collection the lookup uses.
type Counter interface {
	CountDocuments(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error)
}

// Lookup answers unique/exist rules by counting, with limit 1, the
// documents of collection kind whose field equals the value.
type Lookup struct {
	collection func(kind string) Counter
}

// NewLookup queries collections of db.
func NewLookup(db *mongo.Database) *Lookup {
	return &Lookup{collection: func(kind string) Counter { return db.Collection(kind) }}
}

// NewLookupWith resolves collections through fn.
func NewLookupWith(fn func(kind string) Counter) *Lookup {
	return &Lookup{collection: fn}
}

// Exists implements validator.Lookup.
func (l *Lookup) Exists(ctx context.Context, kind, field string, value any) (bool, error) {
	n, err := l.collection(kind).CountDocuments(ctx,
		bson.D{{Key: field, Value: value}},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return n > 0, nil
}
