package mongo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/dmitrymomot/easyvalidator/pkg/mongo"
	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

type fakeCollection struct {
	docs   []bson.D
	filter any
	err    error
}

func (c *fakeCollection) CountDocuments(_ context.Context, filter any, _ ...options.Lister[options.CountOptions]) (int64, error) {
	c.filter = filter
	if c.err != nil {
		return 0, c.err
	}
	want := filter.(bson.D)[0]
	var n int64
	for _, doc := range c.docs {
		for _, e := range doc {
			if e.Key == want.Key && e.Value == want.Value {
				n++
			}
		}
	}
	return n, nil
}

func lookupOver(collections map[string]*fakeCollection) *mongo.Lookup {
	return mongo.NewLookupWith(func(kind string) mongo.Counter {
		if c, ok := collections[kind]; ok {
			return c
		}
		return &fakeCollection{}
	})
}

func TestLookup_Exists(t *testing.T) {
	ctx := context.Background()
	users := &fakeCollection{docs: []bson.D{{{Key: "email", Value: "taken@example.com"}}}}
	l := lookupOver(map[string]*fakeCollection{"users": users})

	t.Run("finds matching document", func(t *testing.T) {
		found, err := l.Exists(ctx, "users", "email", "taken@example.com")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, bson.D{{Key: "email", Value: "taken@example.com"}}, users.filter)
	})

	t.Run("reports missing document", func(t *testing.T) {
		found, err := l.Exists(ctx, "users", "email", "free@example.com")
		require.NoError(t, err)
		assert.False(t, found)

		found, err = l.Exists(ctx, "accounts", "email", "taken@example.com")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("wraps driver errors", func(t *testing.T) {
		broken := lookupOver(map[string]*fakeCollection{"users": {err: errors.New("server selection timeout")}})
		_, err := broken.Exists(ctx, "users", "email", "x")
		assert.ErrorIs(t, err, mongo.ErrLookupFailed)
	})
}

func TestLookup_WithValidator(t *testing.T) {
	users := &fakeCollection{docs: []bson.D{{{Key: "email", Value: "taken@example.com"}}}}
	schema := validator.NewSchema().
		Field("email", "unique_against:users,email,current_email").
		Build()

	v := validator.New(schema, map[string]any{
		"email":         "taken@example.com",
		"current_email": "old@example.com",
	}, validator.WithLookup(lookupOver(map[string]*fakeCollection{"users": users})))

	ok, err := v.Validate(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context, *readpref.ReadPref) error { return p.err }

func TestHealthcheck(t *testing.T) {
	assert.NoError(t, mongo.Healthcheck(fakePinger{})(context.Background()))
	err := mongo.Healthcheck(fakePinger{err: errors.New("down")})(context.Background())
	assert.ErrorIs(t, err, mongo.ErrHealthcheckFailed)
}

func TestConnect_EmptyURL(t *testing.T) {
	_, err := mongo.Connect(context.Background(), mongo.Config{})
	assert.ErrorIs(t, err, mongo.ErrEmptyConnectionURL)
}
