package pg_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/easyvalidator/pkg/pg"
	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

type fakeRow struct {
	found bool
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*bool) = r.found
	return nil
}

type fakeQuerier struct {
	row   fakeRow
	query string
	args  []any
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.query = sql
	q.args = args
	return q.row
}

func TestLookup_Exists(t *testing.T) {
	ctx := context.Background()

	t.Run("builds quoted query with bound value", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{found: true}}
		found, err := pg.NewLookup(q, pg.Config{}).Exists(ctx, "users", "email", "a@example.com")

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `SELECT EXISTS (SELECT 1 FROM "users" WHERE "email" = $1)`, q.query)
		assert.Equal(t, []any{"a@example.com"}, q.args)
	})

	t.Run("qualifies table with configured schema", func(t *testing.T) {
		q := &fakeQuerier{}
		_, err := pg.NewLookup(q, pg.Config{Schema: "app"}).Exists(ctx, "users", "email", "x")
		require.NoError(t, err)
		assert.Contains(t, q.query, `FROM "app"."users"`)

		_, err = pg.NewLookup(q, pg.Config{Schema: "app"}).Exists(ctx, "billing.accounts", "id", 1)
		require.NoError(t, err)
		assert.Contains(t, q.query, `FROM "billing"."accounts"`)
	})

	t.Run("rejects unsafe identifiers", func(t *testing.T) {
		q := &fakeQuerier{}
		l := pg.NewLookup(q, pg.Config{})

		_, err := l.Exists(ctx, "users; drop table users", "email", "x")
		assert.ErrorIs(t, err, pg.ErrInvalidIdentifier)

		_, err = l.Exists(ctx, "users", `email" or 1=1 --`, "x")
		assert.ErrorIs(t, err, pg.ErrInvalidIdentifier)

		_, err = l.Exists(ctx, "a.b.c", "id", "x")
		assert.ErrorIs(t, err, pg.ErrInvalidIdentifier)
		assert.Empty(t, q.query)
	})

	t.Run("enforces table allow list", func(t *testing.T) {
		q := &fakeQuerier{}
		l := pg.NewLookup(q, pg.Config{Tables: []string{"users"}})

		_, err := l.Exists(ctx, "payments", "id", 1)
		assert.ErrorIs(t, err, pg.ErrTableNotAllowed)

		_, err = l.Exists(ctx, "users", "id", 1)
		assert.NoError(t, err)
	})

	t.Run("wraps query errors", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{err: errors.New("connection reset")}}
		_, err := pg.NewLookup(q, pg.Config{}).Exists(ctx, "users", "email", "x")
		assert.ErrorIs(t, err, pg.ErrLookupFailed)
	})
}

func TestLookup_WithValidator(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{found: true}}
	schema := validator.NewSchema().Field("email", "unique:users").Build()

	v := validator.New(schema, map[string]any{"email": "taken@example.com"},
		validator.WithLookup(pg.NewLookup(q, pg.Config{})))
	ok, err := v.Validate(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"taken@example.com of users with email is not unique"}, v.Get("email"))
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestHealthcheck(t *testing.T) {
	assert.NoError(t, pg.Healthcheck(fakePinger{})(context.Background()))
	assert.ErrorIs(t, pg.Healthcheck(fakePinger{err: errors.New("down")})(context.Background()), pg.ErrHealthcheckFailed)
}

func TestConnect_EmptyConnectionString(t *testing.T) {
	_, err := pg.Connect(context.Background(), pg.Config{})
	assert.ErrorIs(t, err, pg.ErrEmptyConnectionString)
}
