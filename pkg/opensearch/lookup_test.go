package opensearch_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/easyvalidator/pkg/opensearch"
	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

// fakeTransport records the request and answers with a canned response.
type fakeTransport struct {
	status int
	body   string
	err    error

	req     *http.Request
	reqBody map[string]any
}

func (f *fakeTransport) Perform(req *http.Request) (*http.Response, error) {
	f.req = req
	if req.Body != nil {
		_ = json.NewDecoder(req.Body).Decode(&f.reqBody)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &http.Response{
		StatusCode: f.status,
		Body:       io.NopCloser(strings.NewReader(f.body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}, nil
}

func TestLookup_Exists(t *testing.T) {
	ctx := context.Background()

	t.Run("counts term matches in prefixed index", func(t *testing.T) {
		tr := &fakeTransport{status: http.StatusOK, body: `{"count":1}`}
		found, err := opensearch.NewLookup(tr, opensearch.Config{IndexPrefix: "app-"}).
			Exists(ctx, "users", "email.keyword", "taken@example.com")

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "/app-users/_count", tr.req.URL.Path)
		assert.Equal(t, map[string]any{
			"query": map[string]any{"term": map[string]any{"email.keyword": "taken@example.com"}},
		}, tr.reqBody)
	})

	t.Run("reports zero count", func(t *testing.T) {
		tr := &fakeTransport{status: http.StatusOK, body: `{"count":0}`}
		found, err := opensearch.NewLookup(tr, opensearch.Config{}).Exists(ctx, "users", "email", "free@example.com")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("fails on error status", func(t *testing.T) {
		tr := &fakeTransport{status: http.StatusNotFound, body: `{"error":"index_not_found_exception"}`}
		_, err := opensearch.NewLookup(tr, opensearch.Config{}).Exists(ctx, "users", "email", "x")
		assert.ErrorIs(t, err, opensearch.ErrLookupFailed)
	})

	t.Run("fails on transport error", func(t *testing.T) {
		tr := &fakeTransport{err: errors.New("connection refused")}
		_, err := opensearch.NewLookup(tr, opensearch.Config{}).Exists(ctx, "users", "email", "x")
		assert.ErrorIs(t, err, opensearch.ErrLookupFailed)
	})

	t.Run("fails on malformed body", func(t *testing.T) {
		tr := &fakeTransport{status: http.StatusOK, body: `not json`}
		_, err := opensearch.NewLookup(tr, opensearch.Config{}).Exists(ctx, "users", "email", "x")
		assert.ErrorIs(t, err, opensearch.ErrLookupFailed)
	})
}

func TestLookup_WithValidator(t *testing.T) {
	tr := &fakeTransport{status: http.StatusOK, body: `{"count":0}`}
	schema := validator.NewSchema().Field("sku", "exist:products").Build()

	v := validator.New(schema, map[string]any{"sku": "A-1"},
		validator.WithLookup(opensearch.NewLookup(tr, opensearch.Config{})))
	ok, err := v.Validate(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"A-1 of products with sku does not exist"}, v.Get("sku"))
}

func TestHealthcheck(t *testing.T) {
	ok := &fakeTransport{status: http.StatusOK, body: `{}`}
	assert.NoError(t, opensearch.Healthcheck(ok)(context.Background()))

	down := &fakeTransport{status: http.StatusServiceUnavailable, body: `{}`}
	assert.ErrorIs(t, opensearch.Healthcheck(down)(context.Background()), opensearch.ErrHealthcheckFailed)
}
