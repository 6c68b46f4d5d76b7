package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"
)

// Lookup answers unique/exist rules with a _count request using a term
// query on field. The index is IndexPrefix followed by the rule's kind.
type Lookup struct {
	transport opensearchapi.Transport
	prefix    string
}

// NewLookup creates a lookup over transport, usually an *opensearch.Client.
func NewLookup(transport opensearchapi.Transport, cfg Config) *Lookup {
	return &Lookup{transport: transport, prefix: cfg.IndexPrefix}
}

type countResponse struct {
	Count int64 `json:"count"`
}

// Exists implements validator.Lookup.
func (l *Lookup) Exists(ctx context.Context, kind, field string, value any) (bool, error) {
	body, err := json.Marshal(map[string]any{
		"query": map[string]any{
			"term": map[string]any{field: value},
		},
	})
	if err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}

	res, err := opensearchapi.CountRequest{
		Index: []string{l.prefix + kind},
		Body:  bytes.NewReader(body),
	}.Do(ctx, l.transport)
	if err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.IsError() {
		return false, errors.Join(ErrLookupFailed, fmt.Errorf("index %q: status %d", l.prefix+kind, res.StatusCode))
	}

	var out countResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return out.Count > 0, nil
}
