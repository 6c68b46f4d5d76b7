// Package opensearch connects to an OpenSearch cluster and answers the
// validator's store rules with term-query counts.
//
// # Architecture
//
//   - Config: populated from environment variables by pkg/config. It lists
//     the cluster addresses, credentials, retry policy and the prefix added
//     to every index name.
//
//   - New: creates an *opensearch.Client and checks that the cluster answers.
//
//   - Healthcheck: calls the cluster info endpoint for the readiness endpoint.
//
//   - Lookup: implements validator.Lookup over opensearchapi.Transport, so
//     the client or any transport double can back it.
//
// # Usage
//
//	var cfg opensearch.Config
//	config.MustLoad(&cfg)
//
//	client, err := opensearch.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//
//	schema := validator.NewSchema().
//		Field("sku", "required|exist:products,sku").
//		Build()
//	v := validator.New(schema, data, validator.WithLookup(opensearch.NewLookup(client, cfg)))
//
// A rule such as "unique:users,email" sends
//
//	POST /<prefix>users/_count {"query":{"term":{"email":<value>}}}
//
// and passes or fails on whether count is zero.
//
// # Mapping
//
// Term queries match exact values, so text fields should be queried through
// their keyword sub-field ("unique:users,email.keyword"). Counts reflect the
// last refresh of the index: a document indexed a moment ago may not be seen
// yet.
//
// # Configuration
//
// OPENSEARCH_ADDRESSES (comma-separated, required), OPENSEARCH_USERNAME,
// OPENSEARCH_PASSWORD, OPENSEARCH_MAX_RETRIES, OPENSEARCH_DISABLE_RETRY and
// OPENSEARCH_INDEX_PREFIX.
//
// # Error Handling
//
// New returns ErrConnectionFailed, or ErrHealthcheckFailed when the cluster
// does not answer. Lookup returns ErrLookupFailed joined with
// the transport error or with the index and status of an error response,
// for example a missing index. Healthcheck returns ErrHealthcheckFailed.
package opensearch
