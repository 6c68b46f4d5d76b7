// Package mongo connects to MongoDB with mongo-driver/v2 and answers the
// validator's store rules with CountDocuments.
//
// # Architecture
//
//   - Config: populated from environment variables by pkg/config. It holds
//     the deployment URL, the database queried by lookups, pool limits and
//     connect retries.
//
//   - Connect: creates a *mongo.Client and pings the primary, retrying on
//     failure.
//
//   - Healthcheck: wraps Ping for the readiness endpoint.
//
//   - Lookup: counts the documents of collection kind whose field equals the
//     value, with limit 1, so a match stops the scan at the first document:
//
//     db.<kind>.countDocuments({<field>: <value>}, {limit: 1})
//
// # Usage
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	client, err := mongo.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer func() { _ = client.Disconnect(context.Background()) }()
//
//	lookup := mongo.NewLookup(client.Database(cfg.Database))
//
//	schema := validator.NewSchema().
//		Field("username", "required|unique:accounts,profile.username").
//		Build()
//	v := validator.New(schema, data, validator.WithLookup(lookup))
//
// The rule's kind parameter names the collection and the column parameter
// the document field; dotted paths reach embedded documents. An index on
// the field keeps lookups cheap.
//
// NewLookupWith resolves collections through a function instead of a
// database, which lets tests supply a Counter double or lets a host route
// kinds to collections of several databases.
//
// # Configuration
//
// MONGODB_URL is required. MONGODB_DATABASE (default "app"),
// MONGODB_CONNECT_TIMEOUT, MONGODB_MAX_POOL_SIZE, MONGODB_MIN_POOL_SIZE,
// MONGODB_MAX_CONN_IDLE_TIME, MONGODB_RETRY_READS, MONGODB_RETRY_ATTEMPTS and
// MONGODB_RETRY_INTERVAL tune the client.
//
// # Error Handling
//
// Connect returns ErrEmptyConnectionURL or ErrFailedToConnectToMongo.
// Lookup returns ErrLookupFailed joined with the driver error. Healthcheck
// returns ErrHealthcheckFailed.
package mongo
