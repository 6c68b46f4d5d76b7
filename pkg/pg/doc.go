// Package pg connects to PostgreSQL with the pgx/v5 driver and answers the
// validator's store rules (unique, exist, unique_against) against it.
//
// The package keeps a small API surface on top of pgxpool: a Config read
// from the environment, a retrying Connect, a Healthcheck for the readiness
// endpoint and a Lookup implementing validator.Lookup.
//
// # Architecture
//
//   - Config: populated from environment variables by pkg/config. It controls
//     pool limits, health-check cadence, connect retries and which tables
//     lookups may query.
//
//   - Connect: opens a *pgxpool.Pool and pings it, retrying with a linearly
//     growing wait while the database is starting.
//
//   - Healthcheck: wraps Ping in a func(context.Context) error, the shape
//     httpserver.Check expects.
//
//   - Lookup: runs one parameterised query per rule invocation:
//
//     SELECT EXISTS (SELECT 1 FROM "kind" WHERE "field" = $1)
//
// Lookup depends only on Querier, so a *pgxpool.Pool, a *pgx.Conn or a
// pgx.Tx can back it, and tests can substitute a fake row source.
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	schema := validator.NewSchema().
//		Field("email", "required|email|unique:users").
//		Field("team", "exist:billing.teams,slug").
//		Build()
//
//	v := validator.New(schema, data, validator.WithLookup(pg.NewLookup(pool, cfg)))
//	ok, err := v.Validate(ctx)
//
// The rule's kind parameter names the table, optionally schema-qualified
// ("billing.teams"); the column parameter defaults to the field name.
// Unqualified tables are placed in PG_LOOKUP_SCHEMA when it is set.
//
// # Configuration
//
// PG_CONN_URL is required. PG_MAX_OPEN_CONNS, PG_MAX_IDLE_CONNS,
// PG_HEALTHCHECK_PERIOD, PG_MAX_CONN_IDLE_TIME and PG_MAX_CONN_LIFETIME tune
// the pool; PG_RETRY_ATTEMPTS and PG_RETRY_INTERVAL tune Connect.
// PG_LOOKUP_TABLES is a comma-separated allow-list of tables. Refer to the
// field tags in Config for defaults.
//
// # Security
//
// Table and column names come from schema files, so Lookup only accepts
// plain SQL identifiers, quotes them with pgx.Identifier and, when
// PG_LOOKUP_TABLES is set, only queries the listed tables. The value is
// always passed as a query argument.
//
// # Error Handling
//
// Connect returns ErrEmptyConnectionString, ErrFailedToParseDBConfig or
// ErrFailedToOpenDBConnection. Lookup returns ErrInvalidIdentifier or
// ErrTableNotAllowed for a bad rule parameter and ErrLookupFailed joined
// with the driver error when the query fails; the validator then fails the
// rule and logs the error. Healthcheck returns ErrHealthcheckFailed.
package pg
