// Package redis connects to Redis with go-redis/v9 and backs the
// validator's store rules with Redis sets.
//
// # Architecture
//
// Each kind and field pair owns one set, "<prefix><kind>:<field>", whose
// members are the string form of the values already taken. The host keeps
// the sets current with Add and Remove when it creates or deletes entities;
// unique, exist and unique_against then cost a single SISMEMBER each.
//
//   - Config: populated from environment variables by pkg/config.
//
//   - Connect: parses REDIS_URL, creates a *redis.Client and pings it,
//     retrying until the attempts run out or REDIS_CONNECT_TIMEOUT expires.
//
//   - Healthcheck: wraps PING for the readiness endpoint.
//
//   - Lookup: implements validator.Lookup over SetClient, the three set
//     commands it needs, so any redis.UniversalClient or a test double fits.
//
// # Usage
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	lookup := redis.NewLookup(client, cfg)
//
//	// when a user signs up
//	_ = lookup.Add(ctx, "users", "email", "taken@example.com")
//
//	// when the account is deleted
//	_ = lookup.Remove(ctx, "users", "email", "taken@example.com")
//
//	schema := validator.NewSchema().Field("email", "required|unique:users").Build()
//	v := validator.New(schema, data, validator.WithLookup(lookup))
//
// Key reports the set a rule reads, which helps when seeding sets from an
// existing table:
//
//	lookup.Key("users", "email") // "lookup:users:email"
//
// # Configuration
//
// REDIS_URL (default redis://localhost:6379/0), REDIS_RETRY_ATTEMPTS,
// REDIS_RETRY_INTERVAL, REDIS_CONNECT_TIMEOUT and REDIS_LOOKUP_PREFIX
// (default "lookup:").
//
// # Error Handling
//
// Connect returns ErrEmptyConnectionURL, ErrFailedToParseRedisConnString or
// ErrRedisNotReady. Lookup operations return ErrLookupFailed joined with the
// client error. Healthcheck returns ErrHealthcheckFailed.
package redis
