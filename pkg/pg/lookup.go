package pg

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Querier is the part of *pgxpool.Pool, *pgx.Conn and pgx.Tx the lookup uses.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Lookup answers unique/exist rules with
//
//	SELECT EXISTS (SELECT 1 FROM "kind" WHERE "field" = $1)
//
// kind may be schema-qualified ("billing.accounts").
type Lookup struct {
	db     Querier
	schema string
	tables []string
}

// NewLookup creates a lookup over db. cfg.Schema and cfg.Tables are honoured.
func NewLookup(db Querier, cfg Config) *Lookup {
	return &Lookup{db: db, schema: cfg.Schema, tables: cfg.Tables}
}

// Exists implements validator.Lookup.
func (l *Lookup) Exists(ctx context.Context, kind, field string, value any) (bool, error) {
	table, err := l.table(kind)
	if err != nil {
		return false, err
	}
	if !identifierPattern.MatchString(field) {
		return false, fmt.Errorf("%w: %q", ErrInvalidIdentifier, field)
	}

	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)",
		table.Sanitize(), pgx.Identifier{field}.Sanitize())

	var found bool
	if err := l.db.QueryRow(ctx, query, value).Scan(&found); err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return found, nil
}

func (l *Lookup) table(kind string) (pgx.Identifier, error) {
	parts := strings.Split(kind, ".")
	if len(parts) > 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, kind)
	}
	for _, p := range parts {
		if !identifierPattern.MatchString(p) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, kind)
		}
	}
	if len(l.tables) > 0 && !slices.Contains(l.tables, kind) {
		return nil, fmt.Errorf("%w: %q", ErrTableNotAllowed, kind)
	}
	if len(parts) == 1 && l.schema != "" {
		parts = []string{l.schema, parts[0]}
	}
	return pgx.Identifier(parts), nil
}
