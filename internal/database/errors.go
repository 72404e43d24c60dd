package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes that indicate the schema itself is missing or stale
// rather than a bad request: undefined table, undefined column, invalid
// schema name, undefined object.
var schemaErrorCodes = map[string]struct{}{
	"42P01": {},
	"42703": {},
	"3F000": {},
	"42704": {},
}

// SchemaRemedy is the user-facing instruction shown whenever the backend
// rejects a query because a table or column does not exist.
const SchemaRemedy = "database schema is missing or outdated: run the migrations in migrations/ against the configured database"

// IsSchemaError reports whether err (anywhere in its chain) is a Postgres
// error caused by a missing table, column, or schema. These are never
// retried; the caller surfaces SchemaRemedy instead of the raw message.
func IsSchemaError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	_, ok := schemaErrorCodes[pgErr.Code]

	return ok
}
