// Package respond centralizes JSON replies and the two-kind error
// mapping: schema errors become a setup instruction, everything else is
// surfaced with the backend's message or a caller-supplied fallback.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hemodesk/hemodesk/internal/database"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error maps an internal error onto the response. A missing table or
// column is reported as the migration instruction and never with the raw
// Postgres message; anything else uses the error's own message, or the
// fallback when there is none.
func Error(w http.ResponseWriter, err error, fallback string) {
	if database.IsSchemaError(err) {
		http.Error(w, database.SchemaRemedy, http.StatusInternalServerError)
		return
	}

	msg := fallback
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}

	http.Error(w, msg, http.StatusInternalServerError)
}
