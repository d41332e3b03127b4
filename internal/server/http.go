package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"spirit11/internal/constants"
	"spirit11/internal/importer"
	"spirit11/internal/middleware"
	"spirit11/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error  string `json:"error"`
	Line   int    `json:"line,omitempty"`
	Column string `json:"column,omitempty"`
}

// ImportHandler accepts a raw CSV body from an admin and replaces the stats
// of every listed player.
func ImportHandler(imports *service.ImportService, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.PrincipalFrom(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthenticated"})
			return
		}
		if !p.Admin {
			writeJSON(w, http.StatusForbidden, errorBody{Error: errAdminOnly.Error()})
			return
		}

		body := http.MaxBytesReader(w, r.Body, constants.MaxImportBodyBytes)
		result, err := imports.Import(r.Context(), body)
		if err != nil {
			var rowErr *importer.RowError
			var tooLarge *http.MaxBytesError
			switch {
			case errors.As(err, &rowErr):
				writeJSON(w, http.StatusBadRequest, errorBody{Error: rowErr.Err.Error(), Line: rowErr.Line, Column: rowErr.Column})
			case errors.As(err, &tooLarge):
				writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{Error: "body too large"})
			case errors.Is(err, importer.ErrEmpty), errors.Is(err, importer.ErrMalformed):
				writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
			default:
				logger.Error().Err(err).Msg("admin import failed")
				writeJSON(w, http.StatusInternalServerError, errorBody{Error: errInternal.Error()})
			}
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HealthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
