package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"snackpos/internal/core"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// noticeBody reports an informational outcome (the operation was
// redundant, not a failure).
type noticeBody struct {
	Notice string `json:"notice"`
}

// respondError maps core sentinel errors to HTTP statuses: lookup
// misses to 404, validation failures to 422, anything else to 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, core.ErrEmptyCart),
		errors.Is(err, core.ErrNoValidItems),
		errors.Is(err, core.ErrEmptyName),
		errors.Is(err, core.ErrInvalidPrice),
		errors.Is(err, core.ErrInvalidQuantity):
		respondJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error()})
	default:
		slog.ErrorContext(r.Context(), "Request failed",
			"error", err, "method", r.Method, "url", r.URL.Path)
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return false
	}
	return true
}
