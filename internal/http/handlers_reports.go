package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// handleReports serves the aggregated reporting payload for an optional
// month (zero-based) and year filter. Results are cached per filter
// until a sale mutates.
func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	month, ok := optionalInt(r.URL.Query().Get("month"))
	if !ok || (month != nil && (*month < 0 || *month > 11)) {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "month must be 0-11"})
		return
	}
	year, ok := optionalInt(r.URL.Query().Get("year"))
	if !ok {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid year"})
		return
	}

	key := cacheKey(month, year)
	if report, found := s.reportCache.Get(key); found {
		slog.DebugContext(r.Context(), "Report cache hit", "key", key)
		respondJSON(w, http.StatusOK, report)
		return
	}

	report := s.reports.Build(r.Context(), month, year)
	s.reportCache.Set(key, report)
	respondJSON(w, http.StatusOK, report)
}

// optionalInt parses an optional integer query parameter; an empty
// string means absent.
func optionalInt(v string) (*int, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, false
	}
	return &n, true
}

func cacheKey(month, year *int) string {
	k := "all"
	if month != nil {
		k = strconv.Itoa(*month)
	}
	k += "|"
	if year != nil {
		k += strconv.Itoa(*year)
	} else {
		k += "all"
	}
	return k
}
