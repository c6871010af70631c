package server

import (
	"net/http"
	"strconv"

	"github.com/WangWilly/threadStats/pkgs/aggregating"
)

// handleActivity serves the year's daily aggregates. The metric query
// parameter picks the mode: count (default), views, or detailed (full
// per-day breakdown plus top posts).
func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "Server.handleActivity")

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	year, ok := s.yearParam(w, r)
	if !ok {
		return
	}

	mode, err := aggregating.ParseMode(r.URL.Query().Get("metric"))
	if err != nil {
		writeInvalid(w, err.Error())
		return
	}

	token, err := s.tokenStore.Get(r.Context())
	if err != nil {
		writeError(w, logger, err)
		return
	}

	if mode == aggregating.ModeDetailed {
		activity, err := s.service.DetailedActivity(r.Context(), token, year)
		if err != nil {
			writeError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, activity)
		return
	}

	buckets, err := s.service.DailyActivity(r.Context(), token, year, mode)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	writeJSON(w, http.StatusOK, buckets)
}

// yearParam parses the year query parameter, defaulting to the current year
func (s *Server) yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return s.now().Year(), true
	}

	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 {
		writeInvalid(w, "invalid year parameter")
		return 0, false
	}
	return year, true
}
