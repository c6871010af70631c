package server

import (
	"net/http"

	"github.com/WangWilly/threadStats/pkgs/serverpkg/serverdto"
	"github.com/WangWilly/threadStats/pkgs/utils"
)

// handleAccountInsights serves the account-level metric series for a year
func (s *Server) handleAccountInsights(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "Server.handleAccountInsights")

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	year, ok := s.yearParam(w, r)
	if !ok {
		return
	}

	token, err := s.tokenStore.Get(r.Context())
	if err != nil {
		writeError(w, logger, err)
		return
	}

	metrics, err := s.client.GetAccountInsights(r.Context(), token, utils.YearWindow(year, s.now()))
	if err != nil {
		writeError(w, logger, err)
		return
	}

	writeJSON(w, http.StatusOK, serverdto.AccountInsightsResponse{Data: metrics})
}
