package server

import (
	"net/http"
)

// handleProfile serves the authenticated account's profile
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "Server.handleProfile")

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	token, err := s.tokenStore.Get(r.Context())
	if err != nil {
		writeError(w, logger, err)
		return
	}

	profile, err := s.client.GetProfile(r.Context(), token)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
