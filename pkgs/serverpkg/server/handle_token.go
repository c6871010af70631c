package server

import (
	"encoding/json"
	"net/http"

	"github.com/WangWilly/threadStats/pkgs/serverpkg/serverdto"
)

// handleToken updates (POST) or clears (DELETE) the stored access token
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "Server.handleToken")

	switch r.Method {
	case http.MethodPost:
		var req serverdto.TokenUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeInvalid(w, "invalid request body")
			return
		}
		if req.Token == "" {
			writeInvalid(w, "token is required")
			return
		}

		if err := s.tokenStore.Set(r.Context(), req.Token); err != nil {
			writeError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, serverdto.MessageResponse{Message: "token updated successfully"})

	case http.MethodDelete:
		if err := s.tokenStore.Clear(r.Context()); err != nil {
			writeError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, serverdto.MessageResponse{Message: "token cleared"})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleTokenExists reports whether any token is configured without ever
// revealing it
func (s *Server) handleTokenExists(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	_, err := s.tokenStore.Get(r.Context())
	writeJSON(w, http.StatusOK, serverdto.TokenExistsResponse{Exists: err == nil})
}
