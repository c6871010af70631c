package server

import (
	"net/http"

	"github.com/WangWilly/threadStats/pkgs/serverpkg/serverdto"
	"github.com/WangWilly/threadStats/pkgs/utils"
)

// handlePosts serves the posts of one calendar date, joined with view
// counts unless views=0
func (s *Server) handlePosts(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "Server.handlePosts")

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		writeInvalid(w, "date parameter is required")
		return
	}

	day, err := utils.ParseDate(dateParam)
	if err != nil {
		writeInvalid(w, err.Error())
		return
	}

	viewsParam := r.URL.Query().Get("views")
	withViews := viewsParam != "0" && viewsParam != "false"

	token, err := s.tokenStore.Get(r.Context())
	if err != nil {
		writeError(w, logger, err)
		return
	}

	posts, err := s.service.PostsForDate(r.Context(), token, day, withViews)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	writeJSON(w, http.StatusOK, serverdto.PostsResponse{Data: posts})
}
