package server

import (
	"fmt"
	"net/http"

	"github.com/WangWilly/threadStats/pkgs/export"
)

// handleDownloadCSV serves the year's posts as a CSV attachment
func (s *Server) handleDownloadCSV(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r, "Server.handleDownloadCSV")

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

	posts, err := s.service.PostsForYear(r.Context(), token, year)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	content, err := export.ArchiveCSV(posts)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"`, export.ArchiveFilename(year)))
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}
