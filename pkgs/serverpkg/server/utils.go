package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/WangWilly/threadStats/pkgs/clients/threadsclient"
	"github.com/WangWilly/threadStats/pkgs/serverpkg/serverdto"
	"github.com/WangWilly/threadStats/pkgs/tokenstore"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////

// requestLogger returns a logger carrying a fresh request id
func requestLogger(r *http.Request, caller string) *log.Entry {
	return log.WithFields(log.Fields{
		"caller":    caller,
		"requestId": uuid.NewString(),
		"method":    r.Method,
		"path":      r.URL.Path,
	})
}

////////////////////////////////////////////////////////////////////////////////

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeInvalid(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, serverdto.ErrorResponse{
		Error: message,
		Code:  "invalid_input",
	})
}

// writeError maps a failure to its HTTP status and error code. Credential
// failures come back as 401 unauthorized so the UI can trigger re-auth
// instead of matching message substrings.
func writeError(w http.ResponseWriter, logger *log.Entry, err error) {
	logger.WithError(err).Error("request failed")

	switch {
	case errors.Is(err, tokenstore.ErrNoToken):
		writeJSON(w, http.StatusServiceUnavailable, serverdto.ErrorResponse{
			Error: err.Error(),
			Code:  "no_token",
		})
	case threadsclient.IsUnauthorized(err):
		writeJSON(w, http.StatusUnauthorized, serverdto.ErrorResponse{
			Error: remoteMessage(err),
			Code:  "unauthorized",
		})
	case threadsclient.IsRateLimited(err):
		writeJSON(w, http.StatusTooManyRequests, serverdto.ErrorResponse{
			Error: remoteMessage(err),
			Code:  "rate_limited",
		})
	default:
		var remoteErr *threadsclient.RemoteError
		if errors.As(err, &remoteErr) {
			writeJSON(w, http.StatusBadGateway, serverdto.ErrorResponse{
				Error: remoteErr.Message,
				Code:  "remote_error",
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, serverdto.ErrorResponse{
			Error: err.Error(),
		})
	}
}

func remoteMessage(err error) string {
	var remoteErr *threadsclient.RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Message
	}
	return err.Error()
}
