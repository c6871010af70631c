package serverdto

import (
	"github.com/WangWilly/threadStats/pkgs/aggregating"
	"github.com/WangWilly/threadStats/pkgs/clients/threadsclient"
)

// ErrorResponse is the error envelope; Code lets the UI branch without
// sniffing message text
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse acknowledges a state change
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenExistsResponse reports whether any access token is configured
type TokenExistsResponse struct {
	Exists bool `json:"exists"`
}

// TokenUpdateRequest carries a new access token
type TokenUpdateRequest struct {
	Token string `json:"token"`
}

// PostsResponse wraps the posts of one calendar date
type PostsResponse struct {
	Data []aggregating.RankedPost `json:"data"`
}

// AccountInsightsResponse wraps the account-level metric series
type AccountInsightsResponse struct {
	Data []threadsclient.AccountMetric `json:"data"`
}
