package threadsclient

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

////////////////////////////////////////////////////////////////////////////////

// ErrorKind classifies a remote failure so callers branch on kind instead of
// sniffing message text.
type ErrorKind int

const (
	KindRemote ErrorKind = iota
	KindUnauthorized
	KindRateLimited
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindRateLimited:
		return "rate_limited"
	case KindNotFound:
		return "not_found"
	default:
		return "remote"
	}
}

////////////////////////////////////////////////////////////////////////////////

// RemoteError is a failed call to the Threads API. Message carries the
// remote error envelope's message when one was present.
type RemoteError struct {
	Kind       ErrorKind
	StatusCode int
	Code       int64
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("threads api: %s (status %d): %s", e.Kind, e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is a credential failure, typically an
// expired access token
func IsUnauthorized(err error) bool {
	var remoteErr *RemoteError
	return errors.As(err, &remoteErr) && remoteErr.Kind == KindUnauthorized
}

// IsRateLimited reports whether the remote side throttled the call
func IsRateLimited(err error) bool {
	var remoteErr *RemoteError
	return errors.As(err, &remoteErr) && remoteErr.Kind == KindRateLimited
}

////////////////////////////////////////////////////////////////////////////////

// OAuth error codes documented for the Graph API family
const (
	oauthCodeInvalidToken   = 190
	oauthCodeAppRateLimit   = 4
	oauthCodeUserRateLimit  = 17
	oauthCodePageRateLimit  = 32
	oauthCodeCustomThrottle = 613
)

const genericFetchMessage = "failed to fetch data from Threads API"

// parseRemoteError builds a RemoteError from a non-success response body.
// The error envelope shape is not guaranteed, so fields are extracted
// loosely with gjson.
func parseRemoteError(statusCode int, body []byte) *RemoteError {
	message := gjson.GetBytes(body, "error.message").String()
	if message == "" {
		message = genericFetchMessage
	}
	code := gjson.GetBytes(body, "error.code").Int()

	kind := KindRemote
	switch {
	case statusCode == 401 || code == oauthCodeInvalidToken:
		kind = KindUnauthorized
	case statusCode == 429 ||
		code == oauthCodeAppRateLimit || code == oauthCodeUserRateLimit ||
		code == oauthCodePageRateLimit || code == oauthCodeCustomThrottle:
		kind = KindRateLimited
	case statusCode == 404:
		kind = KindNotFound
	}

	return &RemoteError{
		Kind:       kind,
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}
