package tokenstore

import (
	"context"
	"errors"
)

// env var holding the fallback access token
const ENV_ACCESS_TOKEN = "THREADS_ACCESS_TOKEN"

// ErrNoToken means no access token is configured anywhere
var ErrNoToken = errors.New("threads access token is not configured")

// Store is the narrow credential boundary: the token is never ambient
// state, callers receive it from here and pass it down explicitly.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
