package tokenstore

import (
	"context"
	"os"
	"sync"
)

// MemoryStore keeps the token in process memory and falls back to the
// THREADS_ACCESS_TOKEN environment variable when none was set.
type MemoryStore struct {
	mutex sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(ctx context.Context) (string, error) {
	s.mutex.RLock()
	token := s.token
	s.mutex.RUnlock()

	if token == "" {
		token = os.Getenv(ENV_ACCESS_TOKEN)
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Set stores the token; an empty token clears the stored value so the env
// fallback applies again
func (s *MemoryStore) Set(ctx context.Context, token string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	return s.Set(ctx, "")
}
