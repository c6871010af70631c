package tokenstore

import (
	"context"
	"os"

	"github.com/jmoiron/sqlx"
)

////////////////////////////////////////////////////////////////////////////////

type CredentialRepo interface {
	GetToken(ctx context.Context, db *sqlx.DB, name string) (string, error)
	UpsertToken(ctx context.Context, db *sqlx.DB, name string, token string) error
	DeleteToken(ctx context.Context, db *sqlx.DB, name string) error
}

////////////////////////////////////////////////////////////////////////////////

// DBStore persists the token through a credential repo so it survives
// restarts. Reads fall back to the environment like MemoryStore.
type DBStore struct {
	db   *sqlx.DB
	repo CredentialRepo
	name string
}

func NewDBStore(db *sqlx.DB, repo CredentialRepo, name string) *DBStore {
	return &DBStore{
		db:   db,
		repo: repo,
		name: name,
	}
}

func (s *DBStore) Get(ctx context.Context) (string, error) {
	token, err := s.repo.GetToken(ctx, s.db, s.name)
	if err != nil {
		return "", err
	}

	if token == "" {
		token = os.Getenv(ENV_ACCESS_TOKEN)
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (s *DBStore) Set(ctx context.Context, token string) error {
	if token == "" {
		return s.Clear(ctx)
	}
	return s.repo.UpsertToken(ctx, s.db, s.name, token)
}

func (s *DBStore) Clear(ctx context.Context) error {
	return s.repo.DeleteToken(ctx, s.db, s.name)
}
