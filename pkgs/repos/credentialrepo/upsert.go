package credentialrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// UpsertToken stores or replaces the token for the named credential
func (r *repo) UpsertToken(ctx context.Context, db *sqlx.DB, name string, token string) error {
	query := db.Rebind(`
		INSERT INTO credentials (name, token, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			token = EXCLUDED.token,
			updated_at = EXCLUDED.updated_at
	`)

	if _, err := db.ExecContext(ctx, query, name, token, time.Now()); err != nil {
		return fmt.Errorf("failed to upsert credential %s: %w", name, err)
	}
	return nil
}
