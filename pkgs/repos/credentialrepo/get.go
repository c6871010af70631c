package credentialrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// GetToken retrieves the stored token for the named credential. Returns an
// empty string when none is stored.
func (r *repo) GetToken(ctx context.Context, db *sqlx.DB, name string) (string, error) {
	query := db.Rebind("SELECT token FROM credentials WHERE name = ?")

	var token string
	err := db.GetContext(ctx, &token, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credential %s: %w", name, err)
	}

	return token, nil
}
