package credentialrepo

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DeleteToken removes the named credential; deleting a missing row is not
// an error
func (r *repo) DeleteToken(ctx context.Context, db *sqlx.DB, name string) error {
	query := db.Rebind("DELETE FROM credentials WHERE name = ?")

	if _, err := db.ExecContext(ctx, query, name); err != nil {
		return fmt.Errorf("failed to delete credential %s: %w", name, err)
	}
	return nil
}
