package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ribgsilva/notes-service/sys"
)

// Find returns the account registered under username. The bool is false when absent.
func Find(ctx context.Context, username string) (User, bool, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT username, password_digest, created FROM users WHERE username = ?")
	if err != nil {
		return User{}, false, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	defer stmt.Close()

	var (
		u       User
		created int64
	)
	err = stmt.QueryRowContext(dbCtx, username).Scan(&u.Username, &u.PasswordDigest, &created)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return User{}, false, nil
	case err != nil:
		return User{}, false, fmt.Errorf("failed to query find stmt: %w", err)
	}
	u.Created = time.Unix(0, created).UTC()
	return u, true, nil
}
