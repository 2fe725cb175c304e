package user

import (
	"context"
	"fmt"

	"github.com/ribgsilva/notes-service/persistence/v1/dberr"
	"github.com/ribgsilva/notes-service/sys"
)

func Insert(ctx context.Context, u User) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "INSERT INTO users (username, password_digest, created) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(dbCtx, u.Username, u.PasswordDigest, u.Created.UTC().UnixNano()); err != nil {
		if dberr.IsDuplicate(err) {
			return fmt.Errorf("%w: %s", ErrDuplicate, u.Username)
		}
		return fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	return nil
}
