package note

import (
	"context"
	"fmt"

	"github.com/ribgsilva/notes-service/sys"
)

func Delete(ctx context.Context, username string, id uint64) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "DELETE FROM notes WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare delete stmt: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(dbCtx, key(username, id)); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	return nil
}

// DeleteByUser removes every note owned by username.
func DeleteByUser(ctx context.Context, username string) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "DELETE FROM notes WHERE username = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare delete by user stmt: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(dbCtx, username); err != nil {
		return fmt.Errorf("failed to exec delete by user stmt: %w", err)
	}
	return nil
}
