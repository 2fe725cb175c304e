package user

import (
	"context"
	"fmt"

	"github.com/ribgsilva/notes-service/sys"
)

func Delete(ctx context.Context, username string) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "DELETE FROM users WHERE username = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare delete stmt: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(dbCtx, username); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	return nil
}
