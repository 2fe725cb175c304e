package note

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ribgsilva/notes-service/persistence/v1/dberr"
	"github.com/ribgsilva/notes-service/sys"
)

func Insert(ctx context.Context, n Note) error {
	db := sys.R.Database

	doc, err := json.Marshal(document{Title: n.Title, Content: n.Content, Categories: n.Categories})
	if err != nil {
		return fmt.Errorf("failed to encode note document: %w", err)
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "INSERT INTO notes (id, username, note_id, document, created, last_modified) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(dbCtx, key(n.Username, n.NoteID), n.Username, int64(n.NoteID), string(doc), stamp(n.Created), stamp(n.LastModified))
	if err != nil {
		if dberr.IsDuplicate(err) {
			return fmt.Errorf("%w: %s", ErrDuplicate, key(n.Username, n.NoteID))
		}
		return fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	return nil
}
