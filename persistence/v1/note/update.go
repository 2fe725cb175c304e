package note

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ribgsilva/notes-service/sys"
)

// Update rewrites the document and timestamps of an existing note.
func Update(ctx context.Context, n Note) error {
	db := sys.R.Database

	doc, err := json.Marshal(document{Title: n.Title, Content: n.Content, Categories: n.Categories})
	if err != nil {
		return fmt.Errorf("failed to encode note document: %w", err)
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "UPDATE notes SET document = ?, created = ?, last_modified = ? WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare update stmt: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(dbCtx, string(doc), stamp(n.Created), stamp(n.LastModified), key(n.Username, n.NoteID)); err != nil {
		return fmt.Errorf("failed to exec update stmt: %w", err)
	}
	return nil
}
