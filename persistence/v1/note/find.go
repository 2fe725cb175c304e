package note

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ribgsilva/notes-service/sys"
)

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (Note, error) {
	var (
		n                     Note
		id                    int64
		doc                   string
		created, lastModified int64
	)
	if err := s.Scan(&n.Username, &id, &doc, &created, &lastModified); err != nil {
		return Note{}, err
	}
	var d document
	if err := json.Unmarshal([]byte(doc), &d); err != nil {
		return Note{}, fmt.Errorf("error parsing note document: %w", err)
	}
	n.NoteID = uint64(id)
	n.Title = d.Title
	n.Content = d.Content
	n.Categories = d.Categories
	n.Created = unstamp(created)
	n.LastModified = unstamp(lastModified)
	return n, nil
}

// Find returns the note owned by username with the given id. The bool is false when absent.
func Find(ctx context.Context, username string, id uint64) (Note, bool, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT username, note_id, document, created, last_modified FROM notes WHERE id = ?")
	if err != nil {
		return Note{}, false, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	defer stmt.Close()

	n, err := scan(stmt.QueryRowContext(dbCtx, key(username, id)))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, false, nil
	case err != nil:
		return Note{}, false, fmt.Errorf("failed to query find stmt: %w", err)
	default:
		return n, true, nil
	}
}

// Exists reports whether username already owns a note with the given id.
func Exists(ctx context.Context, username string, id uint64) (bool, error) {
	_, found, err := Find(ctx, username, id)
	return found, err
}

// List returns every note owned by username, oldest first.
func List(ctx context.Context, username string) ([]Note, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT username, note_id, document, created, last_modified FROM notes WHERE username = ? ORDER BY created")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare list stmt: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(dbCtx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query list stmt: %w", err)
	}
	defer func() { _ = rows.Close() }()

	notes := make([]Note, 0)
	for rows.Next() {
		n, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate list stmt: %w", err)
	}
	return notes, nil
}
