package note

import (
	"context"

	"github.com/ribgsilva/notes-service/persistence/v1/note"
)

// Delete removes one note and returns it as it was.
func Delete(ctx context.Context, username string, id uint64) (Note, error) {
	find, found, err := note.Find(ctx, username, id)
	if err != nil {
		return Note{}, err
	}
	if !found {
		return Note{}, errDeleteNotFound
	}
	if err := note.Delete(ctx, username, id); err != nil {
		return Note{}, err
	}
	return Note(find), nil
}

// DeleteOwnedBy removes every note of username.
func DeleteOwnedBy(ctx context.Context, username string) error {
	return note.DeleteByUser(ctx, username)
}
