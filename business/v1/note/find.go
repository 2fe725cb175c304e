package note

import (
	"context"

	"github.com/ribgsilva/notes-service/persistence/v1/note"
)

func Find(ctx context.Context, username string, id uint64) (Note, error) {
	find, found, err := note.Find(ctx, username, id)
	if err != nil {
		return Note{}, err
	}
	if !found {
		return Note{}, errNotFound
	}
	return Note(find), nil
}

// List returns every note owned by username in store order.
func List(ctx context.Context, username string) ([]Note, error) {
	list, err := note.List(ctx, username)
	if err != nil {
		return nil, err
	}
	notes := make([]Note, len(list))
	for i, n := range list {
		notes[i] = Note(n)
	}
	return notes, nil
}
