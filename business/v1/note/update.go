package note

import (
	"context"
	"time"

	"github.com/ribgsilva/notes-service/persistence/v1/note"
)

// Replace overwrites the fields p supplies on an existing note.
func Replace(ctx context.Context, username string, id uint64, p Payload) (Note, error) {
	return update(ctx, username, id, func(e Note, now time.Time) Note {
		return replaceFields(e, p, now)
	})
}

// Append concatenates p's content to an existing note and unions its categories.
func Append(ctx context.Context, username string, id uint64, p Payload) (Note, error) {
	return update(ctx, username, id, func(e Note, now time.Time) Note {
		return appendFields(e, p, now)
	})
}

func update(ctx context.Context, username string, id uint64, merge func(Note, time.Time) Note) (Note, error) {
	find, found, err := note.Find(ctx, username, id)
	if err != nil {
		return Note{}, err
	}
	if !found {
		return Note{}, errUpdateNotFound
	}

	n := merge(Note(find), time.Now().UTC())
	if err := note.Update(ctx, note.Note(n)); err != nil {
		return Note{}, err
	}
	return n, nil
}
