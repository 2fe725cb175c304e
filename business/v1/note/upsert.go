package note

import (
	"context"
	"errors"
	"time"

	"github.com/ribgsilva/notes-service/persistence/v1/note"
)

// Upsert stores p at an explicit id, replacing the fields of any note already
// there in full. An overwritten note keeps its creation time.
// The allocator hint is neither consulted nor raised.
func Upsert(ctx context.Context, username string, id uint64, p Payload) (Note, error) {
	n, err := build(username, id, p, time.Now().UTC())
	if err != nil {
		return Note{}, err
	}

	existing, found, err := note.Find(ctx, username, id)
	if err != nil {
		return Note{}, err
	}
	if found {
		// the id keeps its creation time, and with it its place in listings
		n.Created = existing.Created
		if err := note.Update(ctx, note.Note(n)); err != nil {
			return Note{}, err
		}
		return n, nil
	}

	if err := note.Insert(ctx, note.Note(n)); err != nil {
		if errors.Is(err, note.ErrDuplicate) {
			return Note{}, errIDTaken(err)
		}
		return Note{}, err
	}
	return n, nil
}
