package note

import (
	"context"
	"errors"
	"time"

	"github.com/ribgsilva/notes-service/persistence/v1/note"
)

// Create stores a new note under a freshly allocated id.
func Create(ctx context.Context, username string, p Payload) (Note, error) {
	if _, ok := content(p); !ok {
		return Note{}, errEmptyNote
	}

	id, err := allocator.Allocate(ctx, username)
	if err != nil {
		return Note{}, err
	}

	n, err := build(username, id, p, time.Now().UTC())
	if err != nil {
		return Note{}, err
	}
	if err := note.Insert(ctx, note.Note(n)); err != nil {
		if errors.Is(err, note.ErrDuplicate) {
			return Note{}, errIDTaken(err)
		}
		return Note{}, err
	}
	return n, nil
}

// CreateInCategory stores a new note whose only category is category.
func CreateInCategory(ctx context.Context, username, category string, p Payload) (Note, error) {
	p.Categories = []string{category}
	return Create(ctx, username, p)
}
