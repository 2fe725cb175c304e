package note

import (
	"context"

	"github.com/ribgsilva/notes-service/persistence/v1/note"
)

// Categories is the union of every category label across username's notes,
// in the order they are first met while walking the notes.
func Categories(ctx context.Context, username string) ([]string, error) {
	notes, err := List(ctx, username)
	if err != nil {
		return nil, err
	}
	return categoriesOf(notes), nil
}

// InCategory returns the notes of username carrying category.
func InCategory(ctx context.Context, username, category string) ([]Note, error) {
	notes, err := List(ctx, username)
	if err != nil {
		return nil, err
	}
	matched := inCategory(notes, category)
	if len(matched) == 0 {
		return nil, errCategoryNotFound
	}
	return matched, nil
}

// DeleteCategory removes every note carrying category, whatever its other
// categories are, and reports how many were removed.
func DeleteCategory(ctx context.Context, username, category string) (int, error) {
	notes, err := List(ctx, username)
	if err != nil {
		return 0, err
	}
	matched := inCategory(notes, category)
	if len(matched) == 0 {
		return 0, errCategoryEmpty
	}
	for i, n := range matched {
		if err := note.Delete(ctx, username, n.NoteID); err != nil {
			return i, err
		}
	}
	return len(matched), nil
}

func categoriesOf(notes []Note) []string {
	var all []string
	for _, n := range notes {
		all = union(all, n.Categories)
	}
	if all == nil {
		return []string{}
	}
	return all
}

func inCategory(notes []Note, category string) []Note {
	matched := make([]Note, 0)
	for _, n := range notes {
		for _, label := range n.Categories {
			if label == category {
				matched = append(matched, n)
				break
			}
		}
	}
	return matched
}
