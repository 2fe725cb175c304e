package note

import "time"

func content(p Payload) (string, bool) {
	if p.Content == nil || *p.Content == "" {
		return "", false
	}
	return *p.Content, true
}

// build makes a brand-new note from p. Content is mandatory.
func build(username string, id uint64, p Payload, now time.Time) (Note, error) {
	text, ok := content(p)
	if !ok {
		return Note{}, errEmptyNote
	}
	categories := union(nil, p.Categories)
	if len(categories) == 0 {
		categories = []string{DefaultCategory}
	}
	return Note{
		NoteID:       id,
		Username:     username,
		Title:        p.Title,
		Content:      text,
		Categories:   categories,
		Created:      now,
		LastModified: now,
	}, nil
}

// replaceFields overwrites each field of e that p supplies.
func replaceFields(e Note, p Payload, now time.Time) Note {
	if p.Title != nil {
		e.Title = p.Title
	}
	if text, ok := content(p); ok {
		e.Content = text
	}
	if categories := union(nil, p.Categories); len(categories) > 0 {
		e.Categories = categories
	}
	e.LastModified = now
	return e
}

// appendFields concatenates content and unions categories onto e.
func appendFields(e Note, p Payload, now time.Time) Note {
	if p.Title != nil {
		e.Title = p.Title
	}
	if text, ok := content(p); ok {
		e.Content += text
	}
	if len(p.Categories) > 0 {
		e.Categories = union(e.Categories, p.Categories)
	}
	e.LastModified = now
	return e
}

// union returns the distinct non-empty labels of a then b, in first-seen order.
func union(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, label := range list {
			if label == "" {
				continue
			}
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			out = append(out, label)
		}
	}
	return out
}
