package note

import "time"

// DefaultCategory is given to notes created without categories.
const DefaultCategory = "default"

// Note is a user-owned text note. NoteID is unique only within Username.
type Note struct {
	NoteID       uint64    `json:"noteId" example:"57"`
	Username     string    `json:"username" example:"alice"`
	Title        *string   `json:"title" example:"groceries"`
	Content      string    `json:"content" example:"milk, eggs"`
	Categories   []string  `json:"categories" example:"default,tmp"`
	Created      time.Time `json:"created" example:"2006-01-02T15:04:05Z"`
	LastModified time.Time `json:"last_modified" example:"2006-01-02T15:04:05Z"`
}

// Payload is a normalized incoming note body. Nil fields were not supplied.
type Payload struct {
	Title      *string
	Content    *string
	Categories []string
}

// NewPayload normalizes raw fields: empty strings and empty category lists
// are treated as absent, and categories are de-duplicated in order.
func NewPayload(title, content string, categories []string) Payload {
	var p Payload
	if title != "" {
		p.Title = &title
	}
	if content != "" {
		p.Content = &content
	}
	if labels := union(nil, categories); len(labels) > 0 {
		p.Categories = labels
	}
	return p
}

// Event is a note command received over messaging.
type Event struct {
	Type     string  `json:"type"`
	Username string  `json:"username"`
	NoteID   uint64  `json:"noteId"`
	Data     NewNote `json:"data"`
}

// NewNote is the body of an Event.
type NewNote struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Categories []string `json:"categories"`
}

// Text renders the note as "title\ncontent", or just the content when untitled.
func (n Note) Text() string {
	if n.Title != nil && *n.Title != "" {
		return *n.Title + "\n" + n.Content
	}
	return n.Content
}
