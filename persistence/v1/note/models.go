package note

import (
	"errors"
	"fmt"
	"time"
)

// ErrDuplicate is returned by Insert when (username, noteId) is already taken.
var ErrDuplicate = errors.New("note already exists")

type Note struct {
	NoteID       uint64
	Username     string
	Title        *string
	Content      string
	Categories   []string
	Created      time.Time
	LastModified time.Time
}

// document is the JSON body stored alongside the key columns.
type document struct {
	Title      *string  `json:"title"`
	Content    string   `json:"content"`
	Categories []string `json:"categories"`
}

func key(username string, id uint64) string {
	return fmt.Sprintf("%d:%s", id, username)
}

func stamp(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func unstamp(n int64) time.Time {
	return time.Unix(0, n).UTC()
}
