package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ribgsilva/notes-service/business/v1/auth"
	"github.com/ribgsilva/notes-service/business/v1/note"
	"github.com/ribgsilva/notes-service/sys"
	"gocloud.dev/pubsub"
)

// Consume receives note events until ctx is cancelled, applying each one on
// at most maxWorkers goroutines. Messages are always acked; a failed event is
// logged and dropped.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	logger := sys.R.Log
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		go func(m *pubsub.Message) {
			workers <- 1
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infow("consume", "status", "message received", "size", len(m.Body))
			var e note.Event
			if err := json.Unmarshal(m.Body, &e); err != nil {
				logger.Errorw("consume", "status", "failed to parse body", "ERROR", err)
				return
			}

			n, err := Apply(ctx, e)
			if err != nil {
				logger.Errorw("consume", "type", e.Type, "username", e.Username, "noteId", e.NoteID, "ERROR", err)
				return
			}
			logger.Infow("consume", "type", e.Type, "username", n.Username, "noteId", n.NoteID, "status", "applied")
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// Apply runs one event against the note store. Events without a username
// act on the guest namespace.
func Apply(ctx context.Context, e note.Event) (note.Note, error) {
	username := e.Username
	if username == "" {
		username = auth.Guest().Username()
	}
	p := note.NewPayload(e.Data.Title, e.Data.Content, e.Data.Categories)

	switch e.Type {
	case "create":
		return note.Create(ctx, username, p)
	case "upsert":
		return note.Upsert(ctx, username, e.NoteID, p)
	case "replace":
		return note.Replace(ctx, username, e.NoteID, p)
	case "append":
		return note.Append(ctx, username, e.NoteID, p)
	case "delete":
		return note.Delete(ctx, username, e.NoteID)
	default:
		return note.Note{}, fmt.Errorf("unknown event type: %q", e.Type)
	}
}
