package tests

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/ribgsilva/notes-service/app/messsaging/consumers/v1/notes"
	"github.com/ribgsilva/notes-service/business/v1/note"
	"github.com/ribgsilva/notes-service/persistence/v1/schema"
	"github.com/ribgsilva/notes-service/platform/hash"
	"github.com/ribgsilva/notes-service/sys"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/proullon/ramsql/driver"
)

type NoteTests struct {
	topic *pubsub.Topic
}

func TestNote(t *testing.T) {
	// =======================================================================================================
	// Setup configs
	sys.Configs.Database.PingTimeout = 2 * time.Second
	sys.Configs.Database.OperationTimeout = 5 * time.Second
	sys.Configs.Auth.GuestUsername = "default"
	sys.Configs.Messaging.ShutdownTimeout = 5 * time.Second

	// =======================================================================================================
	// Setup resources

	sys.R.Log = zap.NewNop().Sugar()
	sys.R.Hasher = hash.NewBcrypt(bcrypt.MinCost)
	sys.R.Hint = nil

	db, err := sql.Open("ramsql", "MessagingNoteTest")
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()
	sys.R.Database = db

	// =======================================================================================================
	// Database setup

	require.NoError(t, schema.Create(context.Background()))
	defer schema.Drop(context.Background())

	// =======================================================================================================
	// Messaging configuration

	topic := mempubsub.NewTopic()
	defer func() {
		_ = topic.Shutdown(context.Background())
	}()
	subscription := mempubsub.NewSubscription(topic, time.Second)

	withCancel, cancelFunc := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- notes.Consume(withCancel, subscription, 2)
	}()
	defer func() {
		cancelFunc()
		require.NoError(t, <-done)

		stdCtx, stdCancel := context.WithTimeout(context.Background(), sys.Configs.Messaging.ShutdownTimeout)
		defer stdCancel()
		_ = subscription.Shutdown(stdCtx)
	}()

	// =======================================================================================================
	// Run tests

	noteTests := NoteTests{topic: topic}

	noteTests.testUpsertThenAppend(t)
	noteTests.testCreateForGuest(t)
	noteTests.testDelete(t)
	noteTests.testBadMessagesAreDropped(t)
}

func (nt *NoteTests) send(t *testing.T, e note.Event) {
	body, err := json.Marshal(e)
	require.NoError(t, err)
	require.NoError(t, nt.topic.Send(context.Background(), &pubsub.Message{Body: body}))
}

func (nt *NoteTests) eventually(t *testing.T, cond func() bool) {
	require.Eventually(t, cond, 5*time.Second, 20*time.Millisecond)
}

func (nt *NoteTests) testUpsertThenAppend(t *testing.T) {
	nt.send(t, note.Event{
		Type:     "upsert",
		Username: "alice",
		NoteID:   7,
		Data:     note.NewNote{Title: "groceries", Content: "milk", Categories: []string{"home"}},
	})
	nt.eventually(t, func() bool {
		_, err := note.Find(context.Background(), "alice", 7)
		return err == nil
	})

	nt.send(t, note.Event{
		Type:     "append",
		Username: "alice",
		NoteID:   7,
		Data:     note.NewNote{Content: ", eggs", Categories: []string{"tmp"}},
	})
	nt.eventually(t, func() bool {
		n, err := note.Find(context.Background(), "alice", 7)
		return err == nil && n.Content == "milk, eggs"
	})

	n, err := note.Find(context.Background(), "alice", 7)
	require.NoError(t, err)
	require.Equal(t, []string{"home", "tmp"}, n.Categories)
	require.NotNil(t, n.Title)
	require.Equal(t, "groceries", *n.Title)
}

func (nt *NoteTests) testCreateForGuest(t *testing.T) {
	nt.send(t, note.Event{
		Type: "create",
		Data: note.NewNote{Content: "guest text"},
	})
	nt.eventually(t, func() bool {
		all, err := note.List(context.Background(), "default")
		return err == nil && len(all) == 1
	})

	all, err := note.List(context.Background(), "default")
	require.NoError(t, err)
	require.Equal(t, "guest text", all[0].Content)
	require.Equal(t, []string{note.DefaultCategory}, all[0].Categories)
	require.Less(t, all[0].NoteID, uint64(100))
}

func (nt *NoteTests) testDelete(t *testing.T) {
	nt.send(t, note.Event{Type: "delete", Username: "alice", NoteID: 7})
	nt.eventually(t, func() bool {
		_, err := note.Find(context.Background(), "alice", 7)
		return err != nil
	})
}

func (nt *NoteTests) testBadMessagesAreDropped(t *testing.T) {
	require.NoError(t, nt.topic.Send(context.Background(), &pubsub.Message{Body: []byte("not json")}))
	nt.send(t, note.Event{Type: "unknown", Username: "bob", NoteID: 1, Data: note.NewNote{Content: "x"}})
	nt.send(t, note.Event{Type: "replace", Username: "bob", NoteID: 1, Data: note.NewNote{Content: "x"}})

	// a later valid event still goes through
	nt.send(t, note.Event{Type: "upsert", Username: "bob", NoteID: 2, Data: note.NewNote{Content: "ok"}})
	nt.eventually(t, func() bool {
		_, err := note.Find(context.Background(), "bob", 2)
		return err == nil
	})

	_, err := note.Find(context.Background(), "bob", 1)
	require.Error(t, err)
}
