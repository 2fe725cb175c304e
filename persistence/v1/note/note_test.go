package note

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/ribgsilva/notes-service/persistence/v1/schema"
	"github.com/ribgsilva/notes-service/sys"
	"go.uber.org/zap"

	_ "github.com/proullon/ramsql/driver"
)

func setup(t *testing.T) {
	t.Helper()
	sys.R.Log = zap.NewNop().Sugar()
	sys.Configs.Database.OperationTimeout = 5 * time.Second

	db, err := sql.Open("ramsql", "PersistenceNoteTest")
	if err != nil {
		t.Fatalf("error to connect to database: %s", err)
	}
	sys.R.Database = db
	if err := schema.Create(context.Background()); err != nil {
		t.Fatalf("sql.Exec: Error: %s\n", err)
	}
	t.Cleanup(func() {
		_ = schema.Drop(context.Background())
		_ = db.Close()
	})
}

func title(s string) *string { return &s }

func TestNoteStore(t *testing.T) {
	setup(t)
	ctx := context.Background()
	now := time.Now().UTC()

	notes := []Note{
		{NoteID: 57, Username: "alice", Title: title("first"), Content: "one", Categories: []string{"default"}, Created: now, LastModified: now},
		{NoteID: 57, Username: "bob", Content: "bob's", Categories: []string{"tmp"}, Created: now.Add(time.Millisecond), LastModified: now},
		{NoteID: 3, Username: "alice", Content: "two", Categories: []string{"default", "tmp"}, Created: now.Add(2 * time.Millisecond), LastModified: now},
	}
	for _, n := range notes {
		if err := Insert(ctx, n); err != nil {
			t.Fatalf("Insert(%d, %s): %s", n.NoteID, n.Username, err)
		}
	}

	got, found, err := Find(ctx, "alice", 57)
	if err != nil || !found {
		t.Fatalf("Find(alice, 57) = %v, %v", found, err)
	}
	if got.Title == nil || *got.Title != "first" || got.Content != "one" {
		t.Fatalf("unexpected note: %+v", got)
	}
	if !got.Created.Equal(now) {
		t.Fatalf("created = %s, want %s", got.Created, now)
	}

	got, found, err = Find(ctx, "bob", 57)
	if err != nil || !found || got.Content != "bob's" || got.Title != nil {
		t.Fatalf("Find(bob, 57) = %+v, %v, %v", got, found, err)
	}

	if _, found, err := Find(ctx, "alice", 999); err != nil || found {
		t.Fatalf("Find(alice, 999) = %v, %v; want not found", found, err)
	}

	list, err := List(ctx, "alice")
	if err != nil {
		t.Fatalf("List: %s", err)
	}
	if len(list) != 2 || list[0].NoteID != 57 || list[1].NoteID != 3 {
		t.Fatalf("List(alice) should return both notes oldest first: %+v", list)
	}

	upd := list[1]
	upd.Content = "two, edited"
	upd.Categories = []string{"tmp"}
	if err := Update(ctx, upd); err != nil {
		t.Fatalf("Update: %s", err)
	}
	got, _, _ = Find(ctx, "alice", 3)
	if got.Content != "two, edited" || len(got.Categories) != 1 || got.Categories[0] != "tmp" {
		t.Fatalf("update not persisted: %+v", got)
	}

	if err := Delete(ctx, "alice", 57); err != nil {
		t.Fatalf("Delete: %s", err)
	}
	if ok, _ := Exists(ctx, "alice", 57); ok {
		t.Fatal("alice's 57 should be gone")
	}
	if ok, _ := Exists(ctx, "bob", 57); !ok {
		t.Fatal("bob's 57 must survive alice's delete")
	}

	if err := DeleteByUser(ctx, "alice"); err != nil {
		t.Fatalf("DeleteByUser: %s", err)
	}
	if list, _ := List(ctx, "alice"); len(list) != 0 {
		t.Fatalf("alice should have no notes left: %+v", list)
	}
	if list, _ := List(ctx, "bob"); len(list) != 1 {
		t.Fatalf("bob's note should remain: %+v", list)
	}
}

func TestLargeDocument(t *testing.T) {
	setup(t)
	ctx := context.Background()
	now := time.Now().UTC()

	content := strings.Repeat("0123456789abcdef", 70*1024/16)
	big := Note{NoteID: 1, Username: "alice", Content: content, Categories: []string{"default"}, Created: now, LastModified: now}
	if err := Insert(ctx, big); err != nil {
		t.Fatalf("Insert of a %d byte note: %s", len(content), err)
	}

	list, err := List(ctx, "alice")
	if err != nil {
		t.Fatalf("List: %s", err)
	}
	if len(list) != 1 || list[0].Content != content {
		t.Fatalf("large note not returned intact, got %d notes", len(list))
	}
}
