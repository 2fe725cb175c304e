package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/ribgsilva/notes-service/app/api/handlers/v1/categories"
	"github.com/ribgsilva/notes-service/business/v1/note"
	"github.com/stretchr/testify/require"
)

func TestCategoryListKeepsDiscoveryOrder(t *testing.T) {
	register(t, "cat-order", "pw")
	for i, body := range []string{
		`{"content":"1","categories":["work","urgent"]}`,
		`{"content":"2","categories":["home","work"]}`,
		`{"content":"3"}`,
	} {
		w := request{method: http.MethodPost, path: fmt.Sprintf("/notes/%d", i+1), user: "cat-order", password: "pw",
			contentType: "application/json", body: body}.do(t)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := request{method: http.MethodGet, path: "/categories", user: "cat-order", password: "pw"}.do(t)
	require.Equal(t, http.StatusOK, w.Code)
	var names []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &names))
	require.Equal(t, []string{"work", "urgent", "home", "default"}, names)
}

func TestCategoryNotes(t *testing.T) {
	register(t, "cat-get", "pw")
	request{method: http.MethodPost, path: "/notes/1", user: "cat-get", password: "pw",
		contentType: "application/json", body: `{"title":"t","content":"  a  ","categories":["x"]}`}.do(t)
	request{method: http.MethodPost, path: "/notes/2", user: "cat-get", password: "pw",
		contentType: "application/json", body: `{"content":"b","categories":["y"]}`}.do(t)

	w := request{method: http.MethodGet, path: "/categories/x", user: "cat-get", password: "pw"}.do(t)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ID: 1\nt\n  a\n"+strings.Repeat("=", 50)+"\n", w.Body.String())

	w = request{method: http.MethodGet, path: "/categories/y?json=true", user: "cat-get", password: "pw"}.do(t)
	var notes []note.Note
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
	require.Len(t, notes, 1)
	require.Equal(t, uint64(2), notes[0].NoteID)

	w = request{method: http.MethodGet, path: "/categories/none", user: "cat-get", password: "pw"}.do(t)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Category does not exist!\n", w.Body.String())
}

func TestCreateInCategory(t *testing.T) {
	register(t, "cat-post", "pw")
	w := request{method: http.MethodPost, path: "/categories/ideas", user: "cat-post", password: "pw",
		contentType: "application/json", body: `{"content":"c","categories":["ignored"]}`}.do(t)
	require.True(t, strings.HasPrefix(w.Body.String(), "Created Note in category ideas! ID: "), w.Body.String())
	id := createdID(t, w)

	w = request{method: http.MethodGet, path: fmt.Sprintf("/notes/%d?json=true", id), user: "cat-post", password: "pw"}.do(t)
	require.Equal(t, []string{"ideas"}, decodeNote(t, w.Body.Bytes()).Categories)
}

func TestDeleteCategoryRemovesWholeNotes(t *testing.T) {
	register(t, "cat-del", "pw")
	request{method: http.MethodPost, path: "/notes/1", user: "cat-del", password: "pw",
		contentType: "application/json", body: `{"content":"first","categories":["default","tmp"]}`}.do(t)
	request{method: http.MethodPost, path: "/notes/2", user: "cat-del", password: "pw",
		contentType: "application/json", body: `{"content":"second","categories":["tmp"]}`}.do(t)

	w := request{method: http.MethodDelete, path: "/categories/default", user: "cat-del", password: "pw"}.do(t)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Deleted 1 notes in category default!\n", w.Body.String())

	w = request{method: http.MethodGet, path: "/notes/1", user: "cat-del", password: "pw"}.do(t)
	require.Equal(t, http.StatusNotFound, w.Code)
	w = request{method: http.MethodGet, path: "/notes/2", user: "cat-del", password: "pw"}.do(t)
	require.Equal(t, "second", w.Body.String())

	w = request{method: http.MethodDelete, path: "/categories/default", user: "cat-del", password: "pw"}.do(t)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Couldn't delete notes, category does not exist!\n", w.Body.String())

	w = request{method: http.MethodDelete, path: "/categories/tmp?json=true", user: "cat-del", password: "pw"}.do(t)
	require.Equal(t, http.StatusOK, w.Code)
	var deleted categories.Deleted
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deleted))
	require.Equal(t, categories.Deleted{Category: "tmp", Deleted: 1}, deleted)
}

func TestOverwriteKeepsListingPlace(t *testing.T) {
	register(t, "cat-keep", "pw")
	request{method: http.MethodPost, path: "/notes/1", user: "cat-keep", password: "pw",
		contentType: "application/json", body: `{"content":"a","categories":["first"]}`}.do(t)
	w := request{method: http.MethodGet, path: "/notes/1?json=true", user: "cat-keep", password: "pw"}.do(t)
	created := decodeNote(t, w.Body.Bytes()).Created

	request{method: http.MethodPost, path: "/notes/2", user: "cat-keep", password: "pw",
		contentType: "application/json", body: `{"content":"b","categories":["second"]}`}.do(t)
	w = request{method: http.MethodPost, path: "/notes/1?json=true", user: "cat-keep", password: "pw",
		contentType: "application/json", body: `{"content":"a again","categories":["first"]}`}.do(t)
	require.Equal(t, http.StatusOK, w.Code)
	overwritten := decodeNote(t, w.Body.Bytes())
	require.True(t, created.Equal(overwritten.Created))
	require.Equal(t, "a again", overwritten.Content)

	w = request{method: http.MethodGet, path: "/categories", user: "cat-keep", password: "pw"}.do(t)
	var names []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &names))
	require.Equal(t, []string{"first", "second"}, names)
}
