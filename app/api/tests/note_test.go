package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/ribgsilva/notes-service/business/v1/note"
	"github.com/stretchr/testify/require"
)

func decodeNote(t *testing.T, body []byte) note.Note {
	t.Helper()
	var n note.Note
	require.NoError(t, json.Unmarshal(body, &n), string(body))
	return n
}

func TestCreateThenRead(t *testing.T) {
	register(t, "alice", "pw")

	w := request{method: http.MethodPost, path: "/notes", user: "alice", password: "pw", contentType: "text/plain", body: "hi"}.do(t)
	require.True(t, strings.HasPrefix(w.Body.String(), "Created Note! ID: "), w.Body.String())
	id := createdID(t, w)

	w = request{method: http.MethodGet, path: fmt.Sprintf("/notes/%d", id), user: "alice", password: "pw"}.do(t)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "hi", w.Body.String())

	w = request{method: http.MethodGet, path: fmt.Sprintf("/notes/%d?json=true", id), user: "alice", password: "pw"}.do(t)
	require.Equal(t, http.StatusOK, w.Code)
	n := decodeNote(t, w.Body.Bytes())
	require.Equal(t, id, n.NoteID)
	require.Equal(t, "alice", n.Username)
	require.Nil(t, n.Title)
	require.Equal(t, "hi", n.Content)
	require.Equal(t, []string{"default"}, n.Categories)
	require.False(t, n.Created.IsZero())

	require.True(t, mr.Exists("notes.hint.alice"))
}

func TestCreateWithTitleRendersTitleLine(t *testing.T) {
	register(t, "titled", "pw")

	w := request{method: http.MethodPost, path: "/notes", user: "titled", password: "pw",
		contentType: "application/json", body: `{"title":"groceries","content":"milk","categories":["home","home"]}`}.do(t)
	id := createdID(t, w)

	w = request{method: http.MethodGet, path: fmt.Sprintf("/notes/%d", id), user: "titled", password: "pw"}.do(t)
	require.Equal(t, "groceries\nmilk", w.Body.String())

	w = request{method: http.MethodGet, path: fmt.Sprintf("/notes/%d?json=1", id), user: "titled", password: "pw"}.do(t)
	require.Equal(t, []string{"home"}, decodeNote(t, w.Body.Bytes()).Categories)
}

func TestCreateRejectsEmptyContent(t *testing.T) {
	for _, tc := range []struct {
		name        string
		contentType string
		body        string
	}{
		{"empty text", "text/plain", ""},
		{"json without content", "application/json", `{"title":"only"}`},
		{"form without content", "application/x-www-form-urlencoded", "title=only"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := request{method: http.MethodPost, path: "/notes", contentType: tc.contentType, body: tc.body}.do(t)
			require.Equal(t, http.StatusBadRequest, w.Code)
			require.Equal(t, "Bad Request, empty note!\n", w.Body.String())

			w = request{method: http.MethodPost, path: "/notes/3", contentType: tc.contentType, body: tc.body}.do(t)
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateFromForms(t *testing.T) {
	register(t, "former", "pw")

	w := request{method: http.MethodPost, path: "/notes", user: "former", password: "pw",
		contentType: "application/x-www-form-urlencoded", body: "title=t&content=c&categories=a&categories=b"}.do(t)
	id := createdID(t, w)

	w = request{method: http.MethodGet, path: fmt.Sprintf("/notes/%d?json=true", id), user: "former", password: "pw"}.do(t)
	n := decodeNote(t, w.Body.Bytes())
	require.Equal(t, "c", n.Content)
	require.Equal(t, []string{"a", "b"}, n.Categories)

	multipart := "--XX\r\nContent-Disposition: form-data; name=\"f:1\"\r\n\r\nuploaded\r\n--XX--\r\n"
	w = request{method: http.MethodPost, path: "/notes/10", user: "former", password: "pw",
		contentType: "multipart/form-data; boundary=XX", body: multipart}.do(t)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = request{method: http.MethodGet, path: "/notes/10", user: "former", password: "pw"}.do(t)
	require.Equal(t, "uploaded", w.Body.String())
}

func TestUpsertReplacesInFull(t *testing.T) {
	register(t, "upserter", "pw")

	w := request{method: http.MethodPost, path: "/notes/42", user: "upserter", password: "pw",
		contentType: "application/json", body: `{"title":"t","content":"first","categories":"x"}`}.do(t)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Note Saved!\n", w.Body.String())

	w = request{method: http.MethodPost, path: "/notes/42?json=true", user: "upserter", password: "pw",
		contentType: "text/plain", body: "second"}.do(t)
	require.Equal(t, http.StatusOK, w.Code)
	n := decodeNote(t, w.Body.Bytes())
	require.Equal(t, uint64(42), n.NoteID)
	require.Nil(t, n.Title)
	require.Equal(t, "second", n.Content)
	require.Equal(t, []string{"default"}, n.Categories)

	w = request{method: http.MethodGet, path: "/notes", user: "upserter", password: "pw"}.do(t)
	var all []note.Note
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 1)
}

func TestReplace(t *testing.T) {
	register(t, "replacer", "pw")
	request{method: http.MethodPost, path: "/notes/1", user: "replacer", password: "pw",
		contentType: "application/json", body: `{"title":"t","content":"A","categories":["x","y"]}`}.do(t)

	w := request{method: http.MethodPut, path: "/notes/1", user: "replacer", password: "pw",
		contentType: "text/plain", body: "B"}.do(t)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Note Updated!\n", w.Body.String())

	w = request{method: http.MethodGet, path: "/notes/1?json=true", user: "replacer", password: "pw"}.do(t)
	n := decodeNote(t, w.Body.Bytes())
	require.Equal(t, "B", n.Content)
	require.Equal(t, "t", *n.Title)
	require.Equal(t, []string{"x", "y"}, n.Categories)

	w = request{method: http.MethodPut, path: "/notes/1?json=true", user: "replacer", password: "pw",
		contentType: "application/json", body: `{"categories":["z"]}`}.do(t)
	require.Equal(t, http.StatusOK, w.Code)
	n = decodeNote(t, w.Body.Bytes())
	require.Equal(t, "B", n.Content)
	require.Equal(t, []string{"z"}, n.Categories)
	require.False(t, n.LastModified.Before(n.Created))
}

func TestReplaceMissingNote(t *testing.T) {
	w := request{method: http.MethodPut, path: "/notes/999", contentType: "text/plain", body: "x"}.do(t)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Can't update note, does not exist!\n", w.Body.String())

	w = request{method: http.MethodPatch, path: "/notes/999?json=true", contentType: "text/plain", body: "x"}.do(t)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"message":"Can't update note, does not exist!"}`, w.Body.String())
}

func TestAppend(t *testing.T) {
	register(t, "appender", "pw")
	request{method: http.MethodPost, path: "/notes/7", user: "appender", password: "pw",
		contentType: "application/json", body: `{"content":"A","categories":["x"]}`}.do(t)

	w := request{method: http.MethodPatch, path: "/notes/7", user: "appender", password: "pw",
		contentType: "application/json", body: `{"content":"B","categories":["y","x"]}`}.do(t)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Note Appended!\n", w.Body.String())

	w = request{method: http.MethodGet, path: "/notes/7?json=true", user: "appender", password: "pw"}.do(t)
	n := decodeNote(t, w.Body.Bytes())
	require.Equal(t, "AB", n.Content)
	require.Equal(t, []string{"x", "y"}, n.Categories)
	require.Nil(t, n.Title)
}

func TestDelete(t *testing.T) {
	register(t, "deleter", "pw")
	request{method: http.MethodPost, path: "/notes/3", user: "deleter", password: "pw", contentType: "text/plain", body: "bye"}.do(t)

	w := request{method: http.MethodDelete, path: "/notes/3", user: "deleter", password: "pw"}.do(t)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Note Deleted!\n", w.Body.String())

	w = request{method: http.MethodDelete, path: "/notes/3", user: "deleter", password: "pw"}.do(t)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Couldn't delete note, does not exist!\n", w.Body.String())

	w = request{method: http.MethodGet, path: "/notes/3", user: "deleter", password: "pw"}.do(t)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Note does not Exist!\n", w.Body.String())
}

func TestInvalidNoteID(t *testing.T) {
	for _, path := range []string{"/notes/abc", "/notes/-1", "/notes/99999999999999999999"} {
		w := request{method: http.MethodGet, path: path}.do(t)
		require.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestUsersAreIsolated(t *testing.T) {
	register(t, "iso-a", "pw")
	register(t, "iso-b", "pw")

	request{method: http.MethodPost, path: "/notes/5", user: "iso-a", password: "pw", contentType: "text/plain", body: "from a"}.do(t)
	request{method: http.MethodPost, path: "/notes/5", user: "iso-b", password: "pw", contentType: "text/plain", body: "from b"}.do(t)

	w := request{method: http.MethodGet, path: "/notes/5", user: "iso-a", password: "pw"}.do(t)
	require.Equal(t, "from a", w.Body.String())
	w = request{method: http.MethodGet, path: "/notes/5", user: "iso-b", password: "pw"}.do(t)
	require.Equal(t, "from b", w.Body.String())

	request{method: http.MethodDelete, path: "/notes/5", user: "iso-a", password: "pw"}.do(t)
	w = request{method: http.MethodGet, path: "/notes/5", user: "iso-b", password: "pw"}.do(t)
	require.Equal(t, http.StatusOK, w.Code)

	// guest notes live in their own namespace
	w = request{method: http.MethodGet, path: "/notes/5"}.do(t)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGuestOwnsNotes(t *testing.T) {
	w := request{method: http.MethodPost, path: "/notes/77", contentType: "text/plain", body: "anonymous"}.do(t)
	require.Equal(t, http.StatusOK, w.Code)

	w = request{method: http.MethodGet, path: "/notes/77?json=true"}.do(t)
	require.Equal(t, "default", decodeNote(t, w.Body.Bytes()).Username)
}

func TestListIsEmptyArray(t *testing.T) {
	register(t, "empty", "pw")
	w := request{method: http.MethodGet, path: "/notes", user: "empty", password: "pw"}.do(t)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	w := request{method: http.MethodGet, path: "/nowhere"}.do(t)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Not Found!\n", w.Body.String())

	register(t, "wanderer", "pw")
	w = request{method: http.MethodGet, path: "/nowhere", user: "wanderer", password: "pw"}.do(t)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = request{method: http.MethodGet, path: "/nowhere", user: "wanderer", password: "wrong"}.do(t)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid Credentials!\n", w.Body.String())
}

func TestRequestID(t *testing.T) {
	w := request{method: http.MethodGet, path: "/notes"}.do(t)
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
