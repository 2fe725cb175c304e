package notes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/app/api/handlers/mid"
	"github.com/ribgsilva/notes-service/app/api/handlers/v1/payload"
	"github.com/ribgsilva/notes-service/business/v1/note"
	"github.com/ribgsilva/notes-service/platform/web/handler"
)

// Create godoc
// @Summary Create a note
// @Description Create a note under a newly allocated id. Accepts text/plain, JSON, url-encoded and multipart bodies.
// @Tags Note
// @Accept plain,json,x-www-form-urlencoded,mpfd
// @Produce plain,json
// @Security BasicAuth
// @Param json query bool false "Answer with JSON"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 409 {object} handler.Error
// @Router /notes [post]
func Create(ctx *gin.Context) handler.Result {
	p, err := payload.Parse(ctx)
	if err != nil {
		return handler.Failure(ctx, err)
	}

	created, err := note.Create(ctx.Request.Context(), mid.Identity(ctx).Username(), p)
	switch {
	case err != nil:
		return handler.Failure(ctx, err)
	case handler.WantsJSON(ctx):
		return handler.Result{Status: http.StatusOK, Body: created}
	default:
		return handler.Text(http.StatusOK, fmt.Sprintf("Created Note! ID: %d", created.NoteID))
	}
}

// Upsert godoc
// @Summary Save a note at an id
// @Description Create a note at the given id, replacing in full any note already there
// @Tags Note
// @Accept plain,json,x-www-form-urlencoded,mpfd
// @Produce plain,json
// @Security BasicAuth
// @Param id path int true "Note id"
// @Param json query bool false "Answer with JSON"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 409 {object} handler.Error
// @Router /notes/{id} [post]
func Upsert(ctx *gin.Context) handler.Result {
	id, err := noteID(ctx)
	if err != nil {
		return handler.Failure(ctx, err)
	}
	p, err := payload.Parse(ctx)
	if err != nil {
		return handler.Failure(ctx, err)
	}

	saved, err := note.Upsert(ctx.Request.Context(), mid.Identity(ctx).Username(), id, p)
	switch {
	case err != nil:
		return handler.Failure(ctx, err)
	case handler.WantsJSON(ctx):
		return handler.Result{Status: http.StatusOK, Body: saved}
	default:
		return handler.Text(http.StatusOK, "Note Saved!")
	}
}
