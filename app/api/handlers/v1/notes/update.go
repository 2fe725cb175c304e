package notes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/app/api/handlers/mid"
	"github.com/ribgsilva/notes-service/app/api/handlers/v1/payload"
	"github.com/ribgsilva/notes-service/business/v1/note"
	"github.com/ribgsilva/notes-service/platform/web/handler"
)

type mutation func(ctx context.Context, username string, id uint64, p note.Payload) (note.Note, error)

func mutate(ctx *gin.Context, apply mutation, done string) handler.Result {
	id, err := noteID(ctx)
	if err != nil {
		return handler.Failure(ctx, err)
	}
	p, err := payload.Parse(ctx)
	if err != nil {
		return handler.Failure(ctx, err)
	}

	updated, err := apply(ctx.Request.Context(), mid.Identity(ctx).Username(), id, p)
	switch {
	case err != nil:
		return handler.Failure(ctx, err)
	case handler.WantsJSON(ctx):
		return handler.Result{Status: http.StatusOK, Body: updated}
	default:
		return handler.Text(http.StatusOK, done)
	}
}

// Replace godoc
// @Summary Replace note fields
// @Description Overwrite the title, content and categories supplied; fields left out keep their value
// @Tags Note
// @Accept plain,json,x-www-form-urlencoded,mpfd
// @Produce plain,json
// @Security BasicAuth
// @Param id path int true "Note id"
// @Param json query bool false "Answer with JSON"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /notes/{id} [put]
func Replace(ctx *gin.Context) handler.Result {
	return mutate(ctx, note.Replace, "Note Updated!")
}

// Append godoc
// @Summary Append to a note
// @Description Concatenate content to the note and add new categories to it
// @Tags Note
// @Accept plain,json,x-www-form-urlencoded,mpfd
// @Produce plain,json
// @Security BasicAuth
// @Param id path int true "Note id"
// @Param json query bool false "Answer with JSON"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /notes/{id} [patch]
func Append(ctx *gin.Context) handler.Result {
	return mutate(ctx, note.Append, "Note Appended!")
}
