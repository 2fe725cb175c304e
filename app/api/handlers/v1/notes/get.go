package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/app/api/handlers/mid"
	"github.com/ribgsilva/notes-service/business/v1/note"
	"github.com/ribgsilva/notes-service/platform/web/handler"
)

// Get godoc
// @Summary Find a note
// @Description Find a note of the caller by its id, as "title\ncontent" text or as JSON
// @Tags Note
// @Produce plain,json
// @Security BasicAuth
// @Param id path int true "Note id"
// @Param json query bool false "Answer with JSON"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /notes/{id} [get]
func Get(ctx *gin.Context) handler.Result {
	id, err := noteID(ctx)
	if err != nil {
		return handler.Failure(ctx, err)
	}

	get, err := note.Find(ctx.Request.Context(), mid.Identity(ctx).Username(), id)
	switch {
	case err != nil:
		return handler.Failure(ctx, err)
	case handler.WantsJSON(ctx):
		return handler.Result{Status: http.StatusOK, Body: get}
	default:
		return handler.Result{Status: http.StatusOK, Body: get.Text()}
	}
}

// List godoc
// @Summary List notes
// @Description List every note of the caller
// @Tags Note
// @Produce json
// @Security BasicAuth
// @Success 200 {array} note.Note
// @Failure 401 {object} handler.Error
// @Router /notes [get]
func List(ctx *gin.Context) handler.Result {
	list, err := note.List(ctx.Request.Context(), mid.Identity(ctx).Username())
	if err != nil {
		return handler.Failure(ctx, err)
	}
	return handler.Result{Status: http.StatusOK, Body: list}
}
