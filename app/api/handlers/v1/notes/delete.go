package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/app/api/handlers/mid"
	"github.com/ribgsilva/notes-service/business/v1/note"
	"github.com/ribgsilva/notes-service/platform/web/handler"
)

// Delete godoc
// @Summary Delete a note
// @Tags Note
// @Produce plain,json
// @Security BasicAuth
// @Param id path int true "Note id"
// @Param json query bool false "Answer with the deleted note as JSON"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /notes/{id} [delete]
func Delete(ctx *gin.Context) handler.Result {
	id, err := noteID(ctx)
	if err != nil {
		return handler.Failure(ctx, err)
	}

	deleted, err := note.Delete(ctx.Request.Context(), mid.Identity(ctx).Username(), id)
	switch {
	case err != nil:
		return handler.Failure(ctx, err)
	case handler.WantsJSON(ctx):
		return handler.Result{Status: http.StatusOK, Body: deleted}
	default:
		return handler.Text(http.StatusOK, "Note Deleted!")
	}
}
