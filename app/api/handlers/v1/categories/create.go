package categories

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
// @Summary Create a note in a category
// @Description Create a note whose only category is the one in the path
// @Tags Category
// @Accept plain,json,x-www-form-urlencoded,mpfd
// @Produce plain,json
// @Security BasicAuth
// @Param name path string true "Category name"
// @Param json query bool false "Answer with JSON"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Router /categories/{name} [post]
func Create(ctx *gin.Context) handler.Result {
	p, err := payload.Parse(ctx)
	if err != nil {
		return handler.Failure(ctx, err)
	}

	name := ctx.Param("name")
	created, err := note.CreateInCategory(ctx.Request.Context(), mid.Identity(ctx).Username(), name, p)
	switch {
	case err != nil:
		return handler.Failure(ctx, err)
	case handler.WantsJSON(ctx):
		return handler.Result{Status: http.StatusOK, Body: created}
	default:
		return handler.Text(http.StatusOK, fmt.Sprintf("Created Note in category %s! ID: %d", name, created.NoteID))
	}
}
