package categories

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/app/api/handlers/mid"
	"github.com/ribgsilva/notes-service/business/v1/note"
	"github.com/ribgsilva/notes-service/platform/web/handler"
)

var separator = strings.Repeat("=", 50) + "\n"

// List godoc
// @Summary List categories
// @Description Every category used by the caller's notes, in the order they first appear
// @Tags Category
// @Produce json
// @Security BasicAuth
// @Success 200 {array} string
// @Failure 401 {object} handler.Error
// @Router /categories [get]
func List(ctx *gin.Context) handler.Result {
	list, err := note.Categories(ctx.Request.Context(), mid.Identity(ctx).Username())
	if err != nil {
		return handler.Failure(ctx, err)
	}
	return handler.Result{Status: http.StatusOK, Body: list}
}

// Get godoc
// @Summary Notes in a category
// @Description Every note of the caller carrying the category
// @Tags Category
// @Produce plain,json
// @Security BasicAuth
// @Param name path string true "Category name"
// @Param json query bool false "Answer with JSON"
// @Success 200 {array} note.Note
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /categories/{name} [get]
func Get(ctx *gin.Context) handler.Result {
	notes, err := note.InCategory(ctx.Request.Context(), mid.Identity(ctx).Username(), ctx.Param("name"))
	switch {
	case err != nil:
		return handler.Failure(ctx, err)
	case handler.WantsJSON(ctx):
		return handler.Result{Status: http.StatusOK, Body: notes}
	}

	var b strings.Builder
	for _, n := range notes {
		fmt.Fprintf(&b, "ID: %d\n%s\n%s", n.NoteID, strings.TrimSpace(n.Text()), separator)
	}
	return handler.Result{Status: http.StatusOK, Body: b.String()}
}
