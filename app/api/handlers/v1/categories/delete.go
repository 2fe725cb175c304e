package categories

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/app/api/handlers/mid"
	"github.com/ribgsilva/notes-service/business/v1/note"
	"github.com/ribgsilva/notes-service/platform/web/handler"
)

// Deleted is the JSON answer of a category deletion.
type Deleted struct {
	Category string `json:"category" example:"tmp"`
	Deleted  int    `json:"deleted" example:"2"`
}

// Delete godoc
// @Summary Delete a category
// @Description Delete every note of the caller carrying the category, whatever its other categories
// @Tags Category
// @Produce plain,json
// @Security BasicAuth
// @Param name path string true "Category name"
// @Param json query bool false "Answer with JSON"
// @Success 200 {object} categories.Deleted
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /categories/{name} [delete]
func Delete(ctx *gin.Context) handler.Result {
	name := ctx.Param("name")
	count, err := note.DeleteCategory(ctx.Request.Context(), mid.Identity(ctx).Username(), name)
	switch {
	case err != nil:
		return handler.Failure(ctx, err)
	case handler.WantsJSON(ctx):
		return handler.Result{Status: http.StatusOK, Body: Deleted{Category: name, Deleted: count}}
	default:
		return handler.Text(http.StatusOK, fmt.Sprintf("Deleted %d notes in category %s!", count, name))
	}
}
