package users

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/app/api/handlers/mid"
	"github.com/ribgsilva/notes-service/business/v1/user"
	"github.com/ribgsilva/notes-service/platform/errs"
	"github.com/ribgsilva/notes-service/platform/web/handler"
)

var errUnauthorized = errs.New(errs.Unauthenticated, "Unauthorized!")

// Delete godoc
// @Summary Delete an account
// @Description Delete the caller's own account and every note it owns
// @Tags User
// @Produce plain
// @Security BasicAuth
// @Param username path string true "Username, must be the caller"
// @Success 200 {string} string
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /users/{username} [delete]
func Delete(ctx *gin.Context) handler.Result {
	id := mid.Identity(ctx)
	if id.IsGuest() {
		return handler.Failure(ctx, errUnauthorized)
	}

	target := ctx.Param("username")
	if err := user.Delete(ctx.Request.Context(), id.Username(), target); err != nil {
		return handler.Failure(ctx, err)
	}
	return handler.Text(http.StatusOK, fmt.Sprintf("Successfully deleted user %s and all associated notes!", target))
}
