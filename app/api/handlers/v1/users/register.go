package users

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/app/api/handlers/mid"
	"github.com/ribgsilva/notes-service/business/v1/user"
	"github.com/ribgsilva/notes-service/platform/web/handler"
)

// Register godoc
// @Summary Register an account
// @Description Create the account carried by the Authorization header (base64 username:password)
// @Tags User
// @Produce plain
// @Security BasicAuth
// @Success 200 {string} string
// @Failure 400 {object} handler.Error
// @Failure 409 {object} handler.Error
// @Router /register [post]
func Register(ctx *gin.Context) handler.Result {
	creds := mid.Credentials(ctx)
	if err := user.Register(ctx.Request.Context(), creds.Username, creds.Password); err != nil {
		return handler.Failure(ctx, err)
	}
	return handler.Text(http.StatusOK, fmt.Sprintf("Successfully created user %s!", creds.Username))
}
