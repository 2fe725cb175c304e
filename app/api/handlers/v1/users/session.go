package users

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/app/api/handlers/mid"
	"github.com/ribgsilva/notes-service/platform/web/handler"
)

// Login godoc
// @Summary Check credentials
// @Description 200 when the Authorization header names a real account, 401 for the guest
// @Tags User
// @Produce plain
// @Security BasicAuth
// @Success 200 {string} string
// @Failure 401 {object} handler.Error
// @Router /login [get]
func Login(ctx *gin.Context) handler.Result {
	id := mid.Identity(ctx)
	if id.IsGuest() {
		r := handler.Failure(ctx, errUnauthorized)
		r.Header = http.Header{"Www-Authenticate": []string{`Basic realm="401"`}}
		return r
	}
	return handler.Text(http.StatusOK, fmt.Sprintf("Successfully logged in as %s!", id.Username()))
}

// Logout godoc
// @Summary Log out
// @Description There is no session to end; always answers 401 so browsers drop cached credentials
// @Tags User
// @Produce plain
// @Security BasicAuth
// @Failure 401 {string} string
// @Router /logout [get]
func Logout(ctx *gin.Context) handler.Result {
	return handler.Text(http.StatusUnauthorized, fmt.Sprintf("Successfully logged out %s!", mid.Identity(ctx).Username()))
}
