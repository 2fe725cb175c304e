package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/app/api/handlers/mid"
	"github.com/ribgsilva/notes-service/app/api/handlers/v1/categories"
	"github.com/ribgsilva/notes-service/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/notes-service/app/api/handlers/v1/notes"
	"github.com/ribgsilva/notes-service/app/api/handlers/v1/users"
	"github.com/ribgsilva/notes-service/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine) {
	api := r.Group("/", mid.Authenticate())

	api.GET("/notes", handler.Wrapper(notes.List))
	api.POST("/notes", handler.Wrapper(notes.Create))
	api.GET("/notes/:id", handler.Wrapper(notes.Get))
	api.POST("/notes/:id", handler.Wrapper(notes.Upsert))
	api.PUT("/notes/:id", handler.Wrapper(notes.Replace))
	api.PATCH("/notes/:id", handler.Wrapper(notes.Append))
	api.DELETE("/notes/:id", handler.Wrapper(notes.Delete))

	api.GET("/categories", handler.Wrapper(categories.List))
	api.GET("/categories/:name", handler.Wrapper(categories.Get))
	api.POST("/categories/:name", handler.Wrapper(categories.Create))
	api.DELETE("/categories/:name", handler.Wrapper(categories.Delete))

	api.POST("/register", handler.Wrapper(users.Register))
	api.DELETE("/users/:username", handler.Wrapper(users.Delete))
	api.GET("/login", handler.Wrapper(users.Login))
	api.GET("/logout", handler.Wrapper(users.Logout))

	// unknown paths still go through the credential check
	r.NoRoute(mid.Authenticate(), handler.Wrapper(func(ctx *gin.Context) handler.Result {
		return handler.Text(http.StatusNotFound, "Not Found!")
	}))
}
