package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/platform/errs"
	"github.com/ribgsilva/notes-service/sys"
)

// Result is what every handler produces, rendered by Wrapper.
// A string Body is written as text/plain, anything else as indented JSON.
type Result struct {
	Status int
	Body   any
	Header http.Header
}

// Error is the JSON error body.
type Error struct {
	Message string `json:"message" example:"Note does not Exist!"`
}

// Wrapper adapts a Result returning handler into a gin handler.
func Wrapper(f func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		Render(ctx, f(ctx))
	}
}

// Render writes r to the response.
func Render(ctx *gin.Context, r Result) {
	for k, values := range r.Header {
		for _, v := range values {
			ctx.Writer.Header().Add(k, v)
		}
	}
	switch body := r.Body.(type) {
	case nil:
		ctx.Status(r.Status)
	case string:
		ctx.String(r.Status, "%s", body)
	default:
		ctx.IndentedJSON(r.Status, body)
	}
}

// WantsJSON reports whether the caller asked for a JSON body with ?json=...
func WantsJSON(ctx *gin.Context) bool {
	switch v := ctx.Query("json"); v {
	case "", "0", "false":
		return false
	default:
		return true
	}
}

// Text answers with a plain text line.
func Text(status int, message string) Result {
	return Result{Status: status, Body: message + "\n"}
}

// Failure renders err with the status of its code.
func Failure(ctx *gin.Context, err error) Result {
	code := errs.CodeOf(err)
	if code == errs.Internal && sys.R.Log != nil {
		sys.R.Log.Errorw("request", "method", ctx.Request.Method, "path", ctx.FullPath(), "ERROR", err)
	}
	status := errs.HTTPStatus(code)
	message := errs.MessageOf(err)
	if WantsJSON(ctx) {
		return Result{Status: status, Body: Error{Message: message}}
	}
	return Text(status, message)
}
