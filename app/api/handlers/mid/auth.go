package mid

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/business/v1/auth"
	"github.com/ribgsilva/notes-service/platform/web/handler"
)

const (
	identityKey    = "notes.identity"
	credentialsKey = "notes.credentials"
)

// Authenticate resolves the Authorization header of every request.
// Registration skips verification and only carries the decoded credentials.
func Authenticate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		registering := ctx.Request.Method == http.MethodPost && ctx.FullPath() == "/register"

		id, creds, err := auth.Resolve(ctx.Request.Context(), ctx.GetHeader("Authorization"), registering)
		if err != nil {
			handler.Render(ctx, handler.Failure(ctx, err))
			ctx.Abort()
			return
		}

		ctx.Set(identityKey, id)
		ctx.Set(credentialsKey, creds)
		ctx.Next()
	}
}

// Identity returns the identity resolved by Authenticate, the guest when unset.
func Identity(ctx *gin.Context) auth.Identity {
	if v, ok := ctx.Get(identityKey); ok {
		if id, ok := v.(auth.Identity); ok {
			return id
		}
	}
	return auth.Guest()
}

// Credentials returns the credentials decoded by Authenticate.
func Credentials(ctx *gin.Context) auth.Credentials {
	if v, ok := ctx.Get(credentialsKey); ok {
		if creds, ok := v.(auth.Credentials); ok {
			return creds
		}
	}
	return auth.Credentials{}
}
