package healthcheck

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/platform/web/handler"
	"github.com/ribgsilva/notes-service/sys"
)

// Status is the healthcheck body.
type Status struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
}

// Get godoc
// @Summary Healthcheck
// @Description Reports whether the service and its document store are reachable
// @Tags Healthcheck
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Failure 503 {object} healthcheck.Status
// @Router /healthcheck [get]
func Get(ctx *gin.Context) handler.Result {
	dbCtx, dbCancel := context.WithTimeout(ctx.Request.Context(), sys.Configs.Database.PingTimeout)
	defer dbCancel()

	if err := sys.R.Database.PingContext(dbCtx); err != nil {
		sys.R.Log.Warnw("healthcheck", "database", "down", "ERROR", err)
		return handler.Result{Status: http.StatusServiceUnavailable, Body: Status{Status: "degraded", Database: "down"}}
	}
	return handler.Result{Status: http.StatusOK, Body: Status{Status: "ok", Database: "ok"}}
}
