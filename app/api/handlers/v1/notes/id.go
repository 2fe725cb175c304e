package notes

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/platform/errs"
)

var errInvalidID = errs.New(errs.InvalidArgument, "Bad Request, invalid note id!")

func noteID(ctx *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 63)
	if err != nil {
		return 0, errs.Wrap(errs.InvalidArgument, errInvalidID.Error(), err)
	}
	return id, nil
}
