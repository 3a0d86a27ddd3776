package api

import (
	"net/http"

	"hall-allocation/internal/handler/httperr"
	"hall-allocation/internal/handler/middleware"
	"hall-allocation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const internalErrorMessage = "Internal server error"

var errMissingActor = errs.New("authenticated user missing from context")

// actorID aborts with 500 when the route is not behind RequireAuth.
func actorID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingActor, internalErrorMessage, nil)
		return uuid.Nil, false
	}
	return id, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func bindFailed(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}

// writeConverted writes v unless the view-to-response conversion failed.
func writeConverted(c *gin.Context, status int, v any, convErr error) {
	if convErr != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, convErr, internalErrorMessage, nil)
		return
	}
	c.JSON(status, v)
}
