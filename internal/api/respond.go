package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/eventapp/internal/core"
	"github.com/example/eventapp/internal/db"
)

const internalErrorMessage = "internal server error"

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Result{OK: true, Data: data})
}

// respondFailure reports a swallowed failure: 200 with ok false.
func respondFailure(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Result{OK: false, Message: message})
}

// respondError maps service errors to statuses. An anonymous caller on a
// route that allows one gets the absence result, not 401.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var verr *core.ValidationError
	switch {
	case errors.Is(err, core.ErrUnauthenticated):
		respondFailure(c, err.Error())
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, Result{Message: verr.Message})
	case errors.Is(err, core.ErrUserNotFound), errors.Is(err, db.ErrNotFound):
		c.JSON(http.StatusNotFound, Result{Message: "not found"})
	default:
		logger.Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, Result{Message: internalErrorMessage})
	}
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Result{Message: "invalid request body: " + err.Error()})
}
