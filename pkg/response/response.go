package response

import (
	"fmt"
	"net/http"

	"department-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 with data as the body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends 204 with no body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func parseError(err error) (int, Resp) {
	switch parsedErr := err.(type) {
	case *errors.HTTPError:
		statusCode := parsedErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Message,
		}
	default:
		return http.StatusInternalServerError, Resp{
			ErrorCode: InternalServerErrorCode,
			Message:   DefaultErrorMessage,
		}
	}
}

// Error sends error response (status + JSON from parseError).
func Error(c *gin.Context, err error) {
	statusCode, resp := parseError(err)
	c.JSON(statusCode, resp)
}

// ErrorWithMap renders the HTTPError eMap holds for err. Unmapped errors render as 500.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping) {
	if httpErr, ok := eMap.Lookup(err); ok {
		Error(c, httpErr)
		return
	}
	Error(c, err)
}

// PanicError renders a recovered panic value as a 500.
func PanicError(c *gin.Context, rec any) {
	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("%v", rec)
	}
	statusCode, resp := parseError(err)
	c.AbortWithStatusJSON(statusCode, resp)
}
