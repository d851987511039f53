package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	sharedError "github.com/changhyeonkim/format-check/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/validator"
)

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req CheckRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	// Add error to context for middleware logging
	_ = c.Error(err)

	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		c.JSON(sharedError.PayloadTooLarge.Status, sharedError.PayloadTooLarge)
	default:
		if resp, ok := validator.ToErrorResponse(err); ok {
			c.JSON(http.StatusBadRequest, resp)
			return false
		}
		// JSON parsing error or other binding errors
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
	}
	return false
}

// RespondError records err for the logger middleware and sends errResp
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	_ = c.Error(err)
	c.JSON(errResp.Status, errResp)
}

// RespondDomainError sends the response registered for err, or InternalServerError
//
// Usage:
//
//	if err := service.DoSomething(); err != nil {
//	    handler.RespondDomainError(c, err)
//	    return
//	}
func RespondDomainError(c *gin.Context, err error) {
	RespondError(c, err, sharedError.Resolve(err))
}
