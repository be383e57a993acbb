// Package handlers holds the HTTP handlers for the recommendation API.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/reactwise/condrec/pkg/errors"
	"github.com/reactwise/condrec/pkg/types/common"
)

// respond writes a success envelope.
func respond(c *gin.Context, status int, data interface{}) {
	resp := common.APIResponse[interface{}]{
		Success:   true,
		Data:      data,
		RequestID: c.GetString("request_id"),
		Timestamp: common.NewTimestamp(),
	}
	c.JSON(status, resp)
}

// respondError maps an application error onto its HTTP status.  5xx causes
// are masked; the code alone is enough to find the log line.
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatusForCode(code)

	message := err.Error()
	if errors.IsServerError(code) {
		message = errors.DefaultMessageForCode(code)
	}

	resp := common.APIResponse[interface{}]{
		Success: false,
		Error: &common.ErrorDetail{
			Code:    code.String(),
			Message: message,
		},
		RequestID: c.GetString("request_id"),
		Timestamp: common.NewTimestamp(),
	}
	c.AbortWithStatusJSON(status, resp)
}

// respondValidation is a shorthand for request-shape failures.
func respondValidation(c *gin.Context, message string) {
	respondError(c, errors.New(errors.ErrCodeBadRequest, message))
}
