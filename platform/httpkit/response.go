// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"fmt"
	"net/http"

	"quote_pdf_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

// statusError is the fixed status literal carried by every error body.
const statusError = "error"

// ErrorResponse is the wire format for every non-2xx response.
// No error path may produce anything other than this shape.
type ErrorResponse struct {
	Status    string      `json:"status"`
	Message   string      `json:"message"`
	ErrorCode string      `json:"errorCode"`
	Details   interface{} `json:"details,omitempty"`
}

// JSON sends a JSON response with the given status code.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK sends a 200 OK response with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Error sends an error response with the given status, wire code and message.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	c.JSON(status, ErrorResponse{
		Status:    statusError,
		Message:   message,
		ErrorCode: code,
		Details:   details,
	})
}

// AbortError sends an error response and aborts the middleware chain.
func AbortError(c *gin.Context, status int, code, message string, details interface{}) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Status:    statusError,
		Message:   message,
		ErrorCode: code,
		Details:   details,
	})
}

// HandleError maps domain errors to HTTP responses.
// Typed *apperr.Error values keep their own status and wire code. Anything
// else is surfaced uniformly as 500 INTERNAL_ERROR with the originating Go
// error type recorded for diagnostics; callers never see raw failures.
// Returns true if an error was handled, false otherwise.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if domainErr, ok := err.(*apperr.Error); ok {
		c.JSON(domainErr.HTTPStatus(), ErrorResponse{
			Status:    statusError,
			Message:   domainErr.Message,
			ErrorCode: domainErr.Code(),
			Details:   domainErr.Details,
		})
		return true
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Status:    statusError,
		Message:   "Internal Server Error: " + err.Error(),
		ErrorCode: apperr.CodeInternal,
		Details:   gin.H{"exception_type": fmt.Sprintf("%T", err)},
	})
	return true
}
