package utils

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIError is the error type business services return. Code is the HTTP
// status the transport layer should answer with.
type APIError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// NotFound builds a 404 error for a missing record.
func NotFound(format string, args ...interface{}) *APIError {
	return &APIError{Code: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// BadRequest builds a 400 error for invalid input or a business conflict.
// Malformed input and conflicts are not distinguished on the wire.
func BadRequest(format string, args ...interface{}) *APIError {
	return &APIError{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// JSONError renders err as {timestamp, status, error, message}. Errors that
// are not an *APIError are treated as bad requests.
func JSONError(c *gin.Context, err error) {
	code := http.StatusBadRequest
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		code = apiErr.Code
	}

	c.JSON(code, gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"status":    code,
		"error":     http.StatusText(code),
		"message":   err.Error(),
	})
}
