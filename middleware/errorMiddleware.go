package middleware

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

// StatusError carries an explicit HTTP status and message through the handler
// chain to the terminal error handler.
type StatusError struct {
	Status  int
	Message string
}

func NewStatusError(status int, message string) *StatusError {
	return &StatusError{Status: status, Message: message}
}

func (e *StatusError) Error() string {
	return e.Message
}

// ValidationError maps field names to messages. The terminal handler reports
// the first field's message, in field order, as a 400.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	return e.First()
}

func (e *ValidationError) First() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		return ""
	}
	return e.Fields[keys[0]]
}

// ErrorHandler runs the chain and turns any error left on the context into a
// plain-text terminal response. Handlers that already wrote a response are
// left alone; nothing ends without a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := http.StatusInternalServerError
		message := "Internal Server Error"

		var validationErr *ValidationError
		var statusErr *StatusError
		switch {
		case errors.As(err, &validationErr):
			status = http.StatusBadRequest
			message = validationErr.First()
		case errors.As(err, &statusErr):
			status = statusErr.Status
			message = statusErr.Message
		}

		c.String(status, message)
	}
}

// NotFound reports unmatched routes through the terminal error handler.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Error(NewStatusError(http.StatusNotFound, "not found"))
	}
}
