package chatbot

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidBaseURL    = goerr.New("invalid chatbot API base URL")
	ErrUnexpectedPayload = goerr.New("unexpected response payload")
)

// Context keys for error values
const (
	OperationKey = "operation"
	MethodKey    = "method"
	URLKey       = "url"
	StatusKey    = "status"
	IDKey        = "id"
)

// HTTPError is returned for any non-2xx response
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("chatbot API responded %s", e.Status)
	}
	return fmt.Sprintf("chatbot API responded %s: %s", e.Status, e.Body)
}

// StatusCodeOf returns the HTTP status carried by err, or 0 if err is not an HTTPError
func StatusCodeOf(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the backend
func IsNotFound(err error) bool {
	return StatusCodeOf(err) == http.StatusNotFound
}
