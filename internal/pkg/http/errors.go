package http

import (
	"errors"
	"fmt"
	nethttp "net/http"

	"github.com/piresc/groomer/internal/pkg/models"
)

// MsgNetwork is shown for transport failures
const MsgNetwork = "Cannot connect to server. Please check your connection and try again."

// HTTPError is a non-2xx response from the backend. Message is the
// server's "message" field when the body carried one.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, nethttp.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Message)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is a
// transport failure.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// IsTransient reports whether err is a transport failure or a 5xx
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	code := StatusCode(err)
	return code == 0 || code >= nethttp.StatusInternalServerError
}

// ToAuthError maps a client error onto the error taxonomy. Transport
// failures become ErrNetwork, a 401 becomes ErrSessionExpired and any other
// status becomes ErrAuth carrying the server message or fallback.
func ToAuthError(op, fallback string, err error) *models.AuthError {
	var authErr *models.AuthError
	if errors.As(err, &authErr) {
		return authErr
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		return &models.AuthError{Kind: models.ErrNetwork, Op: op, Message: MsgNetwork, Err: err}
	}

	kind := models.ErrAuth
	if httpErr.StatusCode == nethttp.StatusUnauthorized {
		kind = models.ErrSessionExpired
	}
	message := httpErr.Message
	if message == "" {
		message = fallback
	}
	return &models.AuthError{Kind: kind, Op: op, Message: message, Err: err}
}
