package entities

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidArgument marks malformed local input. It is never retried.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrOrderNotFound   = fmt.Errorf("%w: order not found", ErrInvalidArgument)
	ErrTransportExists = fmt.Errorf("%w: transport already created", ErrInvalidArgument)
)

// APIError is any non-2xx or unreadable response from the logistics provider.
type APIError struct {
	StatusCode int
	Body       []byte
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("provider api error: %s: %v", e.Message, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("provider api error: %s: [%d] %s", e.Message, e.StatusCode, http.StatusText(e.StatusCode))
	default:
		return "provider api error: " + e.Message
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}
