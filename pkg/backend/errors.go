package backend

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrUnavailable means no response arrived from the backend.
	ErrUnavailable = errors.New("no response from server")
	// ErrTimeout is the ErrUnavailable case where the request deadline expired.
	ErrTimeout = fmt.Errorf("%w: request timeout", ErrUnavailable)
)

const (
	MessageUnavailable = "No response from server. Please check your connection."
	MessageTimeout     = "Request timeout. Please try again."
)

// APIError is a response that arrived with a StatusCode other than 200.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend status %d", e.Code)
	}
	return fmt.Sprintf("backend status %d: %s", e.Code, e.Message)
}

// UserMessage picks the text to show an operator for err.
// The server message wins; transport failures get the connectivity text; anything else gets fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	case errors.Is(err, ErrTimeout):
		return MessageTimeout
	case errors.Is(err, ErrUnavailable):
		return MessageUnavailable
	default:
		return fallback
	}
}

func IsTransport(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

func classifyTransport(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return ErrTimeout
	}
	return ErrUnavailable
}
