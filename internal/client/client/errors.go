package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable        = errors.New("server unavailable")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongRole          = errors.New("access denied: wrong role")
	ErrSessionExpired     = errors.New("session expired, please log in again")
	ErrAccessDenied       = errors.New("access denied")
	ErrResource           = errors.New("local resource error")
	ErrMalformedResponse  = errors.New("malformed response")
	ErrInvalidToken       = errors.New("invalid token")
)

// StatusError is returned for any response status without a dedicated
// sentinel. Body holds the raw response text for diagnostics.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("error %d: %s", e.Code, e.Body)
}

// Kind is a coarse classification of client errors.
type Kind int

const (
	KindNone Kind = iota
	KindTransport
	KindAuthentication
	KindExpired
	KindDenied
	KindServer
	KindResource
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindTransport:
		return "transport"
	case KindAuthentication:
		return "authentication"
	case KindExpired:
		return "expired"
	case KindDenied:
		return "denied"
	case KindServer:
		return "server"
	case KindResource:
		return "resource"
	default:
		return "unknown"
	}
}

// KindOf classifies err. A nil error is KindNone.
func KindOf(err error) Kind {
	var se *StatusError
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrUnavailable):
		return KindTransport
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrWrongRole), errors.Is(err, ErrInvalidToken):
		return KindAuthentication
	case errors.Is(err, ErrSessionExpired):
		return KindExpired
	case errors.Is(err, ErrAccessDenied):
		return KindDenied
	case errors.Is(err, ErrResource):
		return KindResource
	case errors.As(err, &se), errors.Is(err, ErrMalformedResponse):
		return KindServer
	default:
		return KindUnknown
	}
}
