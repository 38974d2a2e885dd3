package upstream

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. Callers branch on the kind, never on the message.
type Kind int

const (
	KindUnknown Kind = iota
	// KindAuthRequired means the item exists but needs a session.
	KindAuthRequired
	// KindNotSupportedFormat means the item is neither audio nor video.
	KindNotSupportedFormat
	// KindUpstreamUnavailable covers transport failures, unexpected statuses and malformed bodies.
	KindUpstreamUnavailable
	// KindNotFound is the requested record is absent.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindAuthRequired:
		return "auth required"
	case KindNotSupportedFormat:
		return "not supported format"
	case KindUpstreamUnavailable:
		return "upstream unavailable"
	case KindNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is.
var (
	ErrAuthRequired        = &Error{Kind: KindAuthRequired}
	ErrNotSupportedFormat  = &Error{Kind: KindNotSupportedFormat}
	ErrUpstreamUnavailable = &Error{Kind: KindUpstreamUnavailable}
	ErrNotFound            = &Error{Kind: KindNotFound}
)

// Error is a classified failure with a diagnostic message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Errorf builds an Error of the given kind.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies err under kind, keeping it reachable through errors.Unwrap.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf extracts the kind of err, or KindUnknown if err is not classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
